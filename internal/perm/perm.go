package perm

import (
	"fmt"
	"math/big"
)

// maxN bounds enumeration so that every rank fits an int64 (21! overflows).
const maxN = 20

// Factorial returns n! for n >= 0.
func Factorial(n int) *big.Int {
	return new(big.Int).MulRange(1, int64(n))
}

// SignedCount returns n! * 2^n, the number of signed permutations of
// {1..n}.
func SignedCount(n int) *big.Int {
	count := Factorial(n)
	return count.Lsh(count, uint(n))
}

// lehmerCode returns the Lehmer code of rank k over n elements: the
// factorial-base digits of k, most significant first. Digit i selects
// which of the remaining elements comes next.
func lehmerCode(k int64, n int) []int {
	code := make([]int, n)
	for i := 1; i <= n; i++ {
		code[n-i] = int(k % int64(i))
		k /= int64(i)
	}
	return code
}

// Generator yields the permutations of {1..n} one at a time, in
// lexicographic order.
type Generator struct {
	next  int64
	total int64
	base  []int
}

// NewGenerator returns a Generator over {1..n}. n must be between 1
// and 20.
func NewGenerator(n int) (*Generator, error) {
	if n < 1 || n > maxN {
		return nil, fmt.Errorf("n must be between 1 and %d, got %d", maxN, n)
	}
	base := make([]int, n)
	total := int64(1)
	for i := 1; i <= n; i++ {
		base[i-1] = i
		total *= int64(i)
	}
	return &Generator{total: total, base: base}, nil
}

// Next returns the next permutation, or false once all n! permutations
// have been yielded. The returned slice is freshly allocated on every
// call.
func (g *Generator) Next() ([]int, bool) {
	if g.next >= g.total {
		return nil, false
	}
	code := lehmerCode(g.next, len(g.base))
	g.next++

	rest := append([]int(nil), g.base...)
	out := make([]int, 0, len(rest))
	for _, idx := range code {
		out = append(out, rest[idx])
		rest = append(rest[:idx], rest[idx+1:]...)
	}
	return out, true
}

// SignedGenerator yields every signed permutation of {1..n}: each
// permutation of {1..n} combined with each of the 2^n ways to negate its
// elements. Permutations advance in lexicographic order; within one
// permutation the sign masks count up in binary with the most significant
// bit applying to the first element and a zero bit negating it.
type SignedGenerator struct {
	perms *Generator
	curr  []int
	mask  uint64
	limit uint64
}

// NewSignedGenerator returns a SignedGenerator over {1..n}. n must be
// between 1 and 20.
func NewSignedGenerator(n int) (*SignedGenerator, error) {
	g, err := NewGenerator(n)
	if err != nil {
		return nil, err
	}
	return &SignedGenerator{perms: g, limit: 1 << uint(n)}, nil
}

// Next returns the next signed permutation, or false once the enumeration
// is exhausted.
func (s *SignedGenerator) Next() ([]int, bool) {
	if s.curr == nil || s.mask == s.limit {
		base, ok := s.perms.Next()
		if !ok {
			return nil, false
		}
		s.curr = base
		s.mask = 0
	}

	n := len(s.curr)
	out := make([]int, n)
	for i, v := range s.curr {
		if s.mask>>(uint(n-1-i))&1 == 1 {
			out[i] = v
		} else {
			out[i] = -v
		}
	}
	s.mask++
	return out, true
}
