package fib

import (
	"fmt"
	"math/big"
)

// Growth returns the number of rabbit pairs alive after the given number of
// months, starting from one newborn pair. Pairs mature for one month, then
// produce litter new pairs every month. No pair dies.
//
// With litter = 1 this is the Fibonacci sequence; in general
// F(n) = F(n-1) + litter * F(n-2).
func Growth(months, litter int) (*big.Int, error) {
	if months < 1 {
		return nil, fmt.Errorf("months must be at least 1, got %d", months)
	}
	if litter < 1 {
		return nil, fmt.Errorf("litter size must be at least 1, got %d", litter)
	}

	k := big.NewInt(int64(litter))
	curr, next := big.NewInt(0), big.NewInt(1)
	for i := 0; i < months; i++ {
		grown := new(big.Int).Mul(curr, k)
		grown.Add(grown, next)
		curr, next = next, grown
	}
	return curr, nil
}

// Mortal returns the number of rabbit pairs alive after the given number of
// months when every pair dies exactly lifespan months after birth. Breeding
// works as in Growth with a litter size of one.
func Mortal(months, lifespan int) (*big.Int, error) {
	if months < 1 {
		return nil, fmt.Errorf("months must be at least 1, got %d", months)
	}
	if lifespan < 1 {
		return nil, fmt.Errorf("lifespan must be at least 1, got %d", lifespan)
	}

	// ages[i] holds the pairs that are i months old. Month one starts with
	// a single newborn pair.
	ages := make([]*big.Int, lifespan)
	for i := range ages {
		ages[i] = new(big.Int)
	}
	ages[0].SetInt64(1)

	for month := 1; month < months; month++ {
		newborn := new(big.Int)
		for _, pairs := range ages[1:] {
			newborn.Add(newborn, pairs)
		}
		// Every bucket ages one month; the oldest dies off the end.
		copy(ages[1:], ages[:lifespan-1])
		ages[0] = newborn
	}

	total := new(big.Int)
	for _, pairs := range ages {
		total.Add(total, pairs)
	}
	return total, nil
}
