package seq

import (
	"errors"
	"fmt"
	"strings"
)

// DNA is a validated DNA string over the alphabet {A, C, G, T}.
type DNA string

// RNA is a validated RNA string over the alphabet {A, C, G, U}.
type RNA string

// Protein is a validated protein string over the twenty single-letter
// amino acid codes.
type Protein string

// String returns the DNA strand as a plain string.
func (d DNA) String() string {
	return string(d)
}

// String returns the RNA strand as a plain string.
func (r RNA) String() string {
	return string(r)
}

// String returns the protein as a plain string.
func (p Protein) String() string {
	return string(p)
}

// ParseDNA validates s as a DNA string. Surrounding whitespace is trimmed
// so that file-sourced input with a trailing newline parses cleanly. The
// empty string is rejected.
func ParseDNA(s string) (DNA, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return "", errors.New("empty DNA string")
	}
	for i := 0; i < len(t); i++ {
		switch t[i] {
		case 'A', 'C', 'G', 'T':
		default:
			return "", fmt.Errorf("invalid DNA symbol %q at position %d (alphabet: A, C, G, T)", t[i], i+1)
		}
	}
	return DNA(t), nil
}

// ParseRNA validates s as an RNA string. Surrounding whitespace is trimmed
// and the empty string is rejected.
func ParseRNA(s string) (RNA, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return "", errors.New("empty RNA string")
	}
	for i := 0; i < len(t); i++ {
		switch t[i] {
		case 'A', 'C', 'G', 'U':
		default:
			return "", fmt.Errorf("invalid RNA symbol %q at position %d (alphabet: A, C, G, U)", t[i], i+1)
		}
	}
	return RNA(t), nil
}

// ParseProtein validates s as a protein string. Surrounding whitespace is
// trimmed and the empty string is rejected. Stop markers are not part of
// the protein alphabet.
func ParseProtein(s string) (Protein, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return "", errors.New("empty protein string")
	}
	for i := 0; i < len(t); i++ {
		if !isAminoAcid(t[i]) {
			return "", fmt.Errorf("invalid amino acid %q at position %d", t[i], i+1)
		}
	}
	return Protein(t), nil
}

// NucleotideCounts holds the number of occurrences of each DNA symbol in a
// strand.
type NucleotideCounts struct {
	A int
	C int
	G int
	T int
}

// String renders the counts in alphabetical symbol order, separated by
// single spaces.
func (c NucleotideCounts) String() string {
	return fmt.Sprintf("%d %d %d %d", c.A, c.C, c.G, c.T)
}

// Counts tallies the occurrences of each nucleotide in the strand.
func (d DNA) Counts() NucleotideCounts {
	var c NucleotideCounts
	for i := 0; i < len(d); i++ {
		switch d[i] {
		case 'A':
			c.A++
		case 'C':
			c.C++
		case 'G':
			c.G++
		case 'T':
			c.T++
		}
	}
	return c
}

// Transcribe returns the RNA string obtained by replacing every thymine
// with uracil.
func (d DNA) Transcribe() RNA {
	return RNA(strings.ReplaceAll(string(d), "T", "U"))
}

// dnaComplement maps each DNA symbol to its Watson-Crick complement.
var dnaComplement = [256]byte{
	'A': 'T',
	'T': 'A',
	'C': 'G',
	'G': 'C',
}

// ReverseComplement returns the reverse complement of the strand: the
// sequence read back to front with every symbol complemented.
func (d DNA) ReverseComplement() DNA {
	out := make([]byte, len(d))
	for i := 0; i < len(d); i++ {
		out[i] = dnaComplement[d[len(d)-1-i]]
	}
	return DNA(out)
}

// GCContent returns the percentage of symbols in the strand that are
// guanine or cytosine, in the range [0, 100].
func (d DNA) GCContent() float64 {
	gc := 0
	for i := 0; i < len(d); i++ {
		if d[i] == 'G' || d[i] == 'C' {
			gc++
		}
	}
	return float64(gc) / float64(len(d)) * 100
}

// Hamming returns the number of positions at which a and b differ. The two
// strands must have equal length.
func Hamming(a, b DNA) (int, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("strands differ in length: %d vs %d", len(a), len(b))
	}
	count := 0
	for i := 0; i < len(a); i++ {
		if a[i] != b[i] {
			count++
		}
	}
	return count, nil
}

// MotifPositions returns every position at which motif occurs as a
// substring of d, in ascending order. Positions are 1-indexed and
// overlapping occurrences are all reported. The result is empty when the
// motif does not occur.
func (d DNA) MotifPositions(motif DNA) []int {
	var positions []int
	s, m := string(d), string(motif)
	for start := 0; start+len(m) <= len(s); {
		idx := strings.Index(s[start:], m)
		if idx < 0 {
			break
		}
		positions = append(positions, start+idx+1)
		start += idx + 1
	}
	return positions
}
