package seq

import (
	"fmt"
	"strings"
)

// stopMarker stands in for the three stop codons in codonTable. It is not
// a valid amino acid and never appears in a Protein.
const stopMarker = '*'

// codonTable maps every RNA codon to the single-letter code of the amino
// acid it encodes, with stop codons mapped to stopMarker.
var codonTable = map[string]byte{
	"UUU": 'F', "UUC": 'F', "UUA": 'L', "UUG": 'L',
	"UCU": 'S', "UCC": 'S', "UCA": 'S', "UCG": 'S',
	"UAU": 'Y', "UAC": 'Y', "UAA": stopMarker, "UAG": stopMarker,
	"UGU": 'C', "UGC": 'C', "UGA": stopMarker, "UGG": 'W',
	"CUU": 'L', "CUC": 'L', "CUA": 'L', "CUG": 'L',
	"CCU": 'P', "CCC": 'P', "CCA": 'P', "CCG": 'P',
	"CAU": 'H', "CAC": 'H', "CAA": 'Q', "CAG": 'Q',
	"CGU": 'R', "CGC": 'R', "CGA": 'R', "CGG": 'R',
	"AUU": 'I', "AUC": 'I', "AUA": 'I', "AUG": 'M',
	"ACU": 'T', "ACC": 'T', "ACA": 'T', "ACG": 'T',
	"AAU": 'N', "AAC": 'N', "AAA": 'K', "AAG": 'K',
	"AGU": 'S', "AGC": 'S', "AGA": 'R', "AGG": 'R',
	"GUU": 'V', "GUC": 'V', "GUA": 'V', "GUG": 'V',
	"GCU": 'A', "GCC": 'A', "GCA": 'A', "GCG": 'A',
	"GAU": 'D', "GAC": 'D', "GAA": 'E', "GAG": 'E',
	"GGU": 'G', "GGC": 'G', "GGA": 'G', "GGG": 'G',
}

// codonCounts holds, per amino acid letter plus stopMarker, the number of
// codons encoding it. Derived from codonTable so the two cannot drift.
var codonCounts = make(map[byte]int, 21)

func init() {
	for _, aa := range codonTable {
		codonCounts[aa]++
	}
}

func isAminoAcid(b byte) bool {
	n, ok := codonCounts[b]
	return ok && b != stopMarker && n > 0
}

// Translate decodes the strand three bases at a time into a protein.
// Translation ends at the first stop codon; any content after it is
// ignored. When no stop codon is present the whole strand is decoded, and
// a trailing group of fewer than three bases is an error.
func (r RNA) Translate() (Protein, error) {
	var b strings.Builder
	s := string(r)
	for i := 0; i+3 <= len(s); i += 3 {
		aa, ok := codonTable[s[i:i+3]]
		if !ok {
			return "", fmt.Errorf("unknown codon %q at position %d", s[i:i+3], i+1)
		}
		if aa == stopMarker {
			return Protein(b.String()), nil
		}
		b.WriteByte(aa)
	}
	if rem := len(s) % 3; rem != 0 {
		return "", fmt.Errorf("%d trailing base(s) cannot form a codon", rem)
	}
	return Protein(b.String()), nil
}

// RNACount returns the number of distinct RNA strings that translate to p
// and then terminate with a stop codon, modulo modulus. The product is
// reduced after every factor, so the result is exact for any protein
// length as long as modulus fits alongside a single codon count in an int.
// The modulus must be positive.
func (p Protein) RNACount(modulus int) int {
	count := codonCounts[stopMarker] % modulus
	for i := 0; i < len(p); i++ {
		count = count * codonCounts[p[i]] % modulus
	}
	return count
}
