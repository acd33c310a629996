package seq

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCodonTable_Shape pins the structural properties of the codon table:
// all 64 codons present, 3 stops, and the known degeneracy per amino acid.
func TestCodonTable_Shape(t *testing.T) {
	assert.Len(t, codonTable, 64)
	assert.Equal(t, 3, codonCounts[stopMarker])

	degeneracy := map[byte]int{
		'A': 4, 'C': 2, 'D': 2, 'E': 2, 'F': 2,
		'G': 4, 'H': 2, 'I': 3, 'K': 2, 'L': 6,
		'M': 1, 'N': 2, 'P': 4, 'Q': 2, 'R': 6,
		'S': 6, 'T': 4, 'V': 4, 'W': 1, 'Y': 2,
	}
	for aa, want := range degeneracy {
		assert.Equal(t, want, codonCounts[aa], "codon count for %c", aa)
	}
}

// TestRNA_Translate covers the sample strand, early stop codons, and
// strands that cannot be decoded.
func TestRNA_Translate(t *testing.T) {
	tests := []struct {
		name     string
		rna      RNA
		expected Protein
		errMsg   string
	}{
		{
			name:     "sample strand",
			rna:      "AUGGCCAUGGCGCCCAGAACUGAGAUCAAUAGUACCCGUAUUAACGGGUGA",
			expected: "MAMAPRTEINSTRING",
		},
		{name: "no stop codon", rna: "AUGGCC", expected: "MA"},
		{name: "stop ends translation", rna: "AUGUAAGGG", expected: "M"},
		{name: "stop only", rna: "UAG", expected: ""},
		{name: "single codon", rna: "UGG", expected: "W"},
		{name: "trailing partial codon", rna: "AUGGC", errMsg: "2 trailing base(s) cannot form a codon"},
		{name: "unvalidated symbol", rna: "AUGZZZ", errMsg: `unknown codon "ZZZ" at position 4`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.rna.Translate()
			if tt.errMsg != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

// TestProtein_RNACount verifies the reverse-translation count, including
// the implicit stop codon factor and modular reduction at every step.
func TestProtein_RNACount(t *testing.T) {
	const mod = 1000000

	// 1 (M) * 4 (A) * 3 (stop) source strings.
	assert.Equal(t, 12, Protein("MA").RNACount(mod))
	// Tryptophan has a single codon, so only the stop varies.
	assert.Equal(t, 3, Protein("W").RNACount(mod))
	assert.Equal(t, 6*6*3, Protein("LL").RNACount(mod))

	// Results come back already reduced.
	assert.Equal(t, 2, Protein("MA").RNACount(10))
	assert.Equal(t, 3, Protein("LL").RNACount(7))
}
