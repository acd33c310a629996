// Package cli — gc_test.go contains unit tests for the pure helpers
// behind the gc command: per-record GC computation and maximum selection.
package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/savish/rosalind/internal/fasta"
	"github.com/savish/rosalind/internal/model"
)

// TestGCEntries verifies that gcEntries validates each record as DNA and
// computes its GC percentage in input order.
func TestGCEntries(t *testing.T) {
	t.Run("computes percentages in input order", func(t *testing.T) {
		records := []fasta.Record{
			{ID: "Rosalind_1", Sequence: "ACGT"},
			{ID: "Rosalind_2", Sequence: "GGCC"},
			{ID: "Rosalind_3", Sequence: "ATAT"},
		}

		entries, err := gcEntries(records)
		require.NoError(t, err)
		assert.Equal(t, []gcEntry{
			{ID: "Rosalind_1", Percent: 50.0},
			{ID: "Rosalind_2", Percent: 100.0},
			{ID: "Rosalind_3", Percent: 0.0},
		}, entries)
	})

	t.Run("non-DNA record is a validation error", func(t *testing.T) {
		records := []fasta.Record{
			{ID: "Rosalind_1", Sequence: "ACGT"},
			{ID: "Rosalind_9", Sequence: "ACGU"},
		}

		_, err := gcEntries(records)
		require.Error(t, err)
		cliErr, ok := err.(*model.CLIError)
		require.True(t, ok, "expected a CLIError, got %T", err)
		assert.Equal(t, model.ExitValidationError, cliErr.Code)
		assert.Equal(t, `record "Rosalind_9" is not a DNA string`, cliErr.Message)
	})

	t.Run("record without sequence is a validation error", func(t *testing.T) {
		records := []fasta.Record{
			{ID: "Rosalind_7", Sequence: ""},
		}

		_, err := gcEntries(records)
		require.Error(t, err)
		cliErr, ok := err.(*model.CLIError)
		require.True(t, ok, "expected a CLIError, got %T", err)
		assert.Equal(t, model.ExitValidationError, cliErr.Code)
	})
}

// TestGCEntries_SampleDataset runs the full pipeline, FASTA reader through
// maximum selection, on the classic three-record dataset.
func TestGCEntries_SampleDataset(t *testing.T) {
	const dataset = `>Rosalind_6404
CCTGCGGAAGATCGGCACTAGAATAGCCAGAACCGTTTCTCTGAGGCTTCCGGCCTTCCC
TCCCACTAATAATTCTGAGG
>Rosalind_5959
CCATCGGTAGCGCATCCTTAGTCCAATTAAGTCCCTATCCAGGCGCTCCGCCGAAGGTCT
ATATCCATTTGTCAGCAGACACGC
>Rosalind_0808
CCACCCTCGTGGTATGGCTAGGCATTCAGGAACCGGAGAACGCTTCAGACCAGCCCGGAC
TGGGAACCTGCGGGCAGTAGGTGGAAT
`

	records, err := fasta.NewReader(strings.NewReader(dataset)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	entries, err := gcEntries(records)
	require.NoError(t, err)

	max := maxGCEntry(entries)
	assert.Equal(t, "Rosalind_0808", max.ID)
	assert.InDelta(t, 60.919540, max.Percent, 1e-6)
}

// TestMaxGCEntry verifies maximum selection, including the tie rule that
// the earliest record wins.
func TestMaxGCEntry(t *testing.T) {
	tests := []struct {
		name    string
		entries []gcEntry
		want    gcEntry
	}{
		{
			name:    "single entry",
			entries: []gcEntry{{ID: "Rosalind_1", Percent: 37.5}},
			want:    gcEntry{ID: "Rosalind_1", Percent: 37.5},
		},
		{
			name: "maximum in the middle",
			entries: []gcEntry{
				{ID: "Rosalind_1", Percent: 50.0},
				{ID: "Rosalind_2", Percent: 75.0},
				{ID: "Rosalind_3", Percent: 25.0},
			},
			want: gcEntry{ID: "Rosalind_2", Percent: 75.0},
		},
		{
			name: "tie goes to the earliest record",
			entries: []gcEntry{
				{ID: "Rosalind_1", Percent: 60.0},
				{ID: "Rosalind_2", Percent: 60.0},
			},
			want: gcEntry{ID: "Rosalind_1", Percent: 60.0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := maxGCEntry(tt.entries)
			assert.Equal(t, tt.want, got)
		})
	}
}
