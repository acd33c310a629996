package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAll verifies the embedded catalog parses and carries complete
// metadata for every problem.
func TestAll(t *testing.T) {
	problems, err := All()
	require.NoError(t, err)
	require.Len(t, problems, 13)

	assert.Equal(t, "dna", problems[0].Code)
	assert.Equal(t, "Counting DNA Nucleotides", problems[0].Title)

	codes := make(map[string]bool)
	for _, p := range problems {
		assert.NotEmpty(t, p.Code, "problem code")
		assert.NotEmpty(t, p.Title, "title of %s", p.Code)
		assert.NotEmpty(t, p.Input, "input of %s", p.Code)
		assert.NotEmpty(t, p.Brief, "brief of %s", p.Code)
		assert.False(t, codes[p.Code], "duplicate code %s", p.Code)
		codes[p.Code] = true
	}
}
