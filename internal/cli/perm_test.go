// Package cli — perm_test.go contains unit tests for the streaming
// writers shared by the perm and sign commands. Both writers are driven
// through an in-memory buffer so the exact byte output can be pinned.
package cli

import (
	"bufio"
	"bytes"
	"encoding/json"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/savish/rosalind/internal/perm"
)

// sliceNext adapts a fixed set of rows to the next-row callback the
// writers consume.
func sliceNext(rows [][]int) func() ([]int, bool) {
	i := 0
	return func() ([]int, bool) {
		if i >= len(rows) {
			return nil, false
		}
		row := rows[i]
		i++
		return row, true
	}
}

// TestWritePermText verifies the text layout: the count line followed by
// one space-separated row per permutation.
func TestWritePermText(t *testing.T) {
	var buf bytes.Buffer
	w := bufio.NewWriter(&buf)

	err := writePermText(w, big.NewInt(2), sliceNext([][]int{{1, 2}, {2, 1}}))
	require.NoError(t, err)

	assert.Equal(t, "2\n1 2\n2 1\n", buf.String())
}

// TestWritePermText_Generator verifies the full output for n=3 driven by
// the real generator, pinning the lexicographic order end to end.
func TestWritePermText_Generator(t *testing.T) {
	gen, err := perm.NewGenerator(3)
	require.NoError(t, err)

	var buf bytes.Buffer
	w := bufio.NewWriter(&buf)
	require.NoError(t, writePermText(w, perm.Factorial(3), gen.Next))

	want := "6\n" +
		"1 2 3\n" +
		"1 3 2\n" +
		"2 1 3\n" +
		"2 3 1\n" +
		"3 1 2\n" +
		"3 2 1\n"
	assert.Equal(t, want, buf.String())
}

// TestWritePermJSON verifies the hand-streamed JSON envelope byte for
// byte on a small input.
func TestWritePermJSON(t *testing.T) {
	var buf bytes.Buffer
	w := bufio.NewWriter(&buf)

	err := writePermJSON(w, big.NewInt(2), sliceNext([][]int{{1, 2}, {2, 1}}))
	require.NoError(t, err)

	want := "{\n" +
		"  \"count\": \"2\",\n" +
		"  \"permutations\": [\n" +
		"    [1,2],\n" +
		"    [2,1]\n" +
		"  ]\n" +
		"}\n"
	assert.Equal(t, want, buf.String())
}

// TestWritePermJSON_Valid verifies that the streamed envelope parses as
// JSON and round-trips the generator's rows for n=3.
func TestWritePermJSON_Valid(t *testing.T) {
	gen, err := perm.NewGenerator(3)
	require.NoError(t, err)

	var buf bytes.Buffer
	w := bufio.NewWriter(&buf)
	require.NoError(t, writePermJSON(w, perm.Factorial(3), gen.Next))

	var result struct {
		Count        string  `json:"count"`
		Permutations [][]int `json:"permutations"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))

	assert.Equal(t, "6", result.Count)
	assert.Len(t, result.Permutations, 6)
	assert.Equal(t, []int{1, 2, 3}, result.Permutations[0])
	assert.Equal(t, []int{3, 2, 1}, result.Permutations[5])
}

// TestWritePermJSON_SignedRows verifies the envelope carries signed
// permutation rows unchanged, as used by the sign command.
func TestWritePermJSON_SignedRows(t *testing.T) {
	gen, err := perm.NewSignedGenerator(1)
	require.NoError(t, err)

	var buf bytes.Buffer
	w := bufio.NewWriter(&buf)
	require.NoError(t, writePermJSON(w, perm.SignedCount(1), gen.Next))

	want := "{\n" +
		"  \"count\": \"2\",\n" +
		"  \"permutations\": [\n" +
		"    [-1],\n" +
		"    [1]\n" +
		"  ]\n" +
		"}\n"
	assert.Equal(t, want, buf.String())
}
