// Package cli — subs_test.go contains unit tests for the pure formatting
// functions used by the subs command and other CLI output helpers.
//
// These tests verify data transformation logic without touching stdout
// or any external dependencies.
package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestFormatInts verifies that FormatInts correctly renders integer
// slices as a single space-separated line.
func TestFormatInts(t *testing.T) {
	tests := []struct {
		name   string
		values []int
		want   string
	}{
		{
			name:   "empty slice returns empty string",
			values: []int{},
			want:   "",
		},
		{
			name:   "nil slice returns empty string",
			values: nil,
			want:   "",
		},
		{
			name:   "single value",
			values: []int{7},
			want:   "7",
		},
		{
			name:   "multiple values space separated",
			values: []int{2, 4, 10},
			want:   "2 4 10",
		},
		{
			name:   "negative values keep their sign",
			values: []int{-1, 2, -3},
			want:   "-1 2 -3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatInts(tt.values)
			assert.Equal(t, tt.want, got)
		})
	}
}
