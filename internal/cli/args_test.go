// Package cli — args_test.go contains unit tests for the shared argument
// plumbing: positional count validation, required-flag checks, and
// integer parsing. Every failure path must carry the usage exit code so
// shell scripts can tell bad invocations from bad data.
package cli

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/savish/rosalind/internal/model"
)

// TestExactArgs verifies that exactArgs accepts the right count and
// reports mismatches as usage errors naming the command.
func TestExactArgs(t *testing.T) {
	cmd := &cobra.Command{Use: "hamm <first> <second>"}

	tests := []struct {
		name    string
		n       int
		args    []string
		wantErr string
	}{
		{
			name: "matching count passes",
			n:    2,
			args: []string{"GAGCCTACTAACGGGAT", "CATCGTAATGACGGCCT"},
		},
		{
			name:    "too few arguments",
			n:       2,
			args:    []string{"GAGCCTACTAACGGGAT"},
			wantErr: `"hamm" expects 2 argument(s), received 1`,
		},
		{
			name:    "too many arguments",
			n:       2,
			args:    []string{"A", "C", "G"},
			wantErr: `"hamm" expects 2 argument(s), received 3`,
		},
		{
			name: "zero arguments allowed when n is zero",
			n:    0,
			args: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := exactArgs(tt.n)(cmd, tt.args)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			cliErr, ok := err.(*model.CLIError)
			require.True(t, ok, "expected a CLIError, got %T", err)
			assert.Equal(t, model.ExitUsageError, cliErr.Code)
			assert.Equal(t, tt.wantErr, cliErr.Message)
		})
	}
}

// TestRequireFlags verifies that requireFlags reports the first missing
// flag as a usage error and passes when every named flag was set.
func TestRequireFlags(t *testing.T) {
	newCmd := func() *cobra.Command {
		cmd := &cobra.Command{Use: "fib"}
		cmd.Flags().IntP("months", "m", 0, "")
		cmd.Flags().IntP("pairs", "p", 0, "")
		return cmd
	}

	t.Run("all flags set passes", func(t *testing.T) {
		cmd := newCmd()
		require.NoError(t, cmd.Flags().Set("months", "5"))
		require.NoError(t, cmd.Flags().Set("pairs", "3"))

		assert.NoError(t, requireFlags(cmd, "months", "pairs"))
	})

	t.Run("missing flag is a usage error", func(t *testing.T) {
		cmd := newCmd()
		require.NoError(t, cmd.Flags().Set("months", "5"))

		err := requireFlags(cmd, "months", "pairs")
		require.Error(t, err)
		cliErr, ok := err.(*model.CLIError)
		require.True(t, ok, "expected a CLIError, got %T", err)
		assert.Equal(t, model.ExitUsageError, cliErr.Code)
		assert.Equal(t, "required flag --pairs not set", cliErr.Message)
	})

	t.Run("flag left at default is still missing", func(t *testing.T) {
		cmd := newCmd()

		err := requireFlags(cmd, "months")
		require.Error(t, err)
		cliErr, ok := err.(*model.CLIError)
		require.True(t, ok, "expected a CLIError, got %T", err)
		assert.Equal(t, "required flag --months not set", cliErr.Message)
	})
}

// TestParseIntArg verifies integer parsing and that malformed values are
// reported as usage errors naming the argument.
func TestParseIntArg(t *testing.T) {
	tests := []struct {
		name    string
		argName string
		value   string
		want    int
		wantErr string
	}{
		{
			name:    "plain integer",
			argName: "n",
			value:   "12",
			want:    12,
		},
		{
			name:    "negative integer",
			argName: "n",
			value:   "-3",
			want:    -3,
		},
		{
			name:    "non-numeric value",
			argName: "n",
			value:   "abc",
			wantErr: `argument <n> must be an integer, got "abc"`,
		},
		{
			name:    "float is not an integer",
			argName: "heterozygous",
			value:   "2.5",
			wantErr: `argument <heterozygous> must be an integer, got "2.5"`,
		},
		{
			name:    "empty value",
			argName: "n",
			value:   "",
			wantErr: `argument <n> must be an integer, got ""`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseIntArg(tt.argName, tt.value)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				assert.Equal(t, tt.want, got)
				return
			}

			require.Error(t, err)
			cliErr, ok := err.(*model.CLIError)
			require.True(t, ok, "expected a CLIError, got %T", err)
			assert.Equal(t, model.ExitUsageError, cliErr.Code)
			assert.Equal(t, tt.wantErr, cliErr.Message)
		})
	}
}
