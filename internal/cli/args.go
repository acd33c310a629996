// Package cli — args.go holds the shared argument plumbing: positional
// argument count validation, required-flag checks, and integer parsing.
// All failures here are usage errors (exit code 2), as opposed to domain
// validation failures (exit code 3) raised by the handlers.
package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/savish/rosalind/internal/model"
)

// exactArgs mirrors cobra.ExactArgs but reports the mismatch as a usage
// error so it maps to the usage exit code.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return model.NewCLIError(
				model.ExitUsageError,
				fmt.Sprintf("%q expects %d argument(s), received %d", cmd.Name(), n, len(args)),
			)
		}
		return nil
	}
}

// requireFlags reports a usage error when any of the named flags was not
// provided on the command line.
func requireFlags(cmd *cobra.Command, names ...string) error {
	for _, name := range names {
		if !cmd.Flags().Changed(name) {
			return model.NewCLIError(
				model.ExitUsageError,
				fmt.Sprintf("required flag --%s not set", name),
			)
		}
	}
	return nil
}

// parseIntArg converts a positional argument to an int, reporting a usage
// error naming the argument when the value is not an integer.
func parseIntArg(name, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, model.WrapCLIError(
			model.ExitUsageError,
			fmt.Sprintf("argument <%s> must be an integer, got %q", name, value),
			err,
		)
	}
	return n, nil
}
