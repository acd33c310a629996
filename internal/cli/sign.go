// Package cli — sign.go implements the "rosalind sign" command.
//
// The sign command enumerates every signed permutation of {1..n}: each
// permutation combined with every way of negating its elements. The first
// line is the total count n! * 2^n. Rows are streamed exactly as in perm.
package cli

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/savish/rosalind/internal/model"
	"github.com/savish/rosalind/internal/perm"
)

// NewSignCommand creates the "sign" cobra command.
// It is called from NewRootCommand to register as a subcommand.
func NewSignCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sign <n>",
		Short: "Enumerate every signed permutation of 1..n",
		Long: `Enumerate every signed permutation of the numbers 1 through n:
every permutation combined with every choice of sign for its elements.

The first line is the total count n! * 2^n. Each following line is one
signed permutation, space-separated. Permutations advance in
lexicographic order; within a permutation the sign patterns count up in
binary, most significant bit first, with a zero bit negating the element.
n must be between 1 and 9.

Examples:
  rosalind sign 2
  rosalind sign 2 --json`,

		Args: exactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			return runSign(args[0])
		},
	}
}

// runSign parses n and streams the enumeration to stdout.
func runSign(arg string) error {
	n, err := parseIntArg("n", arg)
	if err != nil {
		return err
	}
	if n < 1 || n > maxEnumerationLength {
		return model.NewCLIError(
			model.ExitValidationError,
			fmt.Sprintf("n must be between 1 and %d, got %d", maxEnumerationLength, n),
		)
	}

	gen, err := perm.NewSignedGenerator(n)
	if err != nil {
		return model.WrapCLIError(model.ExitValidationError, "cannot enumerate signed permutations", err)
	}
	count := perm.SignedCount(n)
	VerboseLog("Enumerating %s signed permutations of 1..%d", count.String(), n)

	w := bufio.NewWriter(os.Stdout)
	if IsJSONOutput() {
		err = writePermJSON(w, count, gen.Next)
	} else {
		err = writePermText(w, count, gen.Next)
	}
	if err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "failed to write signed permutations", err)
	}
	return nil
}
