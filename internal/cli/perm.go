// Package cli — perm.go implements the "rosalind perm" command.
//
// The perm command enumerates every permutation of {1..n} in lexicographic
// order, preceded by the total count n!. Output volume grows factorially,
// so rows are streamed through a buffered writer instead of being
// collected in memory; the JSON envelope is streamed the same way.
package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"math/big"
	"os"

	"github.com/spf13/cobra"

	"github.com/savish/rosalind/internal/model"
	"github.com/savish/rosalind/internal/perm"
)

// maxEnumerationLength caps the n accepted by perm and sign. perm(9)
// already prints 362,880 rows; anything larger stops being a usable
// terminal answer.
const maxEnumerationLength = 9

// NewPermCommand creates the "perm" cobra command.
// It is called from NewRootCommand to register as a subcommand.
func NewPermCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "perm <n>",
		Short: "Enumerate every permutation of 1..n",
		Long: `Enumerate every permutation of the numbers 1 through n.

The first line is the total count n!. Each following line is one
permutation, space-separated, in lexicographic order. n must be between
1 and 9.

Examples:
  rosalind perm 3
  rosalind perm 3 --json`,

		Args: exactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			return runPerm(args[0])
		},
	}
}

// runPerm parses n and streams the enumeration to stdout.
func runPerm(arg string) error {
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

	gen, err := perm.NewGenerator(n)
	if err != nil {
		return model.WrapCLIError(model.ExitValidationError, "cannot enumerate permutations", err)
	}
	count := perm.Factorial(n)
	VerboseLog("Enumerating %s permutations of 1..%d", count.String(), n)

	w := bufio.NewWriter(os.Stdout)
	if IsJSONOutput() {
		err = writePermJSON(w, count, gen.Next)
	} else {
		err = writePermText(w, count, gen.Next)
	}
	if err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "failed to write permutations", err)
	}
	return nil
}

// writePermText streams the count line and one space-separated row per
// permutation, then flushes.
func writePermText(w *bufio.Writer, count *big.Int, next func() ([]int, bool)) error {
	fmt.Fprintln(w, count.String())
	for {
		row, ok := next()
		if !ok {
			break
		}
		fmt.Fprintln(w, FormatInts(row))
	}
	return w.Flush()
}

// writePermJSON streams a JSON object with the count and one compact
// array per row. The envelope is written by hand because materializing
// every row for json.MarshalIndent would defeat the streaming.
func writePermJSON(w *bufio.Writer, count *big.Int, next func() ([]int, bool)) error {
	fmt.Fprintf(w, "{\n  \"count\": \"%s\",\n  \"permutations\": [", count.String())
	first := true
	for {
		row, ok := next()
		if !ok {
			break
		}
		data, err := json.Marshal(row)
		if err != nil {
			return err
		}
		if first {
			first = false
			io.WriteString(w, "\n    ")
		} else {
			io.WriteString(w, ",\n    ")
		}
		w.Write(data)
	}
	io.WriteString(w, "\n  ]\n}\n")
	return w.Flush()
}
