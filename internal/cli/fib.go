// Package cli — fib.go implements the "rosalind fib" command.
//
// The fib command computes the rabbit-pair population after a number of
// months when every mature pair produces a fixed-size litter each month
// and no pair dies. Counts grow exponentially and are printed in full,
// arbitrary precision.
package cli

import (
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/spf13/cobra"

	"github.com/savish/rosalind/internal/fib"
	"github.com/savish/rosalind/internal/model"
)

// fibFlags holds the flag values for the fib command.
// These are bound to cobra flags in NewFibCommand.
type fibFlags struct {
	months int // -m: number of months to simulate
	pairs  int // -p: litter size per mature pair
}

// NewFibCommand creates the "fib" cobra command.
// It is called from NewRootCommand to register as a subcommand.
func NewFibCommand() *cobra.Command {
	flags := &fibFlags{}

	cmd := &cobra.Command{
		Use:   "fib -m <months> -p <pairs>",
		Short: "Count rabbit pairs under an immortal breeding model",
		Long: `Count the rabbit pairs alive after a number of months.

The population starts with one newborn pair. Pairs mature for one month,
then produce a litter of the given size every month. No pair dies, so
F(n) = F(n-1) + pairs * F(n-2).

Examples:
  rosalind fib -m 5 -p 3
  rosalind fib --months 30 --pairs 4 --json`,

		Args: exactArgs(0),

		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireFlags(cmd, "months", "pairs"); err != nil {
				return err
			}
			return runFib(flags)
		},
	}

	cmd.Flags().IntVarP(&flags.months, "months", "m", 0, "Number of months to simulate (required)")
	cmd.Flags().IntVarP(&flags.pairs, "pairs", "p", 0, "Litter size per mature pair (required)")

	return cmd
}

// runFib computes the population and prints it.
func runFib(flags *fibFlags) error {
	VerboseLog("Simulating %d months with litter size %d", flags.months, flags.pairs)

	count, err := fib.Growth(flags.months, flags.pairs)
	if err != nil {
		return model.WrapCLIError(model.ExitValidationError, "invalid population parameters", err)
	}

	printFibResult(flags.months, flags.pairs, count)
	return nil
}

// printFibResult outputs the population count in text or JSON format,
// depending on the global --json flag.
func printFibResult(months, pairs int, count *big.Int) {
	if IsJSONOutput() {
		printFibResultJSON(months, pairs, count)
	} else {
		fmt.Println(count.String())
	}
}

// fibJSON is the JSON output structure for the fib command. The count is
// a decimal string because it routinely exceeds the integer range JSON
// numbers can carry safely.
type fibJSON struct {
	Months int    `json:"months"`
	Litter int    `json:"litter"`
	Count  string `json:"count"`
}

// printFibResultJSON outputs the population count as structured JSON.
func printFibResultJSON(months, pairs int, count *big.Int) {
	data, _ := json.MarshalIndent(fibJSON{
		Months: months,
		Litter: pairs,
		Count:  count.String(),
	}, "", "  ")
	fmt.Println(string(data))
}
