// Package cli — fibd.go implements the "rosalind fibd" command.
//
// The fibd command is the mortal variant of fib: every rabbit pair dies a
// fixed number of months after birth. Counts are printed in full,
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

// fibdFlags holds the flag values for the fibd command.
// These are bound to cobra flags in NewFibdCommand.
type fibdFlags struct {
	months   int // -m: number of months to simulate
	lifespan int // -l: months each pair lives
}

// NewFibdCommand creates the "fibd" cobra command.
// It is called from NewRootCommand to register as a subcommand.
func NewFibdCommand() *cobra.Command {
	flags := &fibdFlags{}

	cmd := &cobra.Command{
		Use:   "fibd -m <months> -l <lifespan>",
		Short: "Count rabbit pairs when every pair dies after a fixed lifespan",
		Long: `Count the rabbit pairs alive after a number of months when every
pair dies exactly lifespan months after birth.

Breeding works as in fib with a litter size of one: the population starts
with a single newborn pair and every pair older than one month produces
one new pair per month until it dies.

Examples:
  rosalind fibd -m 6 -l 3
  rosalind fibd --months 90 --lifespan 17 --json`,

		Args: exactArgs(0),

		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireFlags(cmd, "months", "lifespan"); err != nil {
				return err
			}
			return runFibd(flags)
		},
	}

	cmd.Flags().IntVarP(&flags.months, "months", "m", 0, "Number of months to simulate (required)")
	cmd.Flags().IntVarP(&flags.lifespan, "lifespan", "l", 0, "Months each pair lives (required)")

	return cmd
}

// runFibd computes the surviving population and prints it.
func runFibd(flags *fibdFlags) error {
	VerboseLog("Simulating %d months with a %d-month lifespan", flags.months, flags.lifespan)

	count, err := fib.Mortal(flags.months, flags.lifespan)
	if err != nil {
		return model.WrapCLIError(model.ExitValidationError, "invalid population parameters", err)
	}

	printFibdResult(flags.months, flags.lifespan, count)
	return nil
}

// printFibdResult outputs the population count in text or JSON format,
// depending on the global --json flag.
func printFibdResult(months, lifespan int, count *big.Int) {
	if IsJSONOutput() {
		printFibdResultJSON(months, lifespan, count)
	} else {
		fmt.Println(count.String())
	}
}

// fibdJSON is the JSON output structure for the fibd command. The count
// is a decimal string for the same reason as in fib.
type fibdJSON struct {
	Months   int    `json:"months"`
	Lifespan int    `json:"lifespan"`
	Count    string `json:"count"`
}

// printFibdResultJSON outputs the population count as structured JSON.
func printFibdResultJSON(months, lifespan int, count *big.Int) {
	data, _ := json.MarshalIndent(fibdJSON{
		Months:   months,
		Lifespan: lifespan,
		Count:    count.String(),
	}, "", "  ")
	fmt.Println(string(data))
}
