// Package cli — hamm.go implements the "rosalind hamm" command.
//
// The hamm command computes the Hamming distance between two DNA strings
// of equal length: the number of positions at which they differ. Strings
// of different lengths are rejected.
package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/savish/rosalind/internal/model"
	"github.com/savish/rosalind/internal/seq"
)

// NewHammCommand creates the "hamm" cobra command.
// It is called from NewRootCommand to register as a subcommand.
func NewHammCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "hamm <dna_1> <dna_2>",
		Short: "Compute the Hamming distance between two DNA strings",
		Long: `Compute the Hamming distance between two DNA strings of equal
length: the number of positions at which they carry different bases.

Strings of different lengths are rejected.

Examples:
  rosalind hamm GAGCCTACTAACGGGAT CATCGTAATGACGGCCT
  rosalind hamm GAGCCTACTAACGGGAT CATCGTAATGACGGCCT --json`,

		Args: exactArgs(2),

		RunE: func(cmd *cobra.Command, args []string) error {
			return runHamm(args[0], args[1])
		},
	}
}

// runHamm validates both strands and prints their Hamming distance.
func runHamm(first, second string) error {
	a, err := seq.ParseDNA(first)
	if err != nil {
		return model.WrapCLIError(model.ExitValidationError, "invalid first DNA string", err)
	}
	b, err := seq.ParseDNA(second)
	if err != nil {
		return model.WrapCLIError(model.ExitValidationError, "invalid second DNA string", err)
	}
	VerboseLog("Comparing strands of length %d and %d", len(a), len(b))

	distance, err := seq.Hamming(a, b)
	if err != nil {
		return model.WrapCLIError(model.ExitValidationError, "cannot compare strands", err)
	}

	printHammResult(distance)
	return nil
}

// printHammResult outputs the distance in text or JSON format, depending
// on the global --json flag.
func printHammResult(distance int) {
	if IsJSONOutput() {
		printHammResultJSON(distance)
	} else {
		fmt.Println(distance)
	}
}

// hammJSON is the JSON output structure for the hamm command.
type hammJSON struct {
	Distance int `json:"distance"`
}

// printHammResultJSON outputs the distance as structured JSON.
func printHammResultJSON(distance int) {
	data, _ := json.MarshalIndent(hammJSON{Distance: distance}, "", "  ")
	fmt.Println(string(data))
}
