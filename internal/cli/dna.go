// Package cli — dna.go implements the "rosalind dna" command.
//
// The dna command counts the occurrences of each nucleotide in a DNA
// string and prints the four counts in alphabetical symbol order
// (A, C, G, T), space-separated.
package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/savish/rosalind/internal/model"
	"github.com/savish/rosalind/internal/seq"
)

// NewDNACommand creates the "dna" cobra command.
// It is called from NewRootCommand to register as a subcommand.
func NewDNACommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dna <dna_string>",
		Short: "Count the nucleotides in a DNA string",
		Long: `Count the occurrences of each nucleotide in a DNA string.

The four counts are printed on one line in alphabetical symbol order
(A, C, G, T), separated by single spaces.

Examples:
  rosalind dna AGCTTTTCATTCTGACTGCA
  rosalind dna AGCTTTTCATTCTGACTGCA --json`,

		Args: exactArgs(1),

		// RunE is used instead of Run so we can return errors. Cobra will
		// pass them to the Execute error handler in root.go.
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDNA(args[0])
		},
	}
}

// runDNA validates the strand and prints its nucleotide counts.
func runDNA(arg string) error {
	strand, err := seq.ParseDNA(arg)
	if err != nil {
		return model.WrapCLIError(model.ExitValidationError, "invalid DNA string", err)
	}
	VerboseLog("Counting nucleotides in a %d-base strand", len(strand))

	printDNAResult(strand.Counts())
	return nil
}

// printDNAResult outputs the counts in text or JSON format, depending on
// the global --json flag.
func printDNAResult(counts seq.NucleotideCounts) {
	if IsJSONOutput() {
		printDNAResultJSON(counts)
	} else {
		fmt.Println(counts.String())
	}
}

// dnaJSON is the JSON output structure for the dna command.
type dnaJSON struct {
	A int `json:"a"`
	C int `json:"c"`
	G int `json:"g"`
	T int `json:"t"`
}

// printDNAResultJSON outputs the counts as structured JSON.
func printDNAResultJSON(counts seq.NucleotideCounts) {
	data, _ := json.MarshalIndent(dnaJSON{
		A: counts.A,
		C: counts.C,
		G: counts.G,
		T: counts.T,
	}, "", "  ")
	fmt.Println(string(data))
}
