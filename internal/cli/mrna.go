// Package cli — mrna.go implements the "rosalind mrna" command.
//
// The mrna command counts how many distinct RNA strings could encode a
// given protein, modulo 1,000,000. The count multiplies the codon
// degeneracy of every residue and the three possible stop codons.
package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/savish/rosalind/internal/model"
	"github.com/savish/rosalind/internal/seq"
)

// rnaCountModulus keeps the reverse-translation count within the range
// the exercise asks for.
const rnaCountModulus = 1000000

// NewMRNACommand creates the "mrna" cobra command.
// It is called from NewRootCommand to register as a subcommand.
func NewMRNACommand() *cobra.Command {
	return &cobra.Command{
		Use:   "mrna <protein_string>",
		Short: "Count the RNA strings that could encode a protein",
		Long: `Count the distinct RNA strings that translate to the given protein
and then terminate with a stop codon.

The count is the product of each residue's codon degeneracy times three
for the stop codon, reported modulo 1,000,000.

Examples:
  rosalind mrna MA
  rosalind mrna MA --json`,

		Args: exactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			return runMRNA(args[0])
		},
	}
}

// runMRNA validates the protein and prints the source-string count.
func runMRNA(arg string) error {
	protein, err := seq.ParseProtein(arg)
	if err != nil {
		return model.WrapCLIError(model.ExitValidationError, "invalid protein string", err)
	}
	VerboseLog("Counting RNA sources for a %d-residue protein", len(protein))

	printMRNAResult(protein.RNACount(rnaCountModulus))
	return nil
}

// printMRNAResult outputs the count in text or JSON format, depending on
// the global --json flag.
func printMRNAResult(count int) {
	if IsJSONOutput() {
		printMRNAResultJSON(count)
	} else {
		fmt.Println(count)
	}
}

// mrnaJSON is the JSON output structure for the mrna command.
type mrnaJSON struct {
	Count   int `json:"count"`
	Modulus int `json:"modulus"`
}

// printMRNAResultJSON outputs the count as structured JSON.
func printMRNAResultJSON(count int) {
	data, _ := json.MarshalIndent(mrnaJSON{Count: count, Modulus: rnaCountModulus}, "", "  ")
	fmt.Println(string(data))
}
