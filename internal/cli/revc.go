// Package cli — revc.go implements the "rosalind revc" command.
//
// The revc command computes the reverse complement of a DNA string: the
// sequence read back to front with every base complemented (A↔T, C↔G).
package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/savish/rosalind/internal/model"
	"github.com/savish/rosalind/internal/seq"
)

// NewRevcCommand creates the "revc" cobra command.
// It is called from NewRootCommand to register as a subcommand.
func NewRevcCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "revc <dna_string>",
		Short: "Compute the reverse complement of a DNA string",
		Long: `Compute the reverse complement of a DNA string.

The strand is reversed and every base replaced by its Watson-Crick
complement: A with T, C with G, and vice versa.

Examples:
  rosalind revc AAAACCCGGT
  rosalind revc AAAACCCGGT --json`,

		Args: exactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			return runRevc(args[0])
		},
	}
}

// runRevc validates the strand and prints its reverse complement.
func runRevc(arg string) error {
	strand, err := seq.ParseDNA(arg)
	if err != nil {
		return model.WrapCLIError(model.ExitValidationError, "invalid DNA string", err)
	}
	VerboseLog("Reverse complementing a %d-base strand", len(strand))

	printRevcResult(strand.ReverseComplement())
	return nil
}

// printRevcResult outputs the reverse complement in text or JSON format,
// depending on the global --json flag.
func printRevcResult(revc seq.DNA) {
	if IsJSONOutput() {
		printRevcResultJSON(revc)
	} else {
		fmt.Println(revc.String())
	}
}

// revcJSON is the JSON output structure for the revc command.
type revcJSON struct {
	ReverseComplement string `json:"reverseComplement"`
}

// printRevcResultJSON outputs the reverse complement as structured JSON.
func printRevcResultJSON(revc seq.DNA) {
	data, _ := json.MarshalIndent(revcJSON{ReverseComplement: revc.String()}, "", "  ")
	fmt.Println(string(data))
}
