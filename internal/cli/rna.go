// Package cli — rna.go implements the "rosalind rna" command.
//
// The rna command transcribes a DNA string into RNA by replacing every
// thymine with uracil.
package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/savish/rosalind/internal/model"
	"github.com/savish/rosalind/internal/seq"
)

// NewRNACommand creates the "rna" cobra command.
// It is called from NewRootCommand to register as a subcommand.
func NewRNACommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rna <dna_string>",
		Short: "Transcribe a DNA string into RNA",
		Long: `Transcribe a DNA string into RNA.

Transcription replaces every thymine (T) with uracil (U); all other
symbols are unchanged, so the output has the same length as the input.

Examples:
  rosalind rna GATGGAACTTGACTACGTAAATT
  rosalind rna GATGGAACTTGACTACGTAAATT --json`,

		Args: exactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			return runRNA(args[0])
		},
	}
}

// runRNA validates the strand and prints its transcription.
func runRNA(arg string) error {
	strand, err := seq.ParseDNA(arg)
	if err != nil {
		return model.WrapCLIError(model.ExitValidationError, "invalid DNA string", err)
	}
	VerboseLog("Transcribing a %d-base strand", len(strand))

	printRNAResult(strand.Transcribe())
	return nil
}

// printRNAResult outputs the RNA string in text or JSON format, depending
// on the global --json flag.
func printRNAResult(rna seq.RNA) {
	if IsJSONOutput() {
		printRNAResultJSON(rna)
	} else {
		fmt.Println(rna.String())
	}
}

// rnaJSON is the JSON output structure for the rna command.
type rnaJSON struct {
	RNA string `json:"rna"`
}

// printRNAResultJSON outputs the RNA string as structured JSON.
func printRNAResultJSON(rna seq.RNA) {
	data, _ := json.MarshalIndent(rnaJSON{RNA: rna.String()}, "", "  ")
	fmt.Println(string(data))
}
