// Package cli — prot.go implements the "rosalind prot" command.
//
// The prot command reads a raw RNA string from a file (or stdin) and
// translates it into a protein string, codon by codon. Translation stops
// at the first stop codon; an RNA string whose coding region is not a
// whole number of codons is rejected.
package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/savish/rosalind/internal/model"
	"github.com/savish/rosalind/internal/seq"
)

// NewProtCommand creates the "prot" cobra command.
// It is called from NewRootCommand to register as a subcommand.
func NewProtCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "prot <rna_file>",
		Short: "Translate an RNA string into a protein string",
		Long: `Translate an RNA string into a protein string.

The file must hold a raw RNA string (surrounding whitespace is ignored).
Pass "-" to read the string from standard input. Decoding proceeds three
bases at a time using the standard codon table and ends at the first stop
codon; anything after the stop is ignored.

Examples:
  rosalind prot dataset.txt
  echo AUGGCCUGA | rosalind prot -`,

		Args: exactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			return runProt(args[0])
		},
	}
}

// runProt reads the RNA string, translates it, and prints the protein.
func runProt(path string) error {
	data, err := readInput(path)
	if err != nil {
		return err
	}
	VerboseLog("Read %d bytes from %s", len(data), path)

	rna, err := seq.ParseRNA(string(data))
	if err != nil {
		return model.WrapCLIError(model.ExitValidationError, "invalid RNA string", err)
	}

	protein, err := rna.Translate()
	if err != nil {
		return model.WrapCLIError(model.ExitValidationError, "cannot translate RNA string", err)
	}
	VerboseLog("Translated %d bases into %d residues", len(rna), len(protein))

	printProtResult(protein)
	return nil
}

// printProtResult outputs the protein in text or JSON format, depending on
// the global --json flag.
func printProtResult(protein seq.Protein) {
	if IsJSONOutput() {
		printProtResultJSON(protein)
	} else {
		fmt.Println(protein.String())
	}
}

// protJSON is the JSON output structure for the prot command.
type protJSON struct {
	Protein string `json:"protein"`
}

// printProtResultJSON outputs the protein as structured JSON.
func printProtResultJSON(protein seq.Protein) {
	data, _ := json.MarshalIndent(protJSON{Protein: protein.String()}, "", "  ")
	fmt.Println(string(data))
}
