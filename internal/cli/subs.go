// Package cli — subs.go implements the "rosalind subs" command.
//
// The subs command finds every occurrence of a motif in a DNA string and
// prints the 1-indexed starting positions, space-separated. Overlapping
// occurrences are all reported.
package cli

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/savish/rosalind/internal/model"
	"github.com/savish/rosalind/internal/seq"
)

// NewSubsCommand creates the "subs" cobra command.
// It is called from NewRootCommand to register as a subcommand.
func NewSubsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "subs <dna_string> <motif>",
		Short: "Locate every occurrence of a motif in a DNA string",
		Long: `Locate every occurrence of a motif in a DNA string.

The output is the 1-indexed starting position of every occurrence, in
ascending order, space-separated on one line. Overlapping occurrences are
all reported. When the motif does not occur the line is empty.

Examples:
  rosalind subs GATATATGCATATACTT ATAT
  rosalind subs GATATATGCATATACTT ATAT --json`,

		Args: exactArgs(2),

		RunE: func(cmd *cobra.Command, args []string) error {
			return runSubs(args[0], args[1])
		},
	}
}

// runSubs validates both strings and prints the motif positions.
func runSubs(strand, motif string) error {
	d, err := seq.ParseDNA(strand)
	if err != nil {
		return model.WrapCLIError(model.ExitValidationError, "invalid DNA string", err)
	}
	m, err := seq.ParseDNA(motif)
	if err != nil {
		return model.WrapCLIError(model.ExitValidationError, "invalid motif", err)
	}
	VerboseLog("Searching for a %d-base motif in a %d-base strand", len(m), len(d))

	printSubsResult(d.MotifPositions(m))
	return nil
}

// printSubsResult outputs the positions in text or JSON format, depending
// on the global --json flag.
func printSubsResult(positions []int) {
	if IsJSONOutput() {
		printSubsResultJSON(positions)
	} else {
		fmt.Println(FormatInts(positions))
	}
}

// subsJSON is the JSON output structure for the subs command.
type subsJSON struct {
	Positions []int `json:"positions"`
}

// printSubsResultJSON outputs the positions as structured JSON.
func printSubsResultJSON(positions []int) {
	// Use an empty slice instead of nil to ensure JSON output shows []
	// instead of null when the motif does not occur.
	if positions == nil {
		positions = make([]int, 0)
	}
	data, _ := json.MarshalIndent(subsJSON{Positions: positions}, "", "  ")
	fmt.Println(string(data))
}

// FormatInts renders integers as a single space-separated line.
//
// This function is exported for testing purposes (tested in subs_test.go);
// perm and sign reuse it for their output rows.
//
// Example:
//
//	[2, 4, 10] → "2 4 10"
//	[]         → ""
func FormatInts(values []int) string {
	if len(values) == 0 {
		return ""
	}

	var b strings.Builder
	for i, v := range values {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(v))
	}
	return b.String()
}
