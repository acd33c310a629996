// Package cli — gc.go implements the "rosalind gc" command.
//
// The gc command reads a FASTA file (or stdin), computes the GC content of
// every record, and prints the ID and percentage of the record with the
// highest GC content. The --all flag prints every record instead, in input
// order.
package cli

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/savish/rosalind/internal/fasta"
	"github.com/savish/rosalind/internal/model"
	"github.com/savish/rosalind/internal/seq"
)

// gcFlags holds the flag values for the gc command.
// These are bound to cobra flags in NewGCCommand.
type gcFlags struct {
	// all prints every record's GC content instead of only the maximum.
	all bool
}

// gcEntry pairs a record ID with its GC percentage.
type gcEntry struct {
	ID      string
	Percent float64
}

// NewGCCommand creates the "gc" cobra command.
// It is called from NewRootCommand to register as a subcommand.
func NewGCCommand() *cobra.Command {
	flags := &gcFlags{}

	cmd := &cobra.Command{
		Use:   "gc <fasta_file>",
		Short: "Find the FASTA record with the highest GC content",
		Long: `Compute the GC content of every record in a FASTA file.

By default the command prints two lines: the ID of the record with the
highest GC content and its percentage with six fractional digits. Ties go
to the record appearing first. With --all, every record is printed in
input order. Pass "-" to read the FASTA data from standard input.

Examples:
  rosalind gc dataset.fasta
  rosalind gc --all dataset.fasta
  cat dataset.fasta | rosalind gc -`,

		Args: exactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			return runGC(args[0], flags)
		},
	}

	cmd.Flags().BoolVar(&flags.all, "all", false, "Print every record, not only the highest-GC one")

	return cmd
}

// runGC reads the FASTA input, computes GC percentages, and prints either
// the highest-GC record or all of them.
func runGC(path string, flags *gcFlags) error {
	data, err := readInput(path)
	if err != nil {
		return err
	}

	records, err := fasta.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		return model.WrapCLIError(model.ExitValidationError, "invalid FASTA input", err)
	}
	if len(records) == 0 {
		return model.NewCLIError(model.ExitValidationError, "FASTA input contains no records")
	}
	VerboseLog("Parsed %d FASTA records", len(records))

	entries, err := gcEntries(records)
	if err != nil {
		return err
	}

	if flags.all {
		printGCAllResult(entries)
		return nil
	}
	printGCResult(maxGCEntry(entries))
	return nil
}

// gcEntries validates every record as DNA and computes its GC percentage.
func gcEntries(records []fasta.Record) ([]gcEntry, error) {
	entries := make([]gcEntry, 0, len(records))
	for _, rec := range records {
		strand, err := seq.ParseDNA(rec.Sequence)
		if err != nil {
			return nil, model.WrapCLIError(
				model.ExitValidationError,
				fmt.Sprintf("record %q is not a DNA string", rec.ID),
				err,
			)
		}
		entries = append(entries, gcEntry{ID: rec.ID, Percent: strand.GCContent()})
	}
	return entries, nil
}

// maxGCEntry returns the entry with the highest GC percentage, preferring
// the earliest on ties. The slice must be non-empty.
func maxGCEntry(entries []gcEntry) gcEntry {
	max := entries[0]
	for _, e := range entries[1:] {
		if e.Percent > max.Percent {
			max = e
		}
	}
	return max
}

// printGCResult outputs a single record in text or JSON format, depending
// on the global --json flag.
func printGCResult(entry gcEntry) {
	if IsJSONOutput() {
		data, _ := json.MarshalIndent(gcJSONEntry(entry), "", "  ")
		fmt.Println(string(data))
	} else {
		fmt.Printf("%s\n%.6f\n", entry.ID, entry.Percent)
	}
}

// printGCAllResult outputs every record in input order.
func printGCAllResult(entries []gcEntry) {
	if IsJSONOutput() {
		type resultJSON struct {
			Records []gcJSON `json:"records"`
		}
		result := resultJSON{Records: make([]gcJSON, 0, len(entries))}
		for _, e := range entries {
			result.Records = append(result.Records, gcJSONEntry(e))
		}
		data, _ := json.MarshalIndent(result, "", "  ")
		fmt.Println(string(data))
		return
	}

	for _, e := range entries {
		fmt.Printf("%s\n%.6f\n", e.ID, e.Percent)
	}
}

// gcJSON is the JSON output structure for a single record.
type gcJSON struct {
	ID        string  `json:"id"`
	GCContent float64 `json:"gcContent"`
}

func gcJSONEntry(e gcEntry) gcJSON {
	return gcJSON{ID: e.ID, GCContent: e.Percent}
}
