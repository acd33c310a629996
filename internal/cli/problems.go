// Package cli — problems.go implements the "rosalind problems" command.
//
// The problems command lists every problem the CLI can solve, with the
// input each subcommand expects.
package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/savish/rosalind/internal/catalog"
	"github.com/savish/rosalind/internal/model"
)

// NewProblemsCommand creates the "problems" cobra command.
// It is called from NewRootCommand to register as a subcommand.
func NewProblemsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "problems",
		Short: "List the problems this CLI solves",
		Long: `List every supported problem with its code, title and expected input.

Each code doubles as the subcommand that solves the problem.

Examples:
  rosalind problems
  rosalind problems --json`,

		Args: exactArgs(0),

		RunE: func(cmd *cobra.Command, args []string) error {
			return runProblems()
		},
	}
}

// runProblems loads the problem catalog and prints it.
func runProblems() error {
	problems, err := catalog.All()
	if err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "failed to load problem catalog", err)
	}
	VerboseLog("Catalog holds %d problems", len(problems))

	printProblemsResult(problems)
	return nil
}

// printProblemsResult outputs the catalog in text or JSON format,
// depending on the global --json flag.
func printProblemsResult(problems []catalog.Problem) {
	if IsJSONOutput() {
		printProblemsResultJSON(problems)
	} else {
		printProblemsResultText(problems)
	}
}

// printProblemsResultText outputs the catalog as a human-readable table.
func printProblemsResultText(problems []catalog.Problem) {
	fmt.Printf("%-6s %-38s %s\n", "CODE", "TITLE", "INPUT")
	for _, p := range problems {
		fmt.Printf("%-6s %-38s %s\n", p.Code, p.Title, p.Input)
	}
}

// problemJSON is the JSON output structure for a single catalog entry.
type problemJSON struct {
	Code  string `json:"code"`
	Title string `json:"title"`
	Input string `json:"input"`
	Brief string `json:"brief"`
}

// printProblemsResultJSON outputs the catalog as structured JSON.
func printProblemsResultJSON(problems []catalog.Problem) {
	entries := make([]problemJSON, 0, len(problems))
	for _, p := range problems {
		entries = append(entries, problemJSON{
			Code:  p.Code,
			Title: p.Title,
			Input: p.Input,
			Brief: p.Brief,
		})
	}
	data, _ := json.MarshalIndent(struct {
		Problems []problemJSON `json:"problems"`
	}{Problems: entries}, "", "  ")
	fmt.Println(string(data))
}
