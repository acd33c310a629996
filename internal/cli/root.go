// Package cli implements the cobra-based CLI commands for rosalind.
//
// Each subcommand (one per exercise, plus the problems catalog) is defined
// in its own file within this package. This file defines the root command
// that serves as the parent for all subcommands and handles global flags.
package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/savish/rosalind/internal/config"
	"github.com/savish/rosalind/internal/model"
)

// Global flag variables shared across all subcommands.
// These are bound to cobra persistent flags on the root command,
// which makes them available to every subcommand automatically.
var (
	// jsonOutput controls whether command output is formatted as JSON.
	// When true, results print as structured JSON for machine consumption.
	// When false (default), output uses the plain textual shape each
	// exercise expects.
	jsonOutput bool

	// verbose enables detailed logging output for debugging.
	// When true, additional information about operations is printed to stderr.
	verbose bool
)

// version, commit, and date are set at build time via ldflags.
// They are injected from the main package to display version information.
var (
	// Version is the semantic version of the binary (e.g., "1.0.0").
	Version = "dev"

	// Commit is the Git commit hash the binary was built from.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// NewRootCommand creates and configures the root cobra command.
// This is the entry point for the entire CLI application.
//
// The root command itself does not perform any action — it only provides
// help text and global flags. Actual functionality is provided by the
// per-problem subcommands.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		// Use is the one-line usage pattern shown in help output.
		Use:   "rosalind",
		Short: "Command-line solutions to introductory bioinformatics exercises",
		Long: `rosalind solves the introductory bioinformatics exercises from the
Rosalind problem list, one subcommand per problem.

Each subcommand reads a small input (a string, a pair of numbers, or a
small text file), computes the answer, and prints it to standard output.
Run "rosalind problems" for the full catalog.`,

		// SilenceUsage prevents cobra from printing usage on every error.
		// We handle error output ourselves for cleaner UX.
		SilenceUsage: true,

		// SilenceErrors prevents cobra from printing errors automatically.
		// We format errors ourselves (text or JSON based on --json flag).
		SilenceErrors: true,

		// Version is displayed when --version flag is used.
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),

		// PersistentPreRunE runs before any subcommand and applies defaults
		// from the optional user config file. Explicit flags win.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return applyConfigDefaults(cmd)
		},
	}

	// PersistentFlags are inherited by all subcommands. This is the cobra
	// mechanism for global flags — any flag defined here is automatically
	// available in every subcommand without re-declaration.
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	// Flag parse failures are usage errors, not general failures, so remap
	// them to the usage exit code.
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return model.WrapCLIError(model.ExitUsageError, "invalid command line", err)
	})

	// Register subcommands. Each subcommand is defined in its own file
	// (dna.go, rna.go, etc.) and returns a *cobra.Command.
	rootCmd.AddCommand(NewDNACommand())
	rootCmd.AddCommand(NewRNACommand())
	rootCmd.AddCommand(NewRevcCommand())
	rootCmd.AddCommand(NewProtCommand())
	rootCmd.AddCommand(NewGCCommand())
	rootCmd.AddCommand(NewFibCommand())
	rootCmd.AddCommand(NewFibdCommand())
	rootCmd.AddCommand(NewHammCommand())
	rootCmd.AddCommand(NewPermCommand())
	rootCmd.AddCommand(NewSignCommand())
	rootCmd.AddCommand(NewSubsCommand())
	rootCmd.AddCommand(NewMRNACommand())
	rootCmd.AddCommand(NewIprbCommand())
	rootCmd.AddCommand(NewProblemsCommand())

	return rootCmd
}

// applyConfigDefaults loads the optional user config and applies it to the
// global flags, unless the corresponding flag was set explicitly on the
// command line.
func applyConfigDefaults(cmd *cobra.Command) error {
	opts, err := config.LoadDefault()
	if err != nil {
		return err
	}

	flags := cmd.Root().PersistentFlags()
	if !flags.Changed("json") && opts.Output == model.OutputJSON {
		jsonOutput = true
	}
	if !flags.Changed("verbose") && opts.Verbose {
		verbose = true
	}
	return nil
}

// Execute runs the root command and handles exit codes.
// This is the main entry point called from main.go.
//
// It inspects errors returned by cobra commands and translates them
// into appropriate OS exit codes. CLIError types carry their own
// exit codes; other errors default to exit code 1.
func Execute(rootCmd *cobra.Command) {
	if err := rootCmd.Execute(); err != nil {
		// Check if the error is a CLIError with a specific exit code.
		// errors.As would also work here, but a type assertion is simpler
		// for this single-level check.
		if cliErr, ok := err.(*model.CLIError); ok {
			printError(cliErr.Message, cliErr.Err)
			os.Exit(int(cliErr.Code))
		}

		// Generic error — exit with code 1.
		printError(err.Error(), nil)
		os.Exit(int(model.ExitGeneralError))
	}
}

// printError outputs an error message in the appropriate format
// (JSON or text) based on the --json global flag.
func printError(message string, underlying error) {
	if jsonOutput {
		errObj := map[string]interface{}{
			"error": map[string]interface{}{
				"message": message,
			},
		}
		if underlying != nil {
			if errMap, ok := errObj["error"].(map[string]interface{}); ok {
				errMap["detail"] = underlying.Error()
			}
		}
		// Errors go to stderr even in JSON mode, because stdout is
		// reserved for successful command output.
		data, _ := json.MarshalIndent(errObj, "", "  ")
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		// Text format: "Error: <message>" on stderr.
		if underlying != nil {
			fmt.Fprintf(os.Stderr, "Error: %s: %v\n", message, underlying)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %s\n", message)
		}
	}
}

// VerboseLog prints a message to stderr only when verbose mode is enabled.
// This is used throughout the CLI for debug/trace output that helps
// users understand what operations are being performed.
func VerboseLog(format string, args ...interface{}) {
	if verbose {
		fmt.Fprintf(os.Stderr, "[verbose] "+format+"\n", args...)
	}
}

// IsJSONOutput returns whether the --json flag is set.
// Subcommands use this to decide their output format.
func IsJSONOutput() bool {
	return jsonOutput
}
