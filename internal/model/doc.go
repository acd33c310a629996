// Package model defines the CLI-level types shared by every rosalind
// subcommand.
//
// This package contains pure data structures with no external dependencies:
// the exit-code taxonomy (ExitCode), a custom error type (CLIError) that
// carries exit codes from problem handlers up to the process boundary, and
// the output-format enum (OutputFormat) used by the configuration layer.
//
// All problem inputs are transient values parsed from the command line or a
// small input file; nothing in this package persists beyond one invocation.
package model
