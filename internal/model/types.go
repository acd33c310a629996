package model

import (
	"fmt"
	"strings"
)

// OutputFormat selects how a subcommand renders its result on stdout.
type OutputFormat string

const (
	// OutputText is the default human-readable format. Each problem prints
	// exactly the textual shape its exercise expects (space-separated
	// integers, newline-joined strings, and so on).
	OutputText OutputFormat = "text"

	// OutputJSON renders results as structured JSON for machine consumption.
	OutputJSON OutputFormat = "json"
)

// String returns the string representation of OutputFormat.
func (f OutputFormat) String() string {
	return string(f)
}

// IsValid checks whether the OutputFormat value is one of the predefined
// formats.
func (f OutputFormat) IsValid() bool {
	switch f {
	case OutputText, OutputJSON:
		return true
	default:
		return false
	}
}

// ParseOutputFormat converts a string to an OutputFormat.
// Returns an error if the string does not match any valid format.
func ParseOutputFormat(s string) (OutputFormat, error) {
	format := OutputFormat(strings.ToLower(s))
	if !format.IsValid() {
		return "", fmt.Errorf("invalid output format: %q (valid: text, json)", s)
	}
	return format, nil
}

// ExitCode defines the process exit codes used by the CLI. Each run is
// all-or-nothing: on any failure no partial result reaches stdout, the error
// is written to stderr, and the code below tells scripts which class of
// failure occurred.
type ExitCode int

const (
	// ExitSuccess indicates the command completed and printed its result.
	ExitSuccess ExitCode = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError ExitCode = 1

	// ExitUsageError indicates a missing or malformed command-line argument
	// (for example, a non-numeric value where an integer is required).
	ExitUsageError ExitCode = 2

	// ExitValidationError indicates the input parsed but failed domain
	// validation: a character outside the sequence alphabet, mismatched
	// sequence lengths, or a numeric parameter out of range.
	ExitValidationError ExitCode = 3

	// ExitFileError indicates an input file was missing or unreadable.
	ExitFileError ExitCode = 4
)

// CLIError is a custom error type that carries an exit code.
// This allows the CLI layer to translate handler errors into
// appropriate process exit codes.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface. It returns the human-readable
// error message, optionally including the underlying error.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a new CLIError with the given exit code and message.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a new CLIError that wraps an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}
