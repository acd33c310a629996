package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/savish/rosalind/internal/model"
	"github.com/tidwall/jsonc"
)

const (
	// EnvVar overrides the config search path when set.
	EnvVar = "ROSALIND_CONFIG"

	// DefaultFileName is the config file looked up in the working
	// directory.
	DefaultFileName = "rosalind.jsonc"
)

// Options holds the defaults a config file may set. The zero value keeps
// the built-in defaults (text output, quiet).
type Options struct {
	// Output selects the default output format ("text" or "json"). Empty
	// means not configured.
	Output model.OutputFormat

	// Verbose enables verbose logging by default.
	Verbose bool
}

// Find returns the path of the config file to load, or the empty string
// when no config exists. The search order is $ROSALIND_CONFIG, then
// ./rosalind.jsonc, then <user config dir>/rosalind/config.jsonc. A path
// set explicitly through $ROSALIND_CONFIG must exist; the other candidates
// are optional.
func Find() (string, error) {
	if path := os.Getenv(EnvVar); path != "" {
		if _, err := os.Stat(path); err != nil {
			return "", model.WrapCLIError(
				model.ExitFileError,
				fmt.Sprintf("config file %s (from $%s) not found", path, EnvVar),
				err,
			)
		}
		return path, nil
	}

	candidates := []string{DefaultFileName}
	if dir, err := os.UserConfigDir(); err == nil {
		candidates = append(candidates, filepath.Join(dir, "rosalind", "config.jsonc"))
	}
	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", nil
}

// Load reads and parses the config file at path.
func Load(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, model.WrapCLIError(
			model.ExitFileError,
			fmt.Sprintf("failed to read config file %s", path),
			err,
		)
	}

	// Strip comments and trailing commas, then parse as plain JSON.
	var raw struct {
		Output  string `json:"output"`
		Verbose bool   `json:"verbose"`
	}
	if err := json.Unmarshal(jsonc.ToJSON(data), &raw); err != nil {
		return Options{}, model.WrapCLIError(
			model.ExitGeneralError,
			fmt.Sprintf("failed to parse config file %s", path),
			err,
		)
	}

	opts := Options{Verbose: raw.Verbose}
	if raw.Output != "" {
		format, err := model.ParseOutputFormat(raw.Output)
		if err != nil {
			return Options{}, model.WrapCLIError(
				model.ExitGeneralError,
				fmt.Sprintf("invalid output format in %s", path),
				err,
			)
		}
		opts.Output = format
	}
	return opts, nil
}

// LoadDefault loads options from the first config file Find locates, or
// zero options when there is none.
func LoadDefault() (Options, error) {
	path, err := Find()
	if err != nil {
		return Options{}, err
	}
	if path == "" {
		return Options{}, nil
	}
	return Load(path)
}
