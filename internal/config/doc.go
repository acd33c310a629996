// Package config loads the optional rosalind user configuration. The file
// is JSONC (JSON with comments and trailing commas), stripped with
// github.com/tidwall/jsonc before parsing with encoding/json, and supplies
// defaults for the global output and verbosity flags. Explicit flags
// always win over configured values.
package config
