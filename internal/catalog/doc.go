// Package catalog exposes the metadata of every implemented exercise:
// problem code, title, input shape, and a one-line brief. The data lives
// in an embedded YAML file and feeds the problems subcommand.
package catalog
