// Package cli — input.go reads the file arguments of the prot and gc
// commands. The conventional "-" path reads standard input instead, so
// both commands compose with shell pipelines.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/savish/rosalind/internal/model"
)

// readInput returns the contents of the file at path, or of standard
// input when path is "-". File failures map to the file-error exit code.
func readInput(path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, model.WrapCLIError(model.ExitFileError, "failed to read standard input", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, model.WrapCLIError(
				model.ExitFileError,
				fmt.Sprintf("input file not found: %s", path),
				err,
			)
		}
		return nil, model.WrapCLIError(
			model.ExitFileError,
			fmt.Sprintf("failed to read input file %s", path),
			err,
		)
	}
	return data, nil
}
