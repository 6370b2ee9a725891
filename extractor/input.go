package extractor

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// ReadInput reads the whole input file as UTF-8 text, stripping a leading BOM
// when present. A missing file is reported as *InputNotFoundError so the CLI
// can add a hint for the user.
func ReadInput(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", &InputNotFoundError{Path: path, Err: err}
		}
		return "", fmt.Errorf("read input file %s: %w", path, err)
	}
	return strings.TrimPrefix(string(data), "\ufeff"), nil
}
