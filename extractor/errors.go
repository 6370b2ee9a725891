package extractor

import (
	"errors"
	"fmt"
)

// ErrEmptyInput is returned when the input contains no non-blank lines.
var ErrEmptyInput = errors.New("input contains no non-blank lines")

// SchemaError reports a required header column missing from the input.
type SchemaError struct {
	Column string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("required column %q not found in header row", e.Column)
}

// InputNotFoundError reports that the input path does not resolve to a
// readable file.
type InputNotFoundError struct {
	Path string
	Err  error
}

func (e *InputNotFoundError) Error() string {
	return fmt.Sprintf("input file %s not found", e.Path)
}

func (e *InputNotFoundError) Unwrap() error {
	return e.Err
}
