package output

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"companygen/company"
)

// ArtifactWriter emits the generated source artifact: a single assignment of
// the record array to a variable, pretty-printed JSON, trailing newline.
type ArtifactWriter struct {
	Variable string
	Indent   int
}

func (w *ArtifactWriter) Write(path string, records []company.Record) error {
	rendered, err := w.Render(records)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, rendered, 0o644); err != nil {
		return fmt.Errorf("write artifact %s: %w", path, err)
	}
	return nil
}

// Render produces the artifact bytes without touching the filesystem.
func (w *ArtifactWriter) Render(records []company.Record) ([]byte, error) {
	// A nil slice would serialize as "null"; the artifact always holds an array.
	if records == nil {
		records = []company.Record{}
	}

	encoded, err := json.MarshalIndent(records, "", strings.Repeat(" ", w.Indent))
	if err != nil {
		return nil, fmt.Errorf("encode company records: %w", err)
	}

	artifact := make([]byte, 0, len(w.Variable)+len(encoded)+4)
	artifact = append(artifact, w.Variable...)
	artifact = append(artifact, " = "...)
	artifact = append(artifact, encoded...)
	artifact = append(artifact, '\n')
	return artifact, nil
}
