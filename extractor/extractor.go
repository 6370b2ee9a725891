package extractor

import (
	"fmt"
	"sort"
	"strings"

	"companygen/company"
	"companygen/internal/collation"
)

// Options selects the header columns to extract and the collation used to
// order the result. Column matching is exact and case-sensitive.
type Options struct {
	ISINColumn string
	NameColumn string
	Comparator *collation.Comparator
}

// Result is the outcome of one extraction run.
type Result struct {
	Companies   []company.Record
	LinesRead   int
	RowsSkipped int
}

// Count returns the number of extracted records.
func (r *Result) Count() int {
	return len(r.Companies)
}

// Extract parses raw CSV text into company records sorted by name.
//
// The first non-blank line is the header and must contain the configured
// ISIN and name columns. Data rows with an empty or absent ISIN cell are
// skipped. The ISIN is reduced to its first pipe-delimited component with
// surrounding whitespace trimmed; the name is kept verbatim.
//
// Extract returns ErrEmptyInput when no non-blank lines remain and a
// *SchemaError when a required column is missing. Either error aborts the
// whole run; there is no partial output.
func Extract(raw string, opts Options) (*Result, error) {
	if opts.Comparator == nil {
		return nil, fmt.Errorf("extract requires a collation comparator")
	}

	lines := splitLines(raw)
	if len(lines) == 0 {
		return nil, ErrEmptyInput
	}

	header := ParseLine(lines[0])
	isinIndex, err := columnIndex(header, opts.ISINColumn)
	if err != nil {
		return nil, err
	}
	nameIndex, err := columnIndex(header, opts.NameColumn)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Companies: make([]company.Record, 0, len(lines)-1),
		LinesRead: len(lines) - 1,
	}
	for _, line := range lines[1:] {
		fields := ParseLine(line)
		if isinIndex >= len(fields) || strings.TrimSpace(fields[isinIndex]) == "" {
			result.RowsSkipped++
			continue
		}

		name := ""
		if nameIndex < len(fields) {
			name = fields[nameIndex]
		}
		result.Companies = append(result.Companies, company.Record{
			ISIN: firstIdentifier(fields[isinIndex]),
			Name: name,
		})
	}

	sort.SliceStable(result.Companies, func(i, j int) bool {
		return opts.Comparator.Less(result.Companies[i].Name, result.Companies[j].Name)
	})

	return result, nil
}

// splitLines breaks raw text on \n or \r\n and drops blank and
// whitespace-only lines, keeping the relative order of the rest.
func splitLines(raw string) []string {
	lines := make([]string, 0, 64)
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

func columnIndex(header []string, column string) (int, error) {
	for i, value := range header {
		if value == column {
			return i, nil
		}
	}
	return 0, &SchemaError{Column: column}
}

// firstIdentifier reduces a multi-valued identifier cell ("US1234|US5678")
// to its first component with surrounding whitespace trimmed.
func firstIdentifier(raw string) string {
	value, _, _ := strings.Cut(raw, "|")
	return strings.TrimSpace(value)
}
