package output

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"companygen/company"
)

func TestCSVWriter_WritesHeaderAndRows(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "companies.csv")
	writer := &CSVWriter{}

	records := []company.Record{
		{ISIN: "US0001", Name: "Acme, Inc."},
		{ISIN: "US0002", Name: `Zeta "Z" Corp`},
	}
	if err := writer.Write(path, records); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("open output: %v", err)
	}
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	if err != nil {
		t.Fatalf("read output: %v", err)
	}

	want := [][]string{
		{"ISIN", "Name"},
		{"US0001", "Acme, Inc."},
		{"US0002", `Zeta "Z" Corp`},
	}
	if !reflect.DeepEqual(rows, want) {
		t.Fatalf("unexpected rows: want %v, got %v", want, rows)
	}
}
