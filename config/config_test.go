package config

import (
	"strings"
	"testing"
)

func TestValidateYAMLContent_AcceptsDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := ValidateYAMLContent([]byte(ExampleYAML()))
	if err != nil {
		t.Fatalf("expected example config to validate: %v", err)
	}

	if cfg.Input.ISINColumn != "ISIN" || cfg.Input.NameColumn != "Name" {
		t.Fatalf("unexpected columns: %q / %q", cfg.Input.ISINColumn, cfg.Input.NameColumn)
	}
	if cfg.Output.Variable != "COMPANY_DATA" || cfg.Output.Indent != 2 {
		t.Fatalf("unexpected output config: %q / %d", cfg.Output.Variable, cfg.Output.Indent)
	}
	if cfg.Collation.Locale != "en" {
		t.Fatalf("unexpected locale: %q", cfg.Collation.Locale)
	}
}

func TestValidateYAMLContent_AppliesDefaultsForOmittedKeys(t *testing.T) {
	t.Parallel()

	cfg, err := ValidateYAMLContent([]byte(`input:
  path: "./data/list.csv"
`))
	if err != nil {
		t.Fatalf("expected partial config to validate: %v", err)
	}
	if cfg.Input.Path != "./data/list.csv" {
		t.Fatalf("unexpected input path: %q", cfg.Input.Path)
	}
	if cfg.Output.Path != "company_data.js" {
		t.Fatalf("expected default output path, got %q", cfg.Output.Path)
	}
}

func TestValidateYAMLContent_RejectsInvalidLocale(t *testing.T) {
	t.Parallel()

	_, err := ValidateYAMLContent([]byte(`collation:
  locale: "not a locale!"
`))
	if err == nil {
		t.Fatalf("expected validation error for invalid locale")
	}
	if !strings.Contains(err.Error(), "collation.locale") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateYAMLContent_RejectsIdenticalColumns(t *testing.T) {
	t.Parallel()

	_, err := ValidateYAMLContent([]byte(`input:
  path: "companies.csv"
  isin_column: "Name"
  name_column: "Name"
`))
	if err == nil {
		t.Fatalf("expected validation error for identical columns")
	}
	if !strings.Contains(err.Error(), "must differ") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateYAMLContent_RejectsOutOfRangeIndent(t *testing.T) {
	t.Parallel()

	_, err := ValidateYAMLContent([]byte(`output:
  indent: 20
`))
	if err == nil {
		t.Fatalf("expected validation error for indent out of range")
	}
}

func TestValidateYAMLContent_RejectsVariableWithWhitespace(t *testing.T) {
	t.Parallel()

	_, err := ValidateYAMLContent([]byte(`output:
  variable: "COMPANY DATA"
`))
	if err == nil {
		t.Fatalf("expected validation error for variable with whitespace")
	}
}
