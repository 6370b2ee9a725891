package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"companygen/config"
	"companygen/extractor"
	"companygen/internal/collation"
	"companygen/output"
)

var (
	generateInput  string
	generateOutput string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the company data artifact from the CSV input",
	Long: `Read the CSV input, extract one record per row (first ISIN + company name),
sort by name with locale-aware collation, and write the artifact file.

The artifact is a single assignment of a pretty-printed JSON array:

  COMPANY_DATA = [
    {
      "ISIN": "...",
      "Name": "..."
    }
  ]

Rows with an empty ISIN cell are skipped. The input must have a header row
containing the configured ISIN and name columns (exact, case-sensitive).
No artifact is written when extraction fails.`,
	Example: `
  # Use paths from configuration
  companygen generate

  # Override input and output paths
  companygen generate -i ./companies.csv -o ./company_data.js
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadAndValidate()
		if err != nil {
			return err
		}

		inputPath := firstNonEmpty(generateInput, cfg.Input.Path)
		outputPath := firstNonEmpty(generateOutput, cfg.Output.Path)

		result, err := runExtraction(inputPath, *cfg)
		if err != nil {
			return err
		}

		writer := &output.ArtifactWriter{
			Variable: cfg.Output.Variable,
			Indent:   cfg.Output.Indent,
		}
		if err := writer.Write(outputPath, result.Companies); err != nil {
			return err
		}

		fmt.Printf("Generated %d records to %s (rows read: %d, rows skipped: %d)\n",
			result.Count(), outputPath, result.LinesRead, result.RowsSkipped)
		return nil
	},
}

// runExtraction reads the input file and runs the extractor with the
// configured columns and collation locale.
func runExtraction(inputPath string, cfg config.Config) (*extractor.Result, error) {
	raw, err := extractor.ReadInput(inputPath)
	if err != nil {
		var notFound *extractor.InputNotFoundError
		if errors.As(err, &notFound) {
			return nil, fmt.Errorf("%w\nHint: place the CSV at %s or set input.path in the config file", err, inputPath)
		}
		return nil, err
	}

	comparator, err := collation.New(cfg.Collation.Locale)
	if err != nil {
		return nil, err
	}

	return extractor.Extract(raw, extractor.Options{
		ISINColumn: cfg.Input.ISINColumn,
		NameColumn: cfg.Input.NameColumn,
		Comparator: comparator,
	})
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return strings.TrimSpace(value)
		}
	}
	return ""
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVarP(&generateInput, "input", "i", "", "Input CSV path (overrides input.path from config)")
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "Artifact output path (overrides output.path from config)")
}
