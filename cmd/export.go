package cmd

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"companygen/config"
	"companygen/internal/collation"
	"companygen/output"
	"companygen/storage"
)

var (
	exportFormat string
	exportOutput string
	exportDBPath string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the SQLite catalog to CSV/Excel",
	Long: `Export the local company catalog, sorted by name with the configured
locale collation.

Output format can be selected explicitly via --format or inferred from the
--output extension.`,
	Example: `
  # Export to CSV
  companygen export --db ./companygen.db --output ./companies.csv

  # Export to Excel
  companygen export --db ./companygen.db --output ./companies.xlsx

  # Force Excel format independent of extension
  companygen export --format excel --output ./companies.out
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadAndValidate()
		if err != nil {
			return err
		}

		format := exportFormat
		if strings.TrimSpace(format) == "" {
			format = detectExportFormat(exportOutput)
		}

		store, err := storage.OpenSQLite(exportDBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		records, err := store.ListCompanies()
		if err != nil {
			return err
		}

		comparator, err := collation.New(cfg.Collation.Locale)
		if err != nil {
			return err
		}
		sort.SliceStable(records, func(i, j int) bool {
			return comparator.Less(records[i].Name, records[j].Name)
		})

		writer, err := output.WriterForFormat(format)
		if err != nil {
			return err
		}
		if err := writer.Write(exportOutput, records); err != nil {
			return err
		}

		fmt.Printf("Export completed. Records: %d, Format: %s, File: %s\n", len(records), format, exportOutput)
		return nil
	},
}

func detectExportFormat(path string) string {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	switch ext {
	case "csv":
		return "csv"
	case "xlsx", "xlsm", "xls":
		return "excel"
	default:
		return "csv"
	}
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "", "Output format: csv|excel (optional, inferred from output extension)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file path")
	exportCmd.Flags().StringVar(&exportDBPath, "db", "./companygen.db", "Path to local SQLite catalog")

	_ = exportCmd.MarkFlagRequired("output")
}
