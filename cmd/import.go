package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"companygen/config"
	"companygen/storage"
)

var (
	importInput  string
	importDBPath string
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Extract company records and persist them in the local SQLite catalog",
	Long: `Read a CSV input, extract records the same way "generate" does, and insert
them into a local SQLite catalog. Rows already present with the same ISIN and
name are ignored, so repeated imports accumulate a deduplicated catalog.`,
	Example: `
  # Import the configured input into the default catalog
  companygen import

  # Import an explicit file into an explicit catalog
  companygen import -i ./companies.csv --db ./companygen.db
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadAndValidate()
		if err != nil {
			return err
		}

		inputPath := firstNonEmpty(importInput, cfg.Input.Path)

		result, err := runExtraction(inputPath, *cfg)
		if err != nil {
			return err
		}

		store, err := storage.OpenSQLite(importDBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		inserted, err := store.InsertCompanies(result.Companies, inputPath)
		if err != nil {
			return err
		}

		fmt.Printf("Import completed. Rows read: %d, Records extracted: %d, Rows skipped: %d, Records persisted: %d\n",
			result.LinesRead,
			result.Count(),
			result.RowsSkipped,
			inserted,
		)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)

	importCmd.Flags().StringVarP(&importInput, "input", "i", "", "Input CSV path (overrides input.path from config)")
	importCmd.Flags().StringVar(&importDBPath, "db", "./companygen.db", "Path to local SQLite catalog")
}
