package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"companygen/storage"
)

var (
	clearDBPath  string
	clearConfirm bool
)

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all records from the local SQLite catalog",
	Long:  `Delete every record from the local catalog. Requires --yes to confirm.`,
	Example: `
  # Wipe the default catalog
  companygen clear --yes

  # Wipe an explicit catalog
  companygen clear --db ./companygen.db --yes
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !clearConfirm {
			return fmt.Errorf("refusing to delete catalog rows without --yes")
		}

		store, err := storage.OpenSQLite(clearDBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		deleted, err := store.DeleteAllCompanies()
		if err != nil {
			return err
		}

		fmt.Printf("Catalog cleared. Records deleted: %d\n", deleted)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(clearCmd)

	clearCmd.Flags().StringVar(&clearDBPath, "db", "./companygen.db", "Path to local SQLite catalog")
	clearCmd.Flags().BoolVar(&clearConfirm, "yes", false, "Confirm deletion")
}
