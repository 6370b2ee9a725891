package cmd

import "github.com/spf13/cobra"

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage companygen configuration file values.",
	Long: `Create and display the companygen configuration file.

The configuration stores the pipeline values:
- input.path / input.isin_column / input.name_column
- output.path / output.variable / output.indent
- collation.locale`,
	Example: `
  # Create default config in $HOME/.companygen.yaml
  companygen config create

  # Show active config and source file
  companygen config show
`,
}

func init() {
	rootCmd.AddCommand(configCmd)
}
