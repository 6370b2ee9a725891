package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"companygen/config"
)

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show active configuration values.",
	Long: `Display the currently loaded configuration and the resolved config file path.

This command validates the configuration before printing values.`,
	Example: `
  # Show active configuration
  companygen config show
`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadAndValidate()
		if err != nil {
			fmt.Println("Invalid config:", err)
			return
		}

		if configPath := viper.ConfigFileUsed(); configPath != "" {
			fmt.Println("Config file loaded from:", configPath)
		} else {
			fmt.Println("No config file loaded, showing defaults.")
		}
		fmt.Println("Configuration:")
		fmt.Printf("input.path: %s\n", cfg.Input.Path)
		fmt.Printf("input.isin_column: %s\n", cfg.Input.ISINColumn)
		fmt.Printf("input.name_column: %s\n", cfg.Input.NameColumn)
		fmt.Printf("output.path: %s\n", cfg.Output.Path)
		fmt.Printf("output.variable: %s\n", cfg.Output.Variable)
		fmt.Printf("output.indent: %d\n", cfg.Output.Indent)
		fmt.Printf("collation.locale: %s\n", cfg.Collation.Locale)
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
}
