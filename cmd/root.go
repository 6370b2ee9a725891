package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"companygen/config"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "companygen",
	Short: "Generate a sorted company data artifact from a CSV company list.",
	Long: `
**********************************************
*               COMPANYGEN                   *
**********************************************

This CLI reads a CSV file of company records, reduces each row to its first
ISIN and the company name, sorts the result with locale-aware collation, and
writes a generated source artifact (COMPANY_DATA = [...]).

It can also maintain a local SQLite catalog of extracted records and export
that catalog to CSV or Excel.
`,
	Example: `
  # Create configuration file
  companygen config create

  # Generate the artifact from the configured input
  companygen generate

  # Generate with explicit paths
  companygen generate -i ./companies.csv -o ./company_data.js

  # Accumulate records into the local catalog
  companygen import -i ./companies.csv --db ./companygen.db

  # Export the catalog
  companygen export --output ./companies.xlsx
`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	config.SetDefaults()

	rootCmd.PersistentFlags().StringVar(&cfgFile, "configFile", "", "Config file override (default discovery: $HOME/.companygen.yaml, then ./.companygen.yaml)")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".companygen" (without extension).
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".companygen")
	}

	viper.AutomaticEnv() // read in environment variables that match

	// Defaults cover every key, so a missing config file is not an error.
	if err := viper.ReadInConfig(); err != nil {
		fmt.Fprintln(os.Stderr, "No config file found, using defaults. Create one with: companygen config create")
	}
}
