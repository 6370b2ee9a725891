package config

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"golang.org/x/text/language"
)

const (
	KeyInputPath       = "input.path"
	KeyInputISINColumn = "input.isin_column"
	KeyInputNameColumn = "input.name_column"
	KeyOutputPath      = "output.path"
	KeyOutputVariable  = "output.variable"
	KeyOutputIndent    = "output.indent"
	KeyCollationLocale = "collation.locale"
)

type Config struct {
	Input     InputConfig     `mapstructure:"input" validate:"required"`
	Output    OutputConfig    `mapstructure:"output" validate:"required"`
	Collation CollationConfig `mapstructure:"collation"`
}

type InputConfig struct {
	Path       string `mapstructure:"path" validate:"required"`
	ISINColumn string `mapstructure:"isin_column" validate:"required"`
	NameColumn string `mapstructure:"name_column" validate:"required"`
}

type OutputConfig struct {
	Path     string `mapstructure:"path" validate:"required"`
	Variable string `mapstructure:"variable" validate:"required"`
	Indent   int    `mapstructure:"indent" validate:"min=0,max=8"`
}

type CollationConfig struct {
	Locale string `mapstructure:"locale" validate:"required"`
}

// SetDefaults sets default values if not provided
func SetDefaults() {
	setDefaults(viper.GetViper())
}

// LoadAndValidate loads config from Viper and validates it
func LoadAndValidate() (*Config, error) {
	return loadAndValidateFromViper(viper.GetViper())
}

// ValidateYAMLContent validates configuration from raw YAML content.
func ValidateYAMLContent(content []byte) (*Config, error) {
	local := viper.New()
	setDefaults(local)
	local.SetConfigType("yaml")
	if err := local.ReadConfig(bytes.NewReader(content)); err != nil {
		return nil, fmt.Errorf("read config content: %w", err)
	}
	return loadAndValidateFromViper(local)
}

// ExampleYAML returns the default configuration template.
func ExampleYAML() string {
	return `# companygen configuration
input:
  path: "companies.csv"
  isin_column: "ISIN"
  name_column: "Name"

output:
  path: "company_data.js"
  variable: "COMPANY_DATA"
  indent: 2

collation:
  locale: "en"
`
}

func loadAndValidateFromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if err := validateColumns(cfg.Input); err != nil {
		return nil, err
	}
	if err := validateVariable(cfg.Output.Variable); err != nil {
		return nil, err
	}
	if err := validateLocale(cfg.Collation.Locale); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyInputPath, "companies.csv")
	v.SetDefault(KeyInputISINColumn, "ISIN")
	v.SetDefault(KeyInputNameColumn, "Name")
	v.SetDefault(KeyOutputPath, "company_data.js")
	v.SetDefault(KeyOutputVariable, "COMPANY_DATA")
	v.SetDefault(KeyOutputIndent, 2)
	v.SetDefault(KeyCollationLocale, "en")
}

func validateColumns(input InputConfig) error {
	if strings.TrimSpace(input.ISINColumn) == "" {
		return fmt.Errorf("validation failed: input.isin_column must not be blank")
	}
	if strings.TrimSpace(input.NameColumn) == "" {
		return fmt.Errorf("validation failed: input.name_column must not be blank")
	}
	if input.ISINColumn == input.NameColumn {
		return fmt.Errorf("validation failed: input.isin_column and input.name_column must differ")
	}
	return nil
}

func validateVariable(variable string) error {
	if strings.TrimSpace(variable) == "" {
		return fmt.Errorf("validation failed: output.variable must not be blank")
	}
	if strings.ContainsAny(variable, " \t") {
		return fmt.Errorf("validation failed: output.variable %q must not contain whitespace", variable)
	}
	return nil
}

func validateLocale(locale string) error {
	if _, err := language.Parse(locale); err != nil {
		return fmt.Errorf("validation failed: collation.locale %q is not a valid BCP 47 tag: %w", locale, err)
	}
	return nil
}
