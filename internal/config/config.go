// Package config handles configuration loading for rulegen.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/offlinesiem/rulegen/pkg/rulegen"
	"github.com/offlinesiem/rulegen/pkg/rulegen/parser"
	"github.com/offlinesiem/rulegen/pkg/rulegen/transform"
)

// EnvPrefix is the prefix for environment overrides (RULEGEN_OUTPUT_DIR, ...).
const EnvPrefix = "RULEGEN"

// Config holds the complete rulegen configuration.
type Config struct {
	Input        string         `mapstructure:"input"`
	Sheet        string         `mapstructure:"sheet"`
	OutputDir    string         `mapstructure:"output_dir" validate:"required"`
	Extension    string         `mapstructure:"extension" validate:"required"`
	HeaderRows   int            `mapstructure:"header_rows" validate:"min=0"`
	AnalysisFile string         `mapstructure:"analysis_file"`
	DryRun       bool           `mapstructure:"dry_run"`
	Columns      parser.Columns `mapstructure:"columns"`
	Rule         RuleConfig     `mapstructure:"rule"`
	Logging      LoggingConfig  `mapstructure:"logging"`
}

// RuleConfig holds the static fields written into every rule.
type RuleConfig struct {
	Author    string   `mapstructure:"author" validate:"required"`
	Status    string   `mapstructure:"status" validate:"required,oneof=active disabled experimental deprecated"`
	Date      string   `mapstructure:"date" validate:"required,datetime=2006-01-02"`
	Tags      []string `mapstructure:"tags"`
	AssignIDs bool     `mapstructure:"assign_ids"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `mapstructure:"level" validate:"oneof=debug info warn error"`
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	cols := parser.DefaultColumns()
	rule := transform.DefaultRuleDefaults()

	v.SetDefault("input", "")
	v.SetDefault("sheet", "")
	v.SetDefault("output_dir", "rules")
	v.SetDefault("extension", "yaml")
	v.SetDefault("header_rows", 1)
	v.SetDefault("analysis_file", "")
	v.SetDefault("dry_run", false)
	v.SetDefault("columns.case_id", cols.CaseID)
	v.SetDefault("columns.case_name", cols.CaseName)
	v.SetDefault("columns.title", cols.Title)
	v.SetDefault("columns.details", cols.Details)
	v.SetDefault("columns.query", cols.Query)
	v.SetDefault("rule.author", rule.Author)
	v.SetDefault("rule.status", rule.Status)
	v.SetDefault("rule.date", rule.Date)
	v.SetDefault("rule.tags", rule.Tags)
	v.SetDefault("rule.assign_ids", false)
	v.SetDefault("logging.level", "info")
}

// Load reads configuration into a Config. If configFile is empty, rulegen.yaml
// is searched for in the working directory and ./config; a missing file is
// not an error. Environment variables override file values.
func Load(v *viper.Viper, configFile string) (*Config, error) {
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("rulegen")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Options converts the configuration into generation options.
func (c *Config) Options() rulegen.Options {
	opts := rulegen.DefaultOptions()
	opts.SheetName = c.Sheet
	opts.HeaderRows = c.HeaderRows
	opts.Columns = c.Columns
	opts.Rule = transform.RuleDefaults{
		Author:    c.Rule.Author,
		Status:    c.Rule.Status,
		Date:      c.Rule.Date,
		Tags:      c.Rule.Tags,
		AssignIDs: c.Rule.AssignIDs,
	}
	return opts
}
