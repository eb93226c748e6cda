package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/cleared-dev/ledgerbrain/internal/accounts"
	"github.com/cleared-dev/ledgerbrain/internal/id"
	"github.com/cleared-dev/ledgerbrain/internal/model"
)

// FileName is the project configuration file written by init.
const FileName = "ledgerbrain.yaml"

// EnvPrefix prefixes environment overrides, e.g. LEDGERBRAIN_POSTING_DEFAULT_STATUS.
const EnvPrefix = "LEDGERBRAIN"

// Config represents the top-level ledgerbrain.yaml configuration.
type Config struct {
	Business  BusinessConfig  `yaml:"business" mapstructure:"business"`
	Posting   PostingConfig   `yaml:"posting" mapstructure:"posting"`
	Interpret InterpretConfig `yaml:"interpret" mapstructure:"interpret"`
	Log       LogConfig       `yaml:"log" mapstructure:"log"`
	Ledger    LedgerConfig    `yaml:"ledger" mapstructure:"ledger"`
	Chart     ChartConfig     `yaml:"chart" mapstructure:"chart"`
}

// BusinessConfig identifies the business entity.
type BusinessConfig struct {
	ID         string `yaml:"id" mapstructure:"id"`
	Name       string `yaml:"name" mapstructure:"name"`
	EntityType string `yaml:"entity_type" mapstructure:"entity_type"`
}

// PostingConfig controls how assembled transactions start out.
type PostingConfig struct {
	DefaultStatus string `yaml:"default_status" mapstructure:"default_status"` // "draft" or "confirmed"
	IDStrategy    string `yaml:"id_strategy" mapstructure:"id_strategy"`       // "timestamp" or "uuid"
}

// InterpretConfig controls text interpretation.
type InterpretConfig struct {
	ReuseAmountDigitsForRate bool  `yaml:"reuse_amount_digits_for_rate" mapstructure:"reuse_amount_digits_for_rate"`
	DefaultGSTRate           int64 `yaml:"default_gst_rate" mapstructure:"default_gst_rate"`
}

// LogConfig controls logging output.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"` // "text" or "json"
}

// LedgerConfig locates the per-business transaction files.
type LedgerConfig struct {
	Dir string `yaml:"dir" mapstructure:"dir"`
}

// ChartConfig locates the chart of accounts.
type ChartConfig struct {
	Path string `yaml:"path" mapstructure:"path"`
}

// Load reads a ledgerbrain.yaml file from disk, applies LEDGERBRAIN_* environment
// overrides and validates the result.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	v := viper.New()
	setDefaults(v)
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new project.
func Default(businessID, businessName, entityType string) *Config {
	return &Config{
		Business: BusinessConfig{
			ID:         businessID,
			Name:       businessName,
			EntityType: entityType,
		},
		Posting: PostingConfig{
			DefaultStatus: string(model.StatusDraft),
			IDStrategy:    "timestamp",
		},
		Interpret: InterpretConfig{
			ReuseAmountDigitsForRate: true,
			DefaultGSTRate:           18,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Ledger: LedgerConfig{
			Dir: "ledger",
		},
		Chart: ChartConfig{
			Path: accounts.ChartFile,
		},
	}
}

func setDefaults(v *viper.Viper) {
	d := Default("", "", "")
	v.SetDefault("business.id", d.Business.ID)
	v.SetDefault("business.name", d.Business.Name)
	v.SetDefault("business.entity_type", d.Business.EntityType)
	v.SetDefault("posting.default_status", d.Posting.DefaultStatus)
	v.SetDefault("posting.id_strategy", d.Posting.IDStrategy)
	v.SetDefault("interpret.reuse_amount_digits_for_rate", d.Interpret.ReuseAmountDigitsForRate)
	v.SetDefault("interpret.default_gst_rate", d.Interpret.DefaultGSTRate)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("ledger.dir", d.Ledger.Dir)
	v.SetDefault("chart.path", d.Chart.Path)
}

// Validate checks option values that would otherwise fail deep inside the pipeline.
func Validate(cfg *Config) error {
	if !model.Status(cfg.Posting.DefaultStatus).Valid() {
		return fmt.Errorf("posting.default_status must be draft or confirmed, got %q", cfg.Posting.DefaultStatus)
	}
	if _, err := id.ForStrategy(cfg.Posting.IDStrategy); err != nil {
		return fmt.Errorf("posting.id_strategy: %w", err)
	}
	if cfg.Interpret.DefaultGSTRate < 0 || cfg.Interpret.DefaultGSTRate > 100 {
		return fmt.Errorf("interpret.default_gst_rate must be between 0 and 100, got %d", cfg.Interpret.DefaultGSTRate)
	}
	if _, err := logrus.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", cfg.Log.Level)
	}
	if cfg.Log.Format != "text" && cfg.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", cfg.Log.Format)
	}
	return nil
}
