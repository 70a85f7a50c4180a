package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	EnvPrefix = "ITINERARY_DIFF"

	// Default inputs, compared when no paths are given.
	DefaultFirst  = "RS_ViaOW.xml"
	DefaultSecond = "RS_Via-3.xml"
)

type Config struct {
	First     string      `mapstructure:"first"`
	Second    string      `mapstructure:"second"`
	MarkDiffs bool        `mapstructure:"mark_diffs"`
	LogLevel  string      `mapstructure:"log_level"`
	Table     TableConfig `mapstructure:"table"`
}

type TableConfig struct {
	LabelWidth int `mapstructure:"label_width"`
	ValueWidth int `mapstructure:"value_width"`
}

// New returns a viper instance with defaults and environment lookup set up.
// Environment variables use the ITINERARY_DIFF_ prefix, e.g. ITINERARY_DIFF_TABLE_VALUE_WIDTH.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault("first", DefaultFirst)
	v.SetDefault("second", DefaultSecond)
	v.SetDefault("mark_diffs", false)
	v.SetDefault("log_level", "warn")
	v.SetDefault("table.label_width", 20)
	v.SetDefault("table.value_width", 24)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the optional config file at path into v and decodes the result.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.Table.LabelWidth < 0 || cfg.Table.ValueWidth < 0 {
		return nil, fmt.Errorf("table widths must not be negative")
	}
	return &cfg, nil
}
