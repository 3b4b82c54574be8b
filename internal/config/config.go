// File: internal/config/config.go

// Package config holds the module configuration: logging knobs and the
// layout defaults applied when a page is first written with only part of its
// parameters supplied.
package config

import (
	"fmt"

	"github.com/spf13/viper"
	"github.com/tailorkit/pagelayout/api/schemas"
)

// Config is the root configuration object.
type Config struct {
	Logger LoggerConfig `mapstructure:"logger" yaml:"logger"`
	Layout LayoutConfig `mapstructure:"layout" yaml:"layout"`
}

// LoggerConfig configures the zap bootstrap in internal/observability.
type LoggerConfig struct {
	Level       string `mapstructure:"level" yaml:"level"`
	Format      string `mapstructure:"format" yaml:"format"`
	AddSource   bool   `mapstructure:"add_source" yaml:"add_source"`
	ServiceName string `mapstructure:"service_name" yaml:"service_name"`
	// LogFile enables a rotated JSON file core when non-empty.
	LogFile    string `mapstructure:"log_file" yaml:"log_file"`
	MaxSize    int    `mapstructure:"max_size" yaml:"max_size"`
	MaxBackups int    `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAge     int    `mapstructure:"max_age" yaml:"max_age"`
	Compress   bool   `mapstructure:"compress" yaml:"compress"`
}

// MarginsConfig holds default hard margins in millimetres.
type MarginsConfig struct {
	Left   float64 `mapstructure:"left" yaml:"left"`
	Right  float64 `mapstructure:"right" yaml:"right"`
	Top    float64 `mapstructure:"top" yaml:"top"`
	Bottom float64 `mapstructure:"bottom" yaml:"bottom"`
}

// AlignmentConfig names the default alignment per axis: top/center/bottom
// and left/center/right.
type AlignmentConfig struct {
	Vertical   string `mapstructure:"vertical" yaml:"vertical"`
	Horizontal string `mapstructure:"horizontal" yaml:"horizontal"`
}

// LayoutConfig holds the defaults a lazily created page starts from.
type LayoutConfig struct {
	DefaultMarginsMM MarginsConfig   `mapstructure:"default_margins_mm" yaml:"default_margins_mm"`
	DefaultAlignment AlignmentConfig `mapstructure:"default_alignment" yaml:"default_alignment"`
}

// MarginsMM converts the configured default margins to the schema type.
func (l LayoutConfig) MarginsMM() schemas.Margins {
	return schemas.Margins{
		LeftMM:   l.DefaultMarginsMM.Left,
		RightMM:  l.DefaultMarginsMM.Right,
		TopMM:    l.DefaultMarginsMM.Top,
		BottomMM: l.DefaultMarginsMM.Bottom,
	}
}

// Alignment parses the configured default alignment names.
func (l LayoutConfig) Alignment() (schemas.Alignment, error) {
	var a schemas.Alignment
	switch l.DefaultAlignment.Vertical {
	case "top":
		a.Vertical = schemas.VTop
	case "center":
		a.Vertical = schemas.VCenter
	case "bottom":
		a.Vertical = schemas.VBottom
	default:
		return a, fmt.Errorf("unknown vertical alignment %q", l.DefaultAlignment.Vertical)
	}
	switch l.DefaultAlignment.Horizontal {
	case "left":
		a.Horizontal = schemas.HLeft
	case "center":
		a.Horizontal = schemas.HCenter
	case "right":
		a.Horizontal = schemas.HRight
	default:
		return a, fmt.Errorf("unknown horizontal alignment %q", l.DefaultAlignment.Horizontal)
	}
	return a, nil
}

// SetDefaults initializes default values for every configuration parameter.
func SetDefaults(v *viper.Viper) {
	// -- Logger --
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.add_source", false)
	v.SetDefault("logger.service_name", "pagelayout")
	v.SetDefault("logger.log_file", "")
	v.SetDefault("logger.max_size", 100)
	v.SetDefault("logger.max_backups", 5)
	v.SetDefault("logger.max_age", 30)
	v.SetDefault("logger.compress", true)

	// -- Layout --
	v.SetDefault("layout.default_margins_mm.left", 10.0)
	v.SetDefault("layout.default_margins_mm.right", 10.0)
	v.SetDefault("layout.default_margins_mm.top", 5.0)
	v.SetDefault("layout.default_margins_mm.bottom", 5.0)
	v.SetDefault("layout.default_alignment.vertical", "center")
	v.SetDefault("layout.default_alignment.horizontal", "center")
}

// NewDefaultConfig creates a configuration populated with default values.
func NewDefaultConfig() *Config {
	v := viper.New()
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		// Cannot happen with defaults only, but fail loudly if it does.
		panic(fmt.Sprintf("failed to unmarshal default config: %v", err))
	}
	return &cfg
}

// NewConfigFromViper creates a configuration from a viper object on which
// SetDefaults has been applied, validating the result.
func NewConfigFromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects configurations the store cannot start from. Runtime
// geometric inputs are deliberately not validated anywhere; this only covers
// the configured defaults.
func (c *Config) Validate() error {
	m := c.Layout.DefaultMarginsMM
	if m.Left < 0 || m.Right < 0 || m.Top < 0 || m.Bottom < 0 {
		return fmt.Errorf("default margins must be non-negative, got {%g %g %g %g}",
			m.Left, m.Right, m.Top, m.Bottom)
	}
	if _, err := c.Layout.Alignment(); err != nil {
		return fmt.Errorf("invalid default alignment: %w", err)
	}
	return nil
}
