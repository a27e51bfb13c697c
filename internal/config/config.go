// Package config holds the configuration for the anchorui CLI tooling.
// The layout engine itself takes no configuration; everything here
// belongs to the command-line surface around it.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config is the root configuration, unmarshalled by viper from the
// config file and environment.
type Config struct {
	Canvas CanvasConfig `mapstructure:"canvas" yaml:"canvas"`
	Logger LoggerConfig `mapstructure:"logger" yaml:"logger"`
}

// CanvasConfig describes the design canvas layout runs against.
type CanvasConfig struct {
	Width  float64 `mapstructure:"width" yaml:"width"`
	Height float64 `mapstructure:"height" yaml:"height"`
}

// LoggerConfig controls CLI logging.
type LoggerConfig struct {
	Level      string `mapstructure:"level" yaml:"level"`
	Format     string `mapstructure:"format" yaml:"format"`
	LogFile    string `mapstructure:"log_file" yaml:"log_file"`
	MaxSize    int    `mapstructure:"max_size" yaml:"max_size"`
	MaxBackups int    `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAge     int    `mapstructure:"max_age" yaml:"max_age"`
	Compress   bool   `mapstructure:"compress" yaml:"compress"`
}

// Default returns the configuration used when no file or environment
// overrides are present: the nominal 1920x1080 canvas and console info
// logging.
func Default() Config {
	return Config{
		Canvas: CanvasConfig{Width: 1920, Height: 1080},
		Logger: LoggerConfig{Level: "info", Format: "console"},
	}
}

// SetDefaults registers the default values on a viper instance so that
// partial config files merge cleanly.
func SetDefaults(v *viper.Viper) {
	def := Default()
	v.SetDefault("canvas.width", def.Canvas.Width)
	v.SetDefault("canvas.height", def.Canvas.Height)
	v.SetDefault("logger.level", def.Logger.Level)
	v.SetDefault("logger.format", def.Logger.Format)
}

// Validate rejects configurations the tooling cannot run with.
func (c Config) Validate() error {
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		return fmt.Errorf("canvas size %gx%g is not positive", c.Canvas.Width, c.Canvas.Height)
	}
	return nil
}
