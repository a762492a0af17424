// Package config loads and validates the cookiescale configuration.
//
// Configuration is presentation-only: themes, the console comparison
// prompt, and diagnostic logging. The baseline recipe and the serving
// bounds are compile-time constants in the recipe package and cannot be
// changed here.
package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config represents the complete cookiescale configuration.
type Config struct {
	UI      UIConfig      `mapstructure:"ui"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// UIConfig controls how the shells render output.
type UIConfig struct {
	// Theme is the color theme for both shells (default: "default")
	// Options: "default", "monokai", "dracula", "nord"
	Theme string `mapstructure:"theme"`
	// ShowComparison controls whether the console offers the side-by-side
	// comparison table after scaling (default: true)
	ShowComparison bool `mapstructure:"show_comparison"`
}

// LoggingConfig controls debug logging behavior.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error"
	Level string `mapstructure:"level"`
	// Dir is the directory for the log file. Empty disables file logging.
	Dir string `mapstructure:"dir"`
}

// Default returns the built-in configuration values.
func Default() *Config {
	return &Config{
		UI: UIConfig{
			Theme:          "default",
			ShowComparison: true,
		},
		Logging: LoggingConfig{
			Level: "info",
			Dir:   "",
		},
	}
}

// SetDefaults registers default values with viper.
func SetDefaults() {
	defaults := Default()

	viper.SetDefault("ui.theme", defaults.UI.Theme)
	viper.SetDefault("ui.show_comparison", defaults.UI.ShowComparison)

	viper.SetDefault("logging.level", defaults.Logging.Level)
	viper.SetDefault("logging.dir", defaults.Logging.Dir)
}

// Init configures viper and reads the config file if one exists. When
// cfgFile is empty the default location is searched; a missing file is not
// an error, defaults apply.
func Init(cfgFile string) error {
	SetDefaults()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(ConfigDir())
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	if err := viper.ReadInConfig(); err != nil {
		// A missing file at the default location is fine; defaults apply.
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && (errors.As(err, &notFound) || os.IsNotExist(err)) {
			return nil
		}
		return err
	}
	return nil
}

// Load unmarshals and validates the current viper state.
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// ConfigDir returns the path to the user's config directory.
func ConfigDir() string {
	// Check XDG_CONFIG_HOME first
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "cookiescale")
	}
	// Fall back to ~/.config/cookiescale
	home, err := os.UserHomeDir()
	if err != nil {
		return ".cookiescale"
	}
	return filepath.Join(home, ".config", "cookiescale")
}

// ConfigFile returns the path to the config file.
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}
