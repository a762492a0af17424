package config

import (
	"strings"
	"testing"

	"github.com/spf13/viper"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.UI.Theme != "default" {
		t.Errorf("UI.Theme = %q, want %q", cfg.UI.Theme, "default")
	}
	if !cfg.UI.ShowComparison {
		t.Error("UI.ShowComparison = false, want true")
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "info")
	}
	if cfg.Logging.Dir != "" {
		t.Errorf("Logging.Dir = %q, want empty (file logging disabled)", cfg.Logging.Dir)
	}

	// Defaults must themselves validate.
	if errs := cfg.Validate(); len(errs) > 0 {
		t.Errorf("defaults failed validation: %v", ValidationErrors(errs))
	}
}

func TestLoad_FromDefaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	SetDefaults()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if cfg.UI.Theme != "default" || !cfg.UI.ShowComparison {
		t.Errorf("Load() = %+v, want defaults", cfg.UI)
	}
}

func TestLoad_InvalidTheme(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	SetDefaults()
	viper.Set("ui.theme", "neon-sparkle")

	_, err := Load()
	if err == nil {
		t.Fatal("Load() succeeded with an unknown theme")
	}
	if !strings.Contains(err.Error(), "ui.theme") {
		t.Errorf("error %q does not name the offending field", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(*Config)
		wantErrors int
		wantField  string
	}{
		{
			name:       "valid config",
			mutate:     func(c *Config) {},
			wantErrors: 0,
		},
		{
			name:       "unknown theme",
			mutate:     func(c *Config) { c.UI.Theme = "sepia" },
			wantErrors: 1,
			wantField:  "ui.theme",
		},
		{
			name:       "unknown log level",
			mutate:     func(c *Config) { c.Logging.Level = "verbose" },
			wantErrors: 1,
			wantField:  "logging.level",
		},
		{
			name:       "log level is case-insensitive",
			mutate:     func(c *Config) { c.Logging.Level = "DEBUG" },
			wantErrors: 0,
		},
		{
			name: "multiple failures reported together",
			mutate: func(c *Config) {
				c.UI.Theme = "sepia"
				c.Logging.Level = "verbose"
			},
			wantErrors: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			errs := cfg.Validate()
			if len(errs) != tt.wantErrors {
				t.Fatalf("Validate() returned %d errors, want %d: %v", len(errs), tt.wantErrors, errs)
			}
			if tt.wantField != "" && errs[0].Field != tt.wantField {
				t.Errorf("Field = %q, want %q", errs[0].Field, tt.wantField)
			}
		})
	}
}

func TestValidationErrors_Error(t *testing.T) {
	errs := ValidationErrors{
		{Field: "ui.theme", Value: "sepia", Message: "unknown theme"},
		{Field: "logging.level", Value: "loud", Message: "unknown level"},
	}

	msg := errs.Error()
	if !strings.Contains(msg, "2 validation errors") {
		t.Errorf("Error() = %q, want a count header", msg)
	}
	if !strings.Contains(msg, "ui.theme") || !strings.Contains(msg, "logging.level") {
		t.Errorf("Error() = %q, want both fields listed", msg)
	}
}
