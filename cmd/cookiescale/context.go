package main

import (
	"cookiescale/internal/config"
	"cookiescale/internal/logging"
	"cookiescale/internal/tui/styles"
)

// commandContext carries the loaded configuration and logger shared by all
// commands. Loading happens once, in the root's PersistentPreRunE.
type commandContext struct {
	configFlag *string

	cfg *config.Config
	log *logging.Logger
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

// ensure loads configuration and the logger. Safe to call more than once.
func (c *commandContext) ensure() error {
	if c.cfg != nil {
		return nil
	}

	if err := config.Init(*c.configFlag); err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logging.Discard()
	if cfg.Logging.Dir != "" {
		log, err = logging.New(cfg.Logging.Dir, cfg.Logging.Level)
		if err != nil {
			return err
		}
	}

	c.cfg = cfg
	c.log = log
	return nil
}

// styles returns the lipgloss styles for the configured theme.
func (c *commandContext) styles() styles.Styles {
	return styles.ForTheme(c.cfg.UI.Theme)
}
