package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateAnalytics(); err != nil {
		return err
	}
	if err := c.validateChart(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validatePaths() error {
	if c.Paths.Dataset == "" {
		return errors.New("paths.dataset must be set")
	}
	if c.Paths.Database == "" {
		return errors.New("paths.database must be set")
	}
	return nil
}

func (c *Config) validateAnalytics() error {
	if c.Analytics.TopDirectors < 1 {
		return errors.New("analytics.top_directors must be at least 1")
	}
	if c.Analytics.TopActors < 1 {
		return errors.New("analytics.top_actors must be at least 1")
	}
	return nil
}

func (c *Config) validateChart() error {
	if c.Chart.Width < 10 {
		return errors.New("chart.width must be at least 10")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
