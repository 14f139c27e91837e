package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateMATLAB(); err != nil {
		return err
	}
	if err := c.validateQuarto(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateMATLAB() error {
	if c.MATLAB.TimeoutSeconds <= 0 {
		return errors.New("matlab.timeout_seconds must be positive")
	}
	return nil
}

func (c *Config) validateQuarto() error {
	for _, format := range c.Quarto.Formats {
		switch format {
		case "pdf", "html":
		default:
			return fmt.Errorf("quarto.formats: unsupported format %q (want pdf or html)", format)
		}
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q (want console or json)", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
