package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeMATLAB()
	c.normalizeQuarto()
	c.normalizeReport()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.HistoryPath) == "" {
		c.Paths.HistoryPath = defaultHistoryPath
	}
	if c.Paths.HistoryPath, err = expandPath(c.Paths.HistoryPath); err != nil {
		return fmt.Errorf("paths.history_path: %w", err)
	}
	c.Paths.OutputBaseDir = strings.TrimSpace(c.Paths.OutputBaseDir)
	if c.Paths.OutputBaseDir != "" {
		if c.Paths.OutputBaseDir, err = expandPath(c.Paths.OutputBaseDir); err != nil {
			return fmt.Errorf("paths.output_base_dir: %w", err)
		}
	}
	return nil
}

func (c *Config) normalizeMATLAB() {
	c.MATLAB.Binary = strings.TrimSpace(c.MATLAB.Binary)
	if c.MATLAB.Binary == "" {
		c.MATLAB.Binary = defaultMATLABBinary
	}
	c.MATLAB.Function = strings.TrimSpace(c.MATLAB.Function)
	if c.MATLAB.Function == "" {
		c.MATLAB.Function = defaultMATLABFunction
	}
}

func (c *Config) normalizeQuarto() {
	c.Quarto.Binary = strings.TrimSpace(c.Quarto.Binary)
	if c.Quarto.Binary == "" {
		c.Quarto.Binary = defaultQuartoBinary
	}
	formats := c.Quarto.Formats[:0]
	for _, format := range c.Quarto.Formats {
		format = strings.ToLower(strings.TrimSpace(format))
		if format != "" {
			formats = append(formats, format)
		}
	}
	c.Quarto.Formats = formats
}

func (c *Config) normalizeReport() {
	c.Report.Title = strings.TrimSpace(c.Report.Title)
	if c.Report.Title == "" {
		c.Report.Title = defaultReportTitle
	}
	c.Report.Author = strings.TrimSpace(c.Report.Author)
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
