package main

import (
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"mason/internal/config"
	"mason/internal/logging"
)

type commandContext struct {
	configFlag *string

	once      sync.Once
	config    *config.Config
	logger    *slog.Logger
	initError error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensure() (*config.Config, *slog.Logger, error) {
	c.once.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.initError = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.initError = err
			return
		}
		logger, err := logging.New(logging.Options{
			Level:  cfg.Logging.Level,
			Format: cfg.Logging.Format,
			Output: os.Stderr,
		})
		if err != nil {
			c.initError = err
			return
		}
		c.config = cfg
		c.logger = logger
	})
	return c.config, c.logger, c.initError
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
