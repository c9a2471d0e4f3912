package main

import (
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"cinelytics/internal/config"
)

type commandContext struct {
	configFlag   *string
	inputFlag    *string
	databaseFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag, inputFlag, databaseFlag *string) *commandContext {
	return &commandContext{
		configFlag:   configFlag,
		inputFlag:    inputFlag,
		databaseFlag: databaseFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := c.applyOverrides(cfg); err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) applyOverrides(cfg *config.Config) error {
	if c.inputFlag != nil && strings.TrimSpace(*c.inputFlag) != "" {
		expanded, err := config.ExpandPath(*c.inputFlag)
		if err != nil {
			return err
		}
		cfg.Paths.Dataset = expanded
	}
	if c.databaseFlag != nil && strings.TrimSpace(*c.databaseFlag) != "" {
		expanded, err := config.ExpandPath(*c.databaseFlag)
		if err != nil {
			return err
		}
		cfg.Paths.Database = expanded
	}
	return nil
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
