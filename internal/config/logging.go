package config

import "krishimitra/internal/logging"

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level      string          `yaml:"level"`                // debug, info, warn, error
	Format     string          `yaml:"format"`               // json, console
	File       string          `yaml:"file"`                 // optional, in addition to stderr
	Categories map[string]bool `yaml:"categories,omitempty"` // per-category toggles
}

// IsCategoryEnabled returns whether logging is enabled for a category.
// Categories not listed are enabled.
func (c *LoggingConfig) IsCategoryEnabled(category string) bool {
	if c.Categories == nil {
		return true
	}
	enabled, exists := c.Categories[category]
	if !exists {
		return true
	}
	return enabled
}

// ToLogging converts the section into the logger's own config.
func (c LoggingConfig) ToLogging(verbose bool) logging.Config {
	level := c.Level
	if verbose {
		level = "debug"
	}
	return logging.Config{
		Level:      level,
		Format:     c.Format,
		File:       c.File,
		Categories: c.Categories,
	}
}
