package logger

import (
	"os"
	"strconv"
	"strings"
)

// Config holds logging configuration, read from the logging: section of the game config
type Config struct {
	Level          string `yaml:"level"`
	ConsoleEnabled bool   `yaml:"console_enabled"`
	ConsoleFormat  string `yaml:"console_format"`
	FileEnabled    bool   `yaml:"file_enabled"`
	FilePath       string `yaml:"file_path"`
	FileFormat     string `yaml:"file_format"`
	FileMaxSizeMB  int    `yaml:"file_max_size_mb"`
	FileMaxBackups int    `yaml:"file_max_backups"`
	FileMaxAgeDays int    `yaml:"file_max_age_days"`
}

// DefaultConfig returns the logging defaults
func DefaultConfig() Config {
	return Config{
		Level:          "INFO",
		ConsoleEnabled: true,
		ConsoleFormat:  "text",
		FileEnabled:    false,
		FilePath:       "logs/gridmaze.log",
		FileFormat:     "text",
		FileMaxSizeMB:  10,
		FileMaxBackups: 3,
		FileMaxAgeDays: 14,
	}
}

// ApplyEnv overrides fields from LOG_* environment variables
func (c *Config) ApplyEnv() {
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		c.Level = strings.ToUpper(level)
	}

	if format := os.Getenv("LOG_CONSOLE_FORMAT"); format != "" {
		c.ConsoleFormat = format
	}

	if enabled := os.Getenv("LOG_CONSOLE_ENABLED"); enabled != "" {
		if v, err := strconv.ParseBool(enabled); err == nil {
			c.ConsoleEnabled = v
		}
	}

	if enabled := os.Getenv("LOG_FILE_ENABLED"); enabled != "" {
		if v, err := strconv.ParseBool(enabled); err == nil {
			c.FileEnabled = v
		}
	}

	if path := os.Getenv("LOG_FILE_PATH"); path != "" {
		c.FilePath = path
	}
}
