// Package config provides configuration types, defaults, and persistence
// for the enumium CLI.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/zjrosen/enumium/internal/log"
)

// Config holds all configuration options for the enumium CLI.
type Config struct {
	// DefinitionsFile is the YAML file the CLI loads enum sets from.
	DefinitionsFile string `mapstructure:"definitions_file"`
	// Format is the default export format: "json", "yaml", or "text".
	Format string `mapstructure:"format"`
	// Debug enables structured logging to LogFile.
	Debug bool `mapstructure:"debug"`
	// LogFile receives debug log output.
	LogFile string `mapstructure:"log_file"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		DefinitionsFile: "enums.yaml",
		Format:          "json",
		Debug:           false,
		LogFile:         "enumium.log",
	}
}

// ValidFormats lists the export formats the CLI accepts.
var ValidFormats = []string{"json", "yaml", "text"}

// ValidateFormat checks an export format name.
func ValidateFormat(format string) error {
	for _, f := range ValidFormats {
		if format == f {
			return nil
		}
	}
	return fmt.Errorf("invalid format %q (valid: json, yaml, text)", format)
}

// DefaultConfigTemplate returns the commented YAML written for new
// installs.
func DefaultConfigTemplate() string {
	return `# enumium configuration

# YAML file holding enum definitions (see 'enumium list --help')
definitions_file: enums.yaml

# Default export format: json, yaml, or text
format: json

# Enable structured debug logging
debug: false

# Debug log destination
log_file: enumium.log
`
}

// WriteDefaultConfig creates a config file at the given path with default
// settings and comments. Creates the parent directory if it doesn't exist.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
