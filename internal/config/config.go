// Package config loads the CLI configuration from ~/.dealboard/config.yaml
// using Viper. A missing config file is not an error; defaults apply.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	cfgKeyDBPath   = "db_path"
	cfgKeyCurrency = "default_currency"
	cfgKeyColor    = "color"
	cfgKeyLogLevel = "log_level"

	defaultCurrency = "USD"
	defaultLogLevel = "warn"
)

// defaultConfigYAML is the content written to config.yaml on first run.
const defaultConfigYAML = `# dealboard configuration

# Path to the SQLite database (defaults to ~/.dealboard/dealboard.db)
# db_path:

# Currency assigned to deals created without one
default_currency: USD

# Colored terminal output
color: true

# Log verbosity: debug, info, warn, error
log_level: warn
`

// Config holds the resolved CLI configuration.
type Config struct {
	DBPath          string
	DefaultCurrency string
	Color           bool
	LogLevel        string
}

// Dir returns the configuration directory, ~/.dealboard.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, ".dealboard"), nil
}

// Load reads config.yaml from the given directory, creating the directory
// and a default config file on first run.
func Load(configDir string) (*Config, error) {
	if err := ensureConfigDir(configDir); err != nil {
		return nil, fmt.Errorf("ensure config dir: %w", err)
	}

	if err := ensureDefaultConfigFile(configDir); err != nil {
		return nil, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetDefault(cfgKeyDBPath, filepath.Join(configDir, "dealboard.db"))
	v.SetDefault(cfgKeyCurrency, defaultCurrency)
	v.SetDefault(cfgKeyColor, true)
	v.SetDefault(cfgKeyLogLevel, defaultLogLevel)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	return &Config{
		DBPath:          v.GetString(cfgKeyDBPath),
		DefaultCurrency: v.GetString(cfgKeyCurrency),
		Color:           v.GetBool(cfgKeyColor),
		LogLevel:        v.GetString(cfgKeyLogLevel),
	}, nil
}

func ensureConfigDir(configDir string) error {
	return os.MkdirAll(configDir, 0o755)
}

// ensureDefaultConfigFile creates a default config.yaml if the file does not
// exist in the config directory.
func ensureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, configFileExt)

	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}
