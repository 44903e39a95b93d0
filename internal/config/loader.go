package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables overriding configuration
// keys, e.g. MONEY_DEFAULT=EUR.
const EnvPrefix = "MONEY"

// Load loads the currency table from multiple sources in priority order:
//  1. Built-in table (currencies.yaml)
//  2. Configuration file, if path is not empty (yaml, toml or json)
//  3. Environment variables (MONEY_ prefix)
//
// A configuration file that declares currencies replaces the built-in
// list; one that only sets default keeps it.
func Load(path string) (*Config, error) {
	v := viper.New()

	// 1. Defaults
	if err := setDefaults(v); err != nil {
		return nil, err
	}

	// 2. Configuration file
	if path != "" {
		if err := loadFile(v, path); err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	// 3. Environment
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	config.configPath = path

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &config, nil
}

// loadFile reads the configuration file at path.
func loadFile(v *viper.Viper, path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return fmt.Errorf("config file does not exist: %s", path)
	}
	v.SetConfigFile(path)
	if ext := strings.TrimPrefix(filepath.Ext(path), "."); ext != "" {
		v.SetConfigType(ext)
	}
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	return nil
}
