package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/narigama/gen-features/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Known setting keys.
const (
	KeyLogLevel  = "log_level"
	KeyLogFormat = "log_format"
)

var defaultValues = map[string]string{
	KeyLogLevel:  "warn",
	KeyLogFormat: "console",
}

// Keys returns the known setting keys in sorted order.
func Keys() []string {
	keys := make([]string, 0, len(defaultValues))
	for k := range defaultValues {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Default returns the built-in value for key, or "" for unknown keys.
func Default(key string) string {
	return defaultValues[key]
}

// Dir returns the path to the config directory (~/.gen-features/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.gen-features/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	for k, v := range defaultValues {
		viper.SetDefault(k, v)
	}

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Effective returns the value for key if it passes schema validation,
// otherwise the built-in default. The bool reports whether the configured
// value was usable.
func Effective(key string) (string, bool) {
	value := Get(key)
	res, err := Validate(map[string]any{key: value})
	if err != nil || !res.Valid {
		return Default(key), false
	}
	return value, true
}

// Set validates and writes a config key-value pair, then saves the config file.
func Set(key, value string) error {
	res, err := Validate(map[string]any{key: value})
	if err != nil {
		return err
	}
	if !res.Valid {
		return &InvalidError{Issues: res.Issues}
	}

	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
