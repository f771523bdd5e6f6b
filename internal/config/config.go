package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/scoop-searchr/scoop-searchr/internal/branding"
	"github.com/scoop-searchr/scoop-searchr/internal/platform"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Recognized configuration keys. Each can also be set through the
// environment, e.g. SCOOP_SEARCHR_ROOT.
const (
	KeyRoot        = "root"        // Scoop installation root override
	KeyFormat      = "format"      // default output format: text, json or yaml
	KeyConcurrency = "concurrency" // buckets scanned at once
)

var knownKeys = []string{KeyConcurrency, KeyFormat, KeyRoot}

// Keys returns the recognized configuration keys, sorted.
func Keys() []string { return slices.Clone(knownKeys) }

// IsKnownKey reports whether key is a recognized configuration key.
func IsKnownKey(key string) bool { return slices.Contains(knownKeys, key) }

// Dir returns the path to the config directory (~/.scoop-searchr/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.scoop-searchr/config.yaml).
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
	viper.SetDefault(KeyFormat, "text")
	viper.SetDefault(KeyConcurrency, 0)

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Root returns the configured Scoop root override, or "".
func Root() string { return viper.GetString(KeyRoot) }

// Format returns the configured default output format.
func Format() string { return viper.GetString(KeyFormat) }

// Concurrency returns the configured scan concurrency; zero means one worker per CPU.
func Concurrency() int { return viper.GetInt(KeyConcurrency) }

// Set writes a config key-value pair and saves the config file. Only keys
// already stored in the file and the one being set are written; flag
// defaults and environment values stay out of it.
func Set(key, value string) error {
	if !IsKnownKey(key) {
		return fmt.Errorf("unknown config key %q (known keys: %v)", key, knownKeys)
	}
	if err := EnsureDir(); err != nil {
		return err
	}

	configFile := FilePath()
	file := viper.New()
	file.SetConfigFile(configFile)
	file.SetConfigType(fileType)
	if _, err := os.Stat(configFile); err == nil {
		if err := file.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config file %s: %w", configFile, err)
		}
	}

	file.Set(key, value)
	if err := file.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	viper.Set(key, value)

	return platform.Chmod(configFile, 0600)
}
