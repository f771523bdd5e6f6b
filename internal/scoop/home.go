package scoop

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Directory and file name constants for a Scoop installation.
const (
	EnvVar        = "SCOOP"
	BucketsDir    = "buckets"
	DefaultDir    = "scoop"
	ConfigDir     = "scoop"
	ConfigFile    = "config.json"
	xdgConfigHome = "XDG_CONFIG_HOME"
)

// ErrNotInstalled is returned when no Scoop installation can be located.
var ErrNotInstalled = errors.New("failed to find a valid scoop installation")

// Config is the part of Scoop's own config.json that locating the root needs.
type Config struct {
	RootPath string `mapstructure:"root_path"`
}

// Home returns the Scoop installation root. It checks the SCOOP environment
// variable first (which must point at an existing path), then root_path in
// $XDG_CONFIG_HOME/scoop/config.json, and finally falls back to ~/scoop.
func Home() (string, error) {
	if v := os.Getenv(EnvVar); v != "" {
		if _, err := os.Stat(v); err != nil {
			return "", fmt.Errorf("the %s environment variable is set (%s) but it does not exist", EnvVar, v)
		}
		return v, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}

	if cfg, err := LoadConfig(ConfigPath(home)); err == nil && cfg.RootPath != "" {
		return cfg.RootPath, nil
	}

	fallback := filepath.Join(home, DefaultDir)
	if _, err := os.Stat(fallback); err != nil {
		return "", fmt.Errorf("%w: default location %s does not exist", ErrNotInstalled, fallback)
	}
	return fallback, nil
}

// Resolve returns override when set, otherwise Home(). The result must exist.
func Resolve(override string) (string, error) {
	root := override
	if root == "" {
		var err error
		if root, err = Home(); err != nil {
			return "", err
		}
	}
	if _, err := os.Stat(root); err != nil {
		return "", fmt.Errorf("%w at %s", ErrNotInstalled, root)
	}
	return root, nil
}

// ConfigPath returns the path of Scoop's config.json for the given user home.
// $XDG_CONFIG_HOME takes precedence over home/.config.
func ConfigPath(home string) string {
	configHome := os.Getenv(xdgConfigHome)
	if configHome == "" {
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, ConfigDir, ConfigFile)
}

// LoadConfig reads Scoop's config.json at path.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading scoop config %s: %w", path, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding scoop config %s: %w", path, err)
	}
	return &cfg, nil
}

// BucketsPath returns the directory holding all buckets of the installation at root.
func BucketsPath(root string) string {
	return filepath.Join(root, BucketsDir)
}
