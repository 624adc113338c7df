// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/spf13/viper"

	"typi-cli/internal/issue"
)

const (
	// AppName is the application name, used for config directory resolution.
	AppName = "typi"
	// ConfigFileName is the name of the config file (without extension).
	ConfigFileName = "config"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "toml"

	// CacheRootEnv overrides the cache root, taking precedence over the
	// config file. Useful for hermetic tests and CI.
	CacheRootEnv = "TYPI_PACKAGE_PATH"
)

// configFilePathOverride is set via the --config flag; empty means the
// default search locations apply.
var configFilePathOverride string

type (
	// Config is the resolved installer configuration.
	Config struct {
		// CacheRoot is the local package cache directory
		// (<user-data-dir>/typst/packages/local by default).
		CacheRoot string `mapstructure:"cache_root"`
		// CloneTimeoutSeconds bounds git clone operations.
		CloneTimeoutSeconds int `mapstructure:"clone_timeout_seconds"`
		// UI holds presentation preferences.
		UI UIConfig `mapstructure:"ui"`
	}

	// UIConfig holds presentation preferences.
	UIConfig struct {
		// Verbose enables debug-level logging.
		Verbose bool `mapstructure:"verbose"`
	}
)

// CloneTimeout returns the configured clone timeout as a duration.
func (c *Config) CloneTimeout() time.Duration {
	return time.Duration(c.CloneTimeoutSeconds) * time.Second
}

// SetConfigFilePathOverride points Load at an explicit config file.
func SetConfigFilePathOverride(path string) {
	configFilePathOverride = path
}

// DefaultConfig returns the built-in defaults. CacheRoot is left empty here;
// Load fills it from the environment or the platform data directory.
func DefaultConfig() *Config {
	return &Config{
		CloneTimeoutSeconds: 120,
	}
}

// ConfigDir returns the typi configuration directory using platform-specific
// conventions: Windows uses %APPDATA%, macOS uses ~/Library/Application
// Support, and Linux/others use $XDG_CONFIG_HOME (defaulting to ~/.config).
//
//nolint:revive // ConfigDir is more descriptive than Dir for external callers
func ConfigDir() (string, error) {
	var configDir string

	switch runtime.GOOS {
	case "windows":
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(home, "Library", "Application Support")
	default: // Linux and others
		configDir = os.Getenv("XDG_CONFIG_HOME")
		if configDir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("failed to get home directory: %w", err)
			}
			configDir = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(configDir, AppName), nil
}

// DataDir returns the platform user-data directory: %APPDATA% on Windows,
// ~/Library/Application Support on macOS, $XDG_DATA_HOME (defaulting to
// ~/.local/share) elsewhere.
func DataDir() (string, error) {
	switch runtime.GOOS {
	case "windows":
		dataDir := os.Getenv("APPDATA")
		if dataDir == "" {
			dataDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		return dataDir, nil
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		return filepath.Join(home, "Library", "Application Support"), nil
	default:
		if dataDir := os.Getenv("XDG_DATA_HOME"); dataDir != "" {
			return dataDir, nil
		}
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		return filepath.Join(home, ".local", "share"), nil
	}
}

// DefaultCacheRoot returns the local package cache directory the consuming
// document tool resolves @local/<name>:<version> references from.
func DefaultCacheRoot() (string, error) {
	return DefaultCacheRootWith(os.Getenv)
}

// DefaultCacheRootWith resolves the cache root using the provided getenv
// function. This enables testing without mutating process-global state.
func DefaultCacheRootWith(getenv func(string) string) (string, error) {
	if envPath := getenv(CacheRootEnv); envPath != "" {
		return envPath, nil
	}

	dataDir, err := DataDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(dataDir, "typst", "packages", "local"), nil
}

// Load reads the config file (if any) and resolves the cache root.
// A missing config file is not an error; a malformed one is.
func Load() (*Config, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("cache_root", "")
	v.SetDefault("clone_timeout_seconds", defaults.CloneTimeoutSeconds)
	v.SetDefault("ui.verbose", false)

	if configFilePathOverride != "" {
		if _, err := os.Stat(configFilePathOverride); err != nil {
			return nil, issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(configFilePathOverride).
				WithSuggestion("Verify the file path is correct").
				WithSuggestion("Check that the file exists and is readable").
				Wrap(err).
				BuildError()
		}
		v.SetConfigFile(configFilePathOverride)
	} else {
		configDir, err := ConfigDir()
		if err != nil {
			return nil, err
		}
		v.SetConfigName(ConfigFileName)
		v.SetConfigType(ConfigFileExt)
		v.AddConfigPath(configDir)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(v.ConfigFileUsed()).
				WithSuggestion("Check the TOML syntax of the file").
				WithSuggestion("Remove the config file to fall back to defaults").
				Wrap(err).
				BuildError()
		}
	}

	cfg := DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, issue.WrapWithOperation(err, "decode configuration")
	}

	// Environment beats the config file; the platform default fills the rest.
	if envPath := os.Getenv(CacheRootEnv); envPath != "" {
		cfg.CacheRoot = envPath
	}
	if cfg.CacheRoot == "" {
		root, err := DefaultCacheRoot()
		if err != nil {
			return nil, err
		}
		cfg.CacheRoot = root
	}

	return cfg, nil
}
