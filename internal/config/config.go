// Package config resolves settings from defaults, TOML files and the
// environment, in that order. CLI flags override everything and are
// applied by the command layer.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// DefaultAPIURL is the fallback backend address when nothing is configured.
const DefaultAPIURL = "http://localhost:3000"

const (
	userConfigName    = "config.toml"
	projectConfigName = "todosync.toml"

	envAPIURL  = "TODOSYNC_API_URL"
	envTimeout = "TODOSYNC_TIMEOUT"
	envLogFile = "TODOSYNC_LOG_FILE"
)

// Config is the resolved application configuration.
type Config struct {
	// APIURL is the base URL of the remote todo service.
	APIURL string
	// Timeout bounds each HTTP request.
	Timeout time.Duration
	// LogFile receives debug logs while the TUI owns the terminal.
	// Empty means logging to stderr (CLI mode) or discard (TUI mode).
	LogFile string
}

// fileConfig is the TOML shape; durations arrive as strings ("10s").
type fileConfig struct {
	APIURL  string `toml:"api_url"`
	Timeout string `toml:"timeout"`
	LogFile string `toml:"log_file"`
}

// Load resolves the configuration:
//  1. defaults
//  2. user config file (~/.config/todosync/config.toml)
//  3. project config file (./todosync.toml)
//  4. environment variables
func Load() (*Config, error) {
	cfg := &Config{
		APIURL:  DefaultAPIURL,
		Timeout: 10 * time.Second,
	}

	if p := userConfigPath(); p != "" {
		if err := loadFile(cfg, p); err != nil {
			return nil, fmt.Errorf("user config %s: %w", p, err)
		}
	}
	if _, err := os.Stat(projectConfigName); err == nil {
		if err := loadFile(cfg, projectConfigName); err != nil {
			return nil, fmt.Errorf("project config %s: %w", projectConfigName, err)
		}
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func userConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	p := filepath.Join(dir, "todosync", userConfigName)
	if _, err := os.Stat(p); err != nil {
		return ""
	}
	return p
}

func loadFile(cfg *Config, path string) error {
	var fc fileConfig
	if _, err := toml.DecodeFile(path, &fc); err != nil {
		return err
	}
	if fc.APIURL != "" {
		cfg.APIURL = fc.APIURL
	}
	if fc.Timeout != "" {
		d, err := time.ParseDuration(fc.Timeout)
		if err != nil {
			return fmt.Errorf("timeout: %w", err)
		}
		cfg.Timeout = d
	}
	if fc.LogFile != "" {
		cfg.LogFile = fc.LogFile
	}
	return nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv(envAPIURL); v != "" {
		cfg.APIURL = v
	}
	if v := os.Getenv(envTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: %w", envTimeout, err)
		}
		cfg.Timeout = d
	}
	if v := os.Getenv(envLogFile); v != "" {
		cfg.LogFile = v
	}
	return nil
}
