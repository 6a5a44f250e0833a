package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const (
	appName    = "xtid"
	configFile = "config.json"

	DefaultUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/131.0.0.0 Safari/537.36"
	DefaultTimeout   = 30
)

// Config is the top-level configuration.
type Config struct {
	UserAgent string `json:"user_agent,omitempty"`
	Timeout   int    `json:"timeout,omitempty"`
	Verbose   bool   `json:"verbose,omitempty"`

	// Stored session cookies for the request command. When empty they
	// are auto-extracted from local browsers.
	AuthToken string `json:"auth_token,omitempty"`
	CT0       string `json:"ct0,omitempty"`
}

// Load reads config from the XDG config file, applying defaults. It
// never fails; a missing or unreadable file yields pure defaults.
func Load() *Config {
	cfg := &Config{
		UserAgent: DefaultUserAgent,
		Timeout:   DefaultTimeout,
	}

	path := FilePath()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}

	_ = json.Unmarshal(data, cfg)

	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	return cfg
}

// Save writes the config to the XDG config file.
func Save(cfg *Config) error {
	path := FilePath()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}

	return os.WriteFile(path, data, 0o600)
}

// FilePath returns the path to the config file.
func FilePath() string {
	return filepath.Join(configBaseDir(), appName, configFile)
}

func configBaseDir() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "."
		}
		dir = filepath.Join(home, ".config")
	}
	return dir
}
