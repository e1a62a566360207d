package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	// ListenAddr is the dev server's HTTP listen address
	ListenAddr string `yaml:"listen_addr"`
	// DatabasePath is the SQLite file path; empty uses the app home dir
	DatabasePath string `yaml:"database_path"`
	// AssetBaseURL is where the host serves static files from
	AssetBaseURL string `yaml:"asset_base_url"`
	// ClientScriptPath is the logical path of the client board script
	ClientScriptPath string `yaml:"client_script_path"`
	// ViewerID is the fallback viewer when KANBAN_USER_ID is unset
	ViewerID int64 `yaml:"viewer_id"`
	// LogPath is the log file path; empty uses the app home dir
	LogPath string `yaml:"log_path"`
}

// Load loads config from the user's config directory.
// Returns default config if the file doesn't exist.
func Load() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		config := defaults()
		return config, nil
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		config := defaults()
		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	// Fill in any missing values with defaults
	config.applyDefaults()

	return &config, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "opportunity-kanban", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "opportunity-kanban", "config.yaml"), nil
}

func defaults() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.ListenAddr == "" {
		c.ListenAddr = ":8080"
	}
	if c.AssetBaseURL == "" {
		c.AssetBaseURL = "/static"
	}
	if c.ClientScriptPath == "" {
		c.ClientScriptPath = "/portlet/kanban-client.js"
	}
	if c.ViewerID == 0 {
		c.ViewerID = 1
	}
}
