package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/capterqa/capter-shim/internal/core"
	"github.com/capterqa/capter-shim/internal/security"
	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	Binary  BinaryConfig  `mapstructure:"binary"`
	Release ReleaseConfig `mapstructure:"release"`
	Paths   PathsConfig   `mapstructure:"paths"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// BinaryConfig names the wrapped executable and where it is published
type BinaryConfig struct {
	Name       string `mapstructure:"name"`
	Repository string `mapstructure:"repository"`
	// Version defaults to the shim's own build version when empty
	Version string `mapstructure:"version"`
}

// ReleaseConfig selects and parameterizes the release locator
type ReleaseConfig struct {
	Strategy     string `mapstructure:"strategy"`
	DownloadHost string `mapstructure:"download_host"`
	APIHost      string `mapstructure:"api_host"`
	TokenEnv     string `mapstructure:"token_env"`
	UserAgent    string `mapstructure:"user_agent"`
}

// PathsConfig contains path-related configuration
type PathsConfig struct {
	InstallRoot string `mapstructure:"install_root"`
	LogFile     string `mapstructure:"log_file"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level string `mapstructure:"level"`
	Color string `mapstructure:"color"`
}

// Load loads configuration from file and environment
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("toml")

	homeDir, err := os.UserHomeDir()
	if err == nil {
		viper.AddConfigPath(filepath.Join(homeDir, ".config", "capter-shim"))
	}
	viper.AddConfigPath(".")

	setDefaults()

	// CAPTER_SHIM_RELEASE_STRATEGY overrides release.strategy, and so on
	viper.SetEnvPrefix("CAPTER_SHIM")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg.Paths.InstallRoot = expandPath(cfg.Paths.InstallRoot)
	cfg.Paths.LogFile = expandPath(cfg.Paths.LogFile)
	cfg.Release.DownloadHost = strings.TrimRight(cfg.Release.DownloadHost, "/")
	cfg.Release.APIHost = strings.TrimRight(cfg.Release.APIHost, "/")

	return &cfg, nil
}

// Validate checks the fields every command depends on
func (c *Config) Validate() error {
	if err := security.ValidateBinaryName(c.Binary.Name); err != nil {
		return fmt.Errorf("binary.name: %w", err)
	}
	if err := security.ValidateRepository(c.Binary.Repository); err != nil {
		return fmt.Errorf("binary.repository: %w", err)
	}
	if c.Binary.Version != "" {
		if err := security.ValidateVersion(c.Binary.Version); err != nil {
			return fmt.Errorf("binary.version: %w", err)
		}
	}
	if !core.Strategy(c.Release.Strategy).Valid() {
		return fmt.Errorf("release.strategy must be one of %v, got %q", core.Strategies, c.Release.Strategy)
	}
	if c.Release.Strategy == string(core.StrategyAuthenticated) && c.Release.TokenEnv == "" {
		return fmt.Errorf("release.token_env must name a variable for the authenticated strategy")
	}
	if c.Paths.InstallRoot == "" {
		return fmt.Errorf("paths.install_root must not be empty")
	}
	return nil
}

// setDefaults sets default configuration values
func setDefaults() {
	homeDir, err := os.UserHomeDir()
	if err != nil || homeDir == "" {
		homeDir = os.Getenv("HOME")
	}
	if homeDir == "" {
		homeDir = "."
	}

	dataDir := filepath.Join(homeDir, ".local", "share", "capter-shim")

	viper.SetDefault("binary.name", "capter")
	viper.SetDefault("binary.repository", "capterqa/cli")
	viper.SetDefault("binary.version", "")

	viper.SetDefault("release.strategy", string(core.StrategyDirect))
	viper.SetDefault("release.download_host", "https://github.com")
	viper.SetDefault("release.api_host", "https://api.github.com")
	viper.SetDefault("release.token_env", "GITHUB_TOKEN")
	viper.SetDefault("release.user_agent", "capter-shim")

	viper.SetDefault("paths.install_root", dataDir)
	viper.SetDefault("paths.log_file", filepath.Join(dataDir, "shim.log"))

	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.color", "auto")
}

// expandPath expands ~ and environment variables in paths
func expandPath(path string) string {
	if path == "" {
		return path
	}

	if path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(homeDir, path[1:])
		}
	}

	return os.ExpandEnv(path)
}
