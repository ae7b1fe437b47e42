package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultBaseURL            = "http://localhost:8000"
	DefaultAPITimeoutSeconds  = 30
	DefaultBannerTimeoutMilli = 5000

	EnvBaseURL    = "LEAD_REVIEW_BASE_URL"
	EnvLogLevel   = "LEAD_REVIEW_LOG_LEVEL"
	EnvAPITimeout = "LEAD_REVIEW_API_TIMEOUT"
)

// Config represents the application configuration
type Config struct {
	API                 APIConfig `json:"api"`
	BannerTimeoutMillis int       `json:"banner_timeout_ms"`
	AuthFile            string    `json:"auth_file"`
	LogLevel            string    `json:"log_level"`
	LogFormat           string    `json:"log_format"`
	LogFile             string    `json:"log_file"`
}

// APIConfig holds the admin backend connection settings
type APIConfig struct {
	BaseURL        string `json:"base_url"`
	TimeoutSeconds int    `json:"timeout_seconds"`
}

// Default returns a configuration with default values
func Default() Config {
	return Config{
		API: APIConfig{
			BaseURL:        DefaultBaseURL,
			TimeoutSeconds: DefaultAPITimeoutSeconds,
		},
		BannerTimeoutMillis: DefaultBannerTimeoutMilli,
		LogLevel:            "info",
		LogFormat:           "json",
	}
}

// Load loads configuration from the specified path.
// If the file doesn't exist, creates one with default values.
func Load(configPath string) (Config, error) {
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return Config{}, fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := Default()
			if err := Save(configPath, cfg); err != nil {
				return Config{}, fmt.Errorf("failed to create default config: %w", err)
			}
			return cfg, nil
		}
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	// Start from defaults so fields missing from older files keep sane values
	cfg := Default()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

// Save saves the configuration to the specified path
func Save(configPath string, cfg Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// LoadEnv reads KEY=value pairs from the given .env files into the process
// environment. Missing files are ignored; variables already set win.
func LoadEnv(paths ...string) error {
	for _, path := range paths {
		if err := godotenv.Load(path); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return fmt.Errorf("failed to load env file %s: %w", path, err)
		}
	}
	return nil
}

// ApplyEnv overrides config values from LEAD_REVIEW_* environment variables.
func (c *Config) ApplyEnv() error {
	if v := strings.TrimSpace(os.Getenv(EnvBaseURL)); v != "" {
		c.API.BaseURL = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		c.LogLevel = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvAPITimeout)); v != "" {
		seconds, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s must be an integer, got %q", EnvAPITimeout, v)
		}
		c.API.TimeoutSeconds = seconds
	}
	return nil
}

// Validate checks if the configuration is valid
func (c Config) Validate() error {
	u, err := url.Parse(strings.TrimSpace(c.API.BaseURL))
	if err != nil {
		return fmt.Errorf("invalid api.base_url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("api.base_url must use http or https, got: %q", c.API.BaseURL)
	}
	if u.Host == "" {
		return fmt.Errorf("api.base_url must include a host, got: %q", c.API.BaseURL)
	}

	if c.API.TimeoutSeconds <= 0 {
		return fmt.Errorf("api.timeout_seconds must be positive, got: %d", c.API.TimeoutSeconds)
	}

	if c.BannerTimeoutMillis <= 0 {
		return fmt.Errorf("banner_timeout_ms must be positive, got: %d", c.BannerTimeoutMillis)
	}

	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("unsupported log_level: %s", c.LogLevel)
	}

	switch strings.ToLower(strings.TrimSpace(c.LogFormat)) {
	case "", "json", "text":
	default:
		return fmt.Errorf("unsupported log_format: %s", c.LogFormat)
	}

	return nil
}

// APITimeout returns the HTTP timeout as a duration.
func (c Config) APITimeout() time.Duration {
	return time.Duration(c.API.TimeoutSeconds) * time.Second
}

// BannerTimeout returns how long a banner stays up before it auto-dismisses.
func (c Config) BannerTimeout() time.Duration {
	return time.Duration(c.BannerTimeoutMillis) * time.Millisecond
}

// GetConfigPath returns the default configuration file path
func GetConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".lead_review", "config.json")
	}
	return filepath.Join(homeDir, ".lead_review", "config.json")
}
