package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.API.BaseURL != "http://localhost:8000" {
		t.Errorf("Expected base URL 'http://localhost:8000', got %q", cfg.API.BaseURL)
	}

	if cfg.API.TimeoutSeconds != 30 {
		t.Errorf("Expected timeout 30, got %d", cfg.API.TimeoutSeconds)
	}

	if cfg.BannerTimeout() != 5*time.Second {
		t.Errorf("Expected banner timeout 5s, got %v", cfg.BannerTimeout())
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("Expected default config to be valid, got %v", err)
	}
}

func TestLoad_CreateDefault(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, ".lead_review", "config.json")

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.BannerTimeoutMillis != DefaultBannerTimeoutMilli {
		t.Errorf("Expected default banner timeout, got %d", cfg.BannerTimeoutMillis)
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Error("Config file was not created")
	}
}

func TestLoad_ExistingConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.json")

	initialCfg := Default()
	initialCfg.API.BaseURL = "https://leads.example.com"
	initialCfg.BannerTimeoutMillis = 2500

	if err := Save(configPath, initialCfg); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.API.BaseURL != "https://leads.example.com" {
		t.Errorf("Expected base URL to round-trip, got %q", cfg.API.BaseURL)
	}
	if cfg.BannerTimeoutMillis != 2500 {
		t.Errorf("Expected banner timeout 2500, got %d", cfg.BannerTimeoutMillis)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.json")

	if err := os.WriteFile(configPath, []byte(`{"api": {"base_url": "https://x.test"}}`), 0600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.BannerTimeoutMillis != DefaultBannerTimeoutMilli {
		t.Errorf("Expected default banner timeout, got %d", cfg.BannerTimeoutMillis)
	}
	if cfg.LogFormat != "json" {
		t.Errorf("Expected default log format json, got %q", cfg.LogFormat)
	}
}

func TestLoad_InvalidJSON(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.json")

	if err := os.WriteFile(configPath, []byte("{not json"), 0600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	if _, err := Load(configPath); err == nil {
		t.Fatal("Expected parse error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"relative base url", func(c *Config) { c.API.BaseURL = "localhost:8000" }, "http or https"},
		{"missing host", func(c *Config) { c.API.BaseURL = "http://" }, "host"},
		{"zero timeout", func(c *Config) { c.API.TimeoutSeconds = 0 }, "timeout_seconds"},
		{"negative banner", func(c *Config) { c.BannerTimeoutMillis = -1 }, "banner_timeout_ms"},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }, "log_level"},
		{"bad log format", func(c *Config) { c.LogFormat = "xml" }, "log_format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Expected no error, got %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Expected error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvBaseURL, "https://env.example.com")
	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvAPITimeout, "12")

	cfg := Default()
	if err := cfg.ApplyEnv(); err != nil {
		t.Fatalf("ApplyEnv() failed: %v", err)
	}

	if cfg.API.BaseURL != "https://env.example.com" {
		t.Errorf("Expected env base URL, got %q", cfg.API.BaseURL)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("Expected log level debug, got %q", cfg.LogLevel)
	}
	if cfg.APITimeout() != 12*time.Second {
		t.Errorf("Expected timeout 12s, got %v", cfg.APITimeout())
	}
}

func TestApplyEnv_InvalidTimeout(t *testing.T) {
	t.Setenv(EnvAPITimeout, "soon")

	cfg := Default()
	if err := cfg.ApplyEnv(); err == nil {
		t.Fatal("Expected error for non-numeric timeout")
	}
}

func TestLoadEnv(t *testing.T) {
	tmpDir := t.TempDir()
	envPath := filepath.Join(tmpDir, ".env")
	if err := os.WriteFile(envPath, []byte(EnvBaseURL+"=https://dotenv.example.com\n"), 0600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	// Register cleanup for the variable godotenv is about to set
	t.Setenv(EnvBaseURL, "")
	os.Unsetenv(EnvBaseURL)

	if err := LoadEnv(filepath.Join(tmpDir, "missing.env"), envPath); err != nil {
		t.Fatalf("LoadEnv() failed: %v", err)
	}

	if got := os.Getenv(EnvBaseURL); got != "https://dotenv.example.com" {
		t.Errorf("Expected value from .env, got %q", got)
	}
}
