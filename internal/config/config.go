// Package config provides configuration loading and defaults for the
// nutctl MCP serve mode. The one-shot subcommands are configured by
// flags alone and never touch this package.
package config

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// ServerConfig holds listen and authentication settings for the MCP
// HTTP server.
type ServerConfig struct {
	Port      int    `yaml:"port"`
	AuthToken string `yaml:"auth_token"`
}

// NUTConfig holds the default NUT server connection used by the MCP
// tools. Values can be overridden per invocation by CLI flags.
type NUTConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	UPSName  string `yaml:"ups_name"`
}

// AuditConfig controls audit logging behaviour.
type AuditConfig struct {
	Enabled bool   `yaml:"enabled"`
	LogPath string `yaml:"log_path"`
}

// FilterConfig holds allowlist and denylist glob patterns restricting
// which UPS device names the MCP tools may act on.
type FilterConfig struct {
	Allowlist []string `yaml:"allowlist"`
	Denylist  []string `yaml:"denylist"`
}

// Config is the top-level configuration structure for nutctl serve.
type Config struct {
	Server ServerConfig `yaml:"server"`
	NUT    NUTConfig    `yaml:"nut"`
	Audit  AuditConfig  `yaml:"audit"`
	Filter FilterConfig `yaml:"filter"`
}

// LoadConfig reads and parses a YAML configuration file from the given
// path. On error, nil is returned for the config pointer.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// DefaultConfig returns a new Config populated with sensible default
// values. Each call returns a distinct instance.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port: 8080,
		},
		NUT: NUTConfig{
			Host: "localhost",
			Port: 3493,
		},
		Audit: AuditConfig{
			Enabled: true,
			LogPath: "nutctl-audit.log",
		},
	}
}

// ApplyEnvOverrides updates cfg in place with values from environment
// variables. Recognized variables:
//   - NUTCTL_AUTH_TOKEN overrides cfg.Server.AuthToken
//   - NUTCTL_NUT_HOST overrides cfg.NUT.Host
//   - NUTCTL_NUT_PORT overrides cfg.NUT.Port (ignored unless numeric)
//   - NUTCTL_NUT_USERNAME overrides cfg.NUT.Username
//   - NUTCTL_NUT_PASSWORD overrides cfg.NUT.Password
//   - NUTCTL_UPS_NAME overrides cfg.NUT.UPSName
func ApplyEnvOverrides(cfg *Config) {
	if token := os.Getenv("NUTCTL_AUTH_TOKEN"); token != "" {
		cfg.Server.AuthToken = token
	}
	if host := os.Getenv("NUTCTL_NUT_HOST"); host != "" {
		cfg.NUT.Host = host
	}
	if port := os.Getenv("NUTCTL_NUT_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			cfg.NUT.Port = p
		}
	}
	if user := os.Getenv("NUTCTL_NUT_USERNAME"); user != "" {
		cfg.NUT.Username = user
	}
	if pass := os.Getenv("NUTCTL_NUT_PASSWORD"); pass != "" {
		cfg.NUT.Password = pass
	}
	if name := os.Getenv("NUTCTL_UPS_NAME"); name != "" {
		cfg.NUT.UPSName = name
	}
}

// EnsureAuthToken generates a random auth token and sets it on cfg if
// cfg.Server.AuthToken is empty. It returns the token (existing or
// generated) and any error encountered during generation.
func EnsureAuthToken(cfg *Config) (string, error) {
	if cfg.Server.AuthToken != "" {
		return cfg.Server.AuthToken, nil
	}
	token, err := GenerateRandomToken()
	if err != nil {
		return "", fmt.Errorf("generate auth token: %w", err)
	}
	cfg.Server.AuthToken = token
	return token, nil
}

// GenerateRandomToken returns a 32-character hex-encoded
// cryptographically random token string.
func GenerateRandomToken() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("rand.Read: %w", err)
	}
	return hex.EncodeToString(b), nil
}
