package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	SessionBackendFile  = "file"
	SessionBackendRedis = "redis"

	DefaultApiBaseURL = "http://localhost:3000/api"
)

type Config struct {
	// backend API
	ApiBaseURL            string `toml:"api_base_url"`
	RequestTimeoutSeconds int    `toml:"request_timeout_seconds"`
	RequestsPerSecond     int    `toml:"requests_per_second"`
	StatsCacheTTLSeconds  int    `toml:"stats_cache_ttl_seconds"`
	// session
	SessionBackend  string `toml:"session_backend"`
	SessionFilePath string `toml:"session_file_path"`
	RedisHost       string `toml:"redis_host"`
	RedisPort       string `toml:"redis_port"`
	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	SentryEnabled bool   `toml:"sentry_enabled"`
	// mcp server
	McpHost            string `toml:"mcp_host"`
	McpPort            int    `toml:"mcp_port"`
	McpRateLimitPerMin int    `toml:"mcp_rate_limit_per_min"`
	MetricsHost        string `toml:"metrics_host"`
	MetricsPort        string `toml:"metrics_port"`

	Environment string `toml:"-"`
}

type Toml struct {
	Development *Config
	Production  *Config
	Test        *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	var cfg *Config
	switch strings.ToLower(env) {
	case "dev", "development":
		cfg = t.Development
	case "prod", "production":
		cfg = t.Production
	case "test":
		cfg = t.Test
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}

	if cfg == nil {
		return nil, fmt.Errorf("config for env [%s] not set", env)
	}

	cfg.Environment = strings.ToLower(env)
	cfg.setDefaults()
	return cfg, nil
}

// Load reads the TOML file and returns the config of the given environment.
func Load(env, configPath string) (*Config, error) {
	var tomlConfig Toml
	if _, err := toml.DecodeFile(configPath, &tomlConfig); err != nil {
		return nil, fmt.Errorf("decode config file [%s]: %w", configPath, err)
	}

	cfg, err := tomlConfig.Get(env)
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) setDefaults() {
	if c.ApiBaseURL == "" {
		c.ApiBaseURL = DefaultApiBaseURL
	}
	c.ApiBaseURL = strings.TrimSuffix(c.ApiBaseURL, "/")

	if c.SessionBackend == "" {
		c.SessionBackend = SessionBackendFile
	}
	if c.SessionFilePath == "" {
		c.SessionFilePath = DefaultSessionFilePath()
	}
	if c.RedisPort == "" {
		c.RedisPort = "6379"
	}
	if c.McpHost == "" {
		c.McpHost = "localhost"
	}
	if c.McpPort == 0 {
		c.McpPort = 9110
	}
	if c.MetricsHost == "" {
		c.MetricsHost = "localhost"
	}
	if c.MetricsPort == "" {
		c.MetricsPort = "9111"
	}
}

func (c *Config) Validate() error {
	switch c.SessionBackend {
	case SessionBackendFile:
	case SessionBackendRedis:
		if c.RedisHost == "" {
			return fmt.Errorf("session backend [redis] requires redis_host")
		}
	default:
		return fmt.Errorf("unknown session backend: %s", c.SessionBackend)
	}

	if c.RequestTimeoutSeconds < 0 || c.RequestsPerSecond < 0 || c.StatsCacheTTLSeconds < 0 {
		return fmt.Errorf("request timeout, requests per second and stats cache ttl must not be negative")
	}

	return nil
}

// DefaultSessionFilePath points to the per-user config dir, falling back to the working dir.
func DefaultSessionFilePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".", "fittrack-session.json")
	}
	return filepath.Join(dir, "fittrack", "session.json")
}
