// ABOUTME: Configuration loading and parsing for bizmsg-gateway.
// ABOUTME: YAML files with environment variable expansion and duration parsing.

package config

import (
	"fmt"
	"os"
	"regexp"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the complete bizmsg-gateway configuration
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	API       APIConfig       `yaml:"api"`
	Translate TranslateConfig `yaml:"translate"`
	Agent     AgentConfig     `yaml:"agent"`
	State     StateConfig     `yaml:"state"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// ServerConfig holds the webhook server configuration
type ServerConfig struct {
	HTTPAddr    string `yaml:"http_addr"`
	WebhookPath string `yaml:"webhook_path"`

	// PropagateFailures turns processing failures into 500 responses
	// instead of the platform-expected unconditional 200.
	PropagateFailures bool `yaml:"propagate_failures"`
}

// APIConfig holds the Business Messages API endpoint configuration
type APIConfig struct {
	BaseURL string `yaml:"base_url"`
}

// TranslateConfig holds the translation service configuration
type TranslateConfig struct {
	BaseURL string `yaml:"base_url"`
}

// AgentConfig holds the representative identities and the send failure policy
type AgentConfig struct {
	BotName         string `yaml:"bot_name"`
	BotAvatar       string `yaml:"bot_avatar"`
	LiveAgentName   string `yaml:"live_agent_name"`
	LiveAgentAvatar string `yaml:"live_agent_avatar"`

	// FailurePolicy is "continue" (log and keep going) or "abort"
	// (abandon the rest of a multi-call send sequence).
	FailurePolicy string `yaml:"failure_policy"`
}

// StateConfig holds the dedup/ownership store configuration
type StateConfig struct {
	// Backend is "memory" or "sqlite"
	Backend string `yaml:"backend"`

	// Path to the SQLite database (sqlite backend only)
	Path string `yaml:"path"`

	DedupeTTL     time.Duration `yaml:"-"`
	DedupeMaxSize int           `yaml:"dedupe_max_size"`

	// Raw string value for YAML unmarshaling
	DedupeTTLRaw string `yaml:"dedupe_ttl"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Load reads a configuration file from the given path and returns a parsed
// Config. Environment variables in the format ${VAR_NAME} are expanded and
// duration strings are parsed into time.Duration values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	expandedData := expandEnvVars(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expandedData), &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.applyDefaults()

	if err := parseDurations(&cfg); err != nil {
		return nil, fmt.Errorf("parsing durations: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	cfg.State.DedupeTTL = 24 * time.Hour
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPAddr == "" {
		c.Server.HTTPAddr = ":8080"
	}
	if c.Server.WebhookPath == "" {
		c.Server.WebhookPath = "/callback"
	}
	if c.Agent.FailurePolicy == "" {
		c.Agent.FailurePolicy = "continue"
	}
	if c.State.Backend == "" {
		c.State.Backend = "memory"
	}
	if c.State.DedupeTTLRaw == "" {
		c.State.DedupeTTLRaw = "24h"
	}
	if c.State.DedupeMaxSize == 0 {
		c.State.DedupeMaxSize = 100_000
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}
}

// expandEnvVars replaces ${VAR_NAME} patterns with the corresponding
// environment variable values. Unset variables become empty strings.
func expandEnvVars(s string) string {
	re := regexp.MustCompile(`\$\{([^}]+)\}`)

	return re.ReplaceAllStringFunc(s, func(match string) string {
		varName := re.FindStringSubmatch(match)[1]
		return os.Getenv(varName)
	})
}

// Validate checks that all configuration fields hold permitted values.
// Returns an error describing the first validation failure encountered.
func (c *Config) Validate() error {
	switch c.State.Backend {
	case "memory":
	case "sqlite":
		if c.State.Path == "" {
			return fmt.Errorf("state.path is required for the sqlite backend")
		}
	default:
		return fmt.Errorf("state.backend must be memory or sqlite, got %q", c.State.Backend)
	}

	switch c.Agent.FailurePolicy {
	case "continue", "abort":
	default:
		return fmt.Errorf("agent.failure_policy must be continue or abort, got %q", c.Agent.FailurePolicy)
	}

	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("logging.format must be text or json, got %q", c.Logging.Format)
	}

	return nil
}

// parseDurations converts the raw duration strings into time.Duration values
func parseDurations(cfg *Config) error {
	var err error

	if cfg.State.DedupeTTLRaw != "" {
		cfg.State.DedupeTTL, err = time.ParseDuration(cfg.State.DedupeTTLRaw)
		if err != nil {
			return fmt.Errorf("parsing dedupe_ttl %q: %w", cfg.State.DedupeTTLRaw, err)
		}
	}

	return nil
}
