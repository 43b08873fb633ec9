package config

import (
	"fmt"
	"net/url"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// defaults
const (
	DefaultListen  = ":8080"
	DefaultTimeout = 30 * time.Second
	DefaultAPIURL  = "http://127.0.0.1:5000/api/news"
)

// Config holds the application configuration
type Config struct {
	Server ServerConfig `yaml:"server" json:"server" jsonschema:"description=Server configuration"`
	API    APIConfig    `yaml:"api" json:"api" jsonschema:"description=Headlines API configuration"`
	Page   PageConfig   `yaml:"page" json:"page" jsonschema:"description=Host page configuration"`
}

// ServerConfig holds settings of the http server hosting the page
type ServerConfig struct {
	Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
	Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
}

// APIConfig holds settings of the headlines API the page is rendered from
type APIConfig struct {
	URL     string        `yaml:"url" json:"url" jsonschema:"default=http://127.0.0.1:5000/api/news,description=Headlines API endpoint"`
	Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=0s,description=Request timeout, zero keeps transport defaults"`
}

// PageConfig holds settings of the host page
type PageConfig struct {
	Template string `yaml:"template" json:"template" jsonschema:"description=Path to host page html, embedded page used if empty"`
}

// Load reads configuration from a YAML file, empty path means defaults only
func Load(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}

		// expand environment variables
		expanded := os.ExpandEnv(string(data))

		if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	cfg.setDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		// log warning but don't fail - schema validation is supplementary
		fmt.Printf("warning: schema validation failed: %v\n", err)
	}

	return &cfg, nil
}

func (c *Config) setDefaults() {
	if c.Server.Listen == "" {
		c.Server.Listen = DefaultListen
	}
	if c.Server.Timeout == 0 {
		c.Server.Timeout = DefaultTimeout
	}
	if c.API.URL == "" {
		c.API.URL = DefaultAPIURL
	}
}

// Validate checks configuration for correctness
func (c *Config) Validate() error {
	if c.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}

	u, err := url.Parse(c.API.URL)
	if err != nil {
		return fmt.Errorf("api.url is invalid: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("api.url must be an absolute http(s) url, got %q", c.API.URL)
	}
	if c.API.Timeout < 0 {
		return fmt.Errorf("api.timeout must be non-negative")
	}

	if c.Page.Template != "" {
		if _, err := os.Stat(c.Page.Template); err != nil {
			return fmt.Errorf("page.template: %w", err)
		}
	}

	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}
