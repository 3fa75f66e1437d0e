// Package config loads the dashboard configuration from an optional YAML
// file and the process environment. Environment variables win over file
// values so deployments can override packaged defaults.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds the runtime configuration for the dashboard service.
type Config struct {
	// Addr is the listen address of the HTTP server.
	Addr string `yaml:"addr"`

	// SeedData controls whether demo records are loaded at startup.
	SeedData bool `yaml:"seed_data"`

	// CORSAllowedOrigins lists the origins allowed to call the API.
	CORSAllowedOrigins []string `yaml:"cors_allowed_origins"`

	AI AIConfig `yaml:"ai"`
}

// AIConfig configures the OpenAI-compatible content generator. An empty
// APIKey disables generation and the service falls back to canned replies.
type AIConfig struct {
	APIKey  string        `yaml:"api_key"`
	BaseURL string        `yaml:"base_url"`
	Model   string        `yaml:"model"`
	Timeout time.Duration `yaml:"timeout"`
}

// Default returns the configuration used when no file or environment
// overrides are present.
func Default() Config {
	return Config{
		Addr:               ":5000",
		SeedData:           true,
		CORSAllowedOrigins: []string{"*"},
		AI: AIConfig{
			BaseURL: "https://api.openai.com/v1",
			Model:   "gpt-4o",
			Timeout: 30 * time.Second,
		},
	}
}

// Load builds the configuration from defaults, an optional YAML file and
// the environment. A .env file in the working directory is read first so
// local development matches deployed behavior.
func Load(path string) (Config, error) {
	// Missing .env is fine; only a parse failure matters.
	_ = godotenv.Load()

	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return Config{}, fmt.Errorf("failed to read config file: %w", err)
			}
		} else if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("DASHBOARD_ADDR"); v != "" {
		c.Addr = v
	}
	if v := os.Getenv("SEED_DATA"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid SEED_DATA value %q: %w", v, err)
		}
		c.SeedData = b
	}
	if v := os.Getenv("CORS_ALLOWED_ORIGINS"); v != "" {
		origins := strings.Split(v, ",")
		for i := range origins {
			origins[i] = strings.TrimSpace(origins[i])
		}
		c.CORSAllowedOrigins = origins
	}
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		c.AI.APIKey = v
	}
	if v := os.Getenv("OPENAI_BASE_URL"); v != "" {
		c.AI.BaseURL = v
	}
	if v := os.Getenv("OPENAI_MODEL"); v != "" {
		c.AI.Model = v
	}
	if v := os.Getenv("AI_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid AI_TIMEOUT value %q: %w", v, err)
		}
		c.AI.Timeout = d
	}
	return nil
}
