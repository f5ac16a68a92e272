package engine

import (
	"fmt"
	"log/slog"
	"os"
)

// Config holds sentiment engine settings. Models maps a submission model
// type (e.g. "hotel") to the backing model name; every mapped type gets a
// registry entry.
type Config struct {
	Provider string            `toml:"provider"`
	APIKey   string            `toml:"api_key"`
	Model    string            `toml:"model"`
	Models   map[string]string `toml:"models"`
}

// Env maps config fields to environment variable names for override injection.
type Env struct {
	Provider string
	APIKey   string
	Model    string
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *Config) Finalize(env *Env) error {
	c.loadDefaults()
	if env != nil {
		c.loadEnv(env)
	}
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *Config) Merge(overlay *Config) {
	if overlay.Provider != "" {
		c.Provider = overlay.Provider
	}
	if overlay.APIKey != "" {
		c.APIKey = overlay.APIKey
	}
	if overlay.Model != "" {
		c.Model = overlay.Model
	}
	if overlay.Models != nil {
		c.Models = overlay.Models
	}
}

func (c *Config) loadDefaults() {
	if c.Provider == "" {
		c.Provider = "openai"
	}
	if c.Model == "" {
		c.Model = "gpt-4o-mini"
	}
	if c.Models == nil {
		c.Models = map[string]string{
			"amazon":   c.Model,
			"hotel":    c.Model,
			"coursera": c.Model,
		}
	}
}

func (c *Config) loadEnv(env *Env) {
	if env.Provider != "" {
		if v := os.Getenv(env.Provider); v != "" {
			c.Provider = v
		}
	}
	if env.APIKey != "" {
		if v := os.Getenv(env.APIKey); v != "" {
			c.APIKey = v
		}
	}
	if env.Model != "" {
		if v := os.Getenv(env.Model); v != "" {
			c.Model = v
		}
	}
}

func (c *Config) validate() error {
	switch c.Provider {
	case "openai", "none":
		return nil
	}
	return fmt.Errorf("unknown provider: %s", c.Provider)
}

// NewRegistryFromConfig builds the engine registry for every configured
// model type. With provider "none" or a missing API key the entries are
// unavailable engines, which the pipeline treats as "no aspects found".
func NewRegistryFromConfig(cfg *Config, logger *slog.Logger) *Registry {
	registry := NewRegistry(logger)

	for modelType, model := range cfg.Models {
		if model == "" {
			model = cfg.Model
		}

		var e Engine
		switch cfg.Provider {
		case "openai":
			e = NewOpenAI(cfg.APIKey, model)
		default:
			e = NewOpenAI("", model)
		}

		registry.Register(modelType, e)

		if !e.Available() {
			registry.logger.Warn("engine unavailable", "model_type", modelType)
		} else {
			registry.logger.Info("engine registered", "model_type", modelType, "model", model)
		}
	}

	return registry
}
