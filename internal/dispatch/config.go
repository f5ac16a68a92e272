package dispatch

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Default dispatcher settings.
const (
	DefaultInterval   = "5s"
	DefaultBatchSize  = 5
	DefaultMaxWorkers = 4
)

// Config holds dispatcher polling parameters.
type Config struct {
	Interval   string `toml:"interval"`
	BatchSize  int    `toml:"batch_size"`
	MaxWorkers int    `toml:"max_workers"`
}

// Env maps config fields to environment variable names for override injection.
type Env struct {
	Interval   string
	BatchSize  string
	MaxWorkers string
}

// IntervalDuration returns Interval as a time.Duration.
func (c *Config) IntervalDuration() time.Duration {
	d, _ := time.ParseDuration(c.Interval)
	return d
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
	if overlay.Interval != "" {
		c.Interval = overlay.Interval
	}
	if overlay.BatchSize != 0 {
		c.BatchSize = overlay.BatchSize
	}
	if overlay.MaxWorkers != 0 {
		c.MaxWorkers = overlay.MaxWorkers
	}
}

func (c *Config) loadDefaults() {
	if c.Interval == "" {
		c.Interval = DefaultInterval
	}
	if c.BatchSize == 0 {
		c.BatchSize = DefaultBatchSize
	}
	if c.MaxWorkers == 0 {
		c.MaxWorkers = DefaultMaxWorkers
	}
}

func (c *Config) loadEnv(env *Env) {
	if env.Interval != "" {
		if v := os.Getenv(env.Interval); v != "" {
			c.Interval = v
		}
	}
	if env.BatchSize != "" {
		if v := os.Getenv(env.BatchSize); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				c.BatchSize = n
			}
		}
	}
	if env.MaxWorkers != "" {
		if v := os.Getenv(env.MaxWorkers); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				c.MaxWorkers = n
			}
		}
	}
}

func (c *Config) validate() error {
	if _, err := time.ParseDuration(c.Interval); err != nil {
		return fmt.Errorf("invalid interval: %w", err)
	}
	if c.BatchSize < 1 {
		return fmt.Errorf("batch size must be positive: %d", c.BatchSize)
	}
	if c.MaxWorkers < 1 {
		return fmt.Errorf("max workers must be positive: %d", c.MaxWorkers)
	}
	return nil
}
