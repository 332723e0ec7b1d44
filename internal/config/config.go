// Package config loads runtime settings for module trees from the
// environment.
package config

import (
	"fmt"
	"io"

	"github.com/caarlos0/env/v11"

	"github.com/comalice/storetree/internal/core"
)

// Config controls strict mode and diagnostic logging.
type Config struct {
	Strict    bool   `env:"STORETREE_STRICT"     envDefault:"true"`
	LogLevel  string `env:"STORETREE_LOG_LEVEL"  envDefault:"info"`
	LogFormat string `env:"STORETREE_LOG_FORMAT" envDefault:"text"`
}

// Load reads Config from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// TreeOptions returns the tree options implied by cfg, logging to w.
func (c Config) TreeOptions(w io.Writer) []core.Option {
	logger := c.Logger(w)
	return []core.Option{
		core.WithStrict(c.Strict),
		core.WithLogger(logger),
		core.WithReporter(core.NewLogReporter(logger)),
	}
}
