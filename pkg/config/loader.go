// Package config wraps env-tag parsing so service config structs stay
// declarative: fields carry `env` and `envDefault` tags and Load fills
// them from the process environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
)

// Load populates cfg from environment variables according to its `env`
// struct tags. cfg must be a non-nil pointer to a struct.
func Load(cfg any) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("load config from environment: %w", err)
	}
	return nil
}
