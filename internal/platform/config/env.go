// Package config loads process configuration from the environment.
package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Prefix is prepended to every environment key read through ParseEnv.
const Prefix = "QUESTBOARD_"

// ParseEnv loads configuration from QUESTBOARD_* environment variables.
//
// Struct tags name keys without the prefix, e.g. `env:"HTTP_ADDR"`.
func ParseEnv(target any) error {
	return ParseEnvWithPrefix(target, Prefix)
}

// ParseEnvWithPrefix loads configuration using a caller-supplied key prefix.
func ParseEnvWithPrefix(target any, prefix string) error {
	if target == nil {
		return fmt.Errorf("parse env: target is required")
	}
	if err := env.ParseWithOptions(target, env.Options{Prefix: strings.TrimSpace(prefix)}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
