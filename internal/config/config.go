// Package config loads game settings from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

var validate = validator.New()

// Features switches optional parts of the game on or off.
type Features struct {
	Mana       bool
	Spells     bool
	Archetypes bool
}

// Config holds the application configuration
type Config struct {
	SaveDir          string `validate:"required"`
	Seed             int64
	Features         Features
	Plain            bool
	LogLevel         string `validate:"oneof=debug info warn error"`
	LogFormat        string `validate:"oneof=text json"`
	LogFile          string `validate:"required"`
	TelemetryEnabled bool
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// A missing .env file is fine; real environment variables still apply.
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv builds the configuration from the current environment only.
func FromEnv() (*Config, error) {
	cfg := &Config{
		SaveDir:   getEnv("ZYVERIA_SAVE_DIR", "."),
		LogLevel:  strings.ToLower(getEnv("LOG_LEVEL", "info")),
		LogFormat: strings.ToLower(getEnv("LOG_FORMAT", "text")),
		LogFile:   getEnv("LOG_FILE", "zyveria.log"),
	}

	var errs []error
	var err error
	if cfg.Seed, err = getEnvInt64("ZYVERIA_SEED", 0); err != nil {
		errs = append(errs, err)
	}
	if cfg.Features.Mana, err = getEnvBool("ZYVERIA_MANA", true); err != nil {
		errs = append(errs, err)
	}
	if cfg.Features.Spells, err = getEnvBool("ZYVERIA_SPELLS", true); err != nil {
		errs = append(errs, err)
	}
	if cfg.Features.Archetypes, err = getEnvBool("ZYVERIA_ARCHETYPES", true); err != nil {
		errs = append(errs, err)
	}
	if cfg.Plain, err = getEnvBool("ZYVERIA_PLAIN", false); err != nil {
		errs = append(errs, err)
	}
	if cfg.TelemetryEnabled, err = getEnvBool("TELEMETRY_ENABLED", false); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field constraints and feature dependencies.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if c.Features.Spells && !c.Features.Mana {
		return errors.New("invalid config: ZYVERIA_SPELLS requires ZYVERIA_MANA")
	}
	return nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) (bool, error) {
	value, exists := os.LookupEnv(key)
	if !exists || strings.TrimSpace(value) == "" {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		return false, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return b, nil
}

func getEnvInt64(key string, defaultValue int64) (int64, error) {
	value, exists := os.LookupEnv(key)
	if !exists || strings.TrimSpace(value) == "" {
		return defaultValue, nil
	}
	n, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return n, nil
}
