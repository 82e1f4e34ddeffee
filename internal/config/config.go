// Package config loads game settings from a YAML or TOML file and the
// environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"tomo/internal/pet"
)

type Config struct {
	TickRate    time.Duration
	FeedbackTTL time.Duration
	AltScreen   bool
	LogFile     string
	Pet         PetConfig
}

type PetConfig struct {
	Name string `yaml:"name" toml:"name"` // Skips the naming screen when set
}

// fileConfig mirrors Config with durations as strings, since TOML has no
// duration type
type fileConfig struct {
	TickRate    *string   `yaml:"tick_rate" toml:"tick_rate"`
	FeedbackTTL *string   `yaml:"feedback_ttl" toml:"feedback_ttl"`
	AltScreen   *bool     `yaml:"alt_screen" toml:"alt_screen"`
	LogFile     *string   `yaml:"log_file" toml:"log_file"`
	Pet         PetConfig `yaml:"pet" toml:"pet"`
}

// DefaultPath returns ~/.config/tomo/config.yaml
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".config", "tomo", "config.yaml"), nil
}

// Defaults returns the built-in settings
func Defaults() *Config {
	return &Config{
		TickRate:    250 * time.Millisecond,
		FeedbackTTL: 2 * time.Second,
		AltScreen:   true,
	}
}

// Load reads path (a missing file means defaults), applies TOMO_*
// environment overrides and validates the result.
func Load(path string) (*Config, error) {
	cfg := Defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("reading config: %w", err)
			}
		} else if err := parse(path, data, cfg); err != nil {
			return nil, err
		}
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func parse(path string, data []byte, cfg *Config) error {
	var fc fileConfig
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.Decode(string(data), &fc); err != nil {
			return fmt.Errorf("parsing config: %w", err)
		}
	case ".yaml", ".yml", "":
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return fmt.Errorf("parsing config: %w", err)
		}
	default:
		return fmt.Errorf("unsupported config format %q", ext)
	}

	if fc.TickRate != nil {
		d, err := time.ParseDuration(*fc.TickRate)
		if err != nil {
			return fmt.Errorf("parsing tick_rate: %w", err)
		}
		cfg.TickRate = d
	}
	if fc.FeedbackTTL != nil {
		d, err := time.ParseDuration(*fc.FeedbackTTL)
		if err != nil {
			return fmt.Errorf("parsing feedback_ttl: %w", err)
		}
		cfg.FeedbackTTL = d
	}
	if fc.AltScreen != nil {
		cfg.AltScreen = *fc.AltScreen
	}
	if fc.LogFile != nil {
		cfg.LogFile = *fc.LogFile
	}
	if fc.Pet.Name != "" {
		cfg.Pet.Name = fc.Pet.Name
	}
	return nil
}

// Env vars override the config file
func applyEnv(cfg *Config) error {
	if env := os.Getenv("TOMO_TICK_RATE"); env != "" {
		d, err := time.ParseDuration(env)
		if err != nil {
			return fmt.Errorf("parsing TOMO_TICK_RATE: %w", err)
		}
		cfg.TickRate = d
	}
	if env := os.Getenv("TOMO_FEEDBACK_TTL"); env != "" {
		d, err := time.ParseDuration(env)
		if err != nil {
			return fmt.Errorf("parsing TOMO_FEEDBACK_TTL: %w", err)
		}
		cfg.FeedbackTTL = d
	}
	if env := os.Getenv("TOMO_ALT_SCREEN"); env != "" {
		b, err := strconv.ParseBool(env)
		if err != nil {
			return fmt.Errorf("parsing TOMO_ALT_SCREEN: %w", err)
		}
		cfg.AltScreen = b
	}
	if env := os.Getenv("TOMO_LOG_FILE"); env != "" {
		cfg.LogFile = env
	}
	if env := os.Getenv("TOMO_PET_NAME"); env != "" {
		cfg.Pet.Name = env
	}
	return nil
}

// Validate checks that the settings can drive the game
func (c *Config) Validate() error {
	if c.TickRate <= 0 {
		return fmt.Errorf("tick_rate must be positive, got %s", c.TickRate)
	}
	if c.FeedbackTTL < 0 {
		return fmt.Errorf("feedback_ttl must not be negative, got %s", c.FeedbackTTL)
	}
	if n := utf8.RuneCountInString(c.Pet.Name); n > pet.MaxNameLength {
		return fmt.Errorf("pet name is %d characters, max is %d", n, pet.MaxNameLength)
	}
	return nil
}
