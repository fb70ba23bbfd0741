package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/language"
)

type Config struct {
	DefaultLocale string `env:"DEFAULT_LOCALE" envDefault:"en"`
	LocaleDir     string `env:"LOCALE_DIR"`
	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`

	level logrus.Level
}

// Load reads the configuration from the environment and validates it.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// .env is optional when variables come from the environment (Docker, CI, etc.).
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: parse env: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Level is the parsed LOG_LEVEL.
func (c *Config) Level() logrus.Level {
	return c.level
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.DefaultLocale) == "" {
		return fmt.Errorf("config: DEFAULT_LOCALE must not be empty")
	}
	tag, err := language.Parse(c.DefaultLocale)
	if err != nil {
		return fmt.Errorf("config: DEFAULT_LOCALE invalid (%q): %w", c.DefaultLocale, err)
	}
	c.DefaultLocale = tag.String()

	if c.LocaleDir != "" {
		info, err := os.Stat(c.LocaleDir)
		if err != nil {
			return fmt.Errorf("config: LOCALE_DIR invalid (%q): %w", c.LocaleDir, err)
		}
		if !info.IsDir() {
			return fmt.Errorf("config: LOCALE_DIR (%q) is not a directory", c.LocaleDir)
		}
	}

	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return fmt.Errorf("config: LOG_LEVEL invalid (%q): %w", c.LogLevel, err)
	}
	c.level = level

	return nil
}
