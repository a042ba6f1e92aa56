package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the application configuration.
type Config struct {
	Innings      int           `env:"HOMERUN_INNINGS" envDefault:"3"`
	Questions    int           `env:"HOMERUN_QUESTIONS" envDefault:"64"`
	BankPath     string        `env:"HOMERUN_BANK"`
	Locale       string        `env:"HOMERUN_LOCALE" envDefault:"en-US"`
	Seed         int64         `env:"HOMERUN_SEED"`
	HitDelay     time.Duration `env:"HOMERUN_HIT_DELAY" envDefault:"2s"`
	OutDelay     time.Duration `env:"HOMERUN_OUT_DELAY" envDefault:"1500ms"`
	LogFile      string        `env:"HOMERUN_LOG_FILE" envDefault:"homerun.log"`
	AwayName     string        `env:"HOMERUN_AWAY_NAME" envDefault:"Away"`
	HomeName     string        `env:"HOMERUN_HOME_NAME" envDefault:"Home"`
	GeminiAPIKey string        `env:"GEMINI_API_KEY"`
	GeminiModel  string        `env:"HOMERUN_GEMINI_MODEL" envDefault:"gemini-2.5-flash"`
}

// LoadConfig loads the configuration from environment variables.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the values env.Parse cannot.
func (c *Config) Validate() error {
	if c.Innings < 1 {
		return fmt.Errorf("HOMERUN_INNINGS must be at least 1, got %d", c.Innings)
	}
	if c.Questions < 1 {
		return fmt.Errorf("HOMERUN_QUESTIONS must be at least 1, got %d", c.Questions)
	}
	if c.HitDelay < 0 || c.OutDelay < 0 {
		return fmt.Errorf("play delays cannot be negative")
	}
	if c.Locale == "" {
		return fmt.Errorf("HOMERUN_LOCALE is empty")
	}
	return nil
}

// UseGemini reports whether commentary should come from Gemini.
func (c *Config) UseGemini() bool {
	return c.GeminiAPIKey != ""
}
