// Package config loads application configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/ericfisherdev/genpass/internal/application"
	"github.com/ericfisherdev/genpass/internal/domain/model"
)

// Config holds the application configuration loaded from environment variables.
type Config struct {
	ListenAddr string `env:"GENPASS_LISTEN_ADDR" envDefault:"127.0.0.1:8080"`
	DBPath     string `env:"GENPASS_DB_PATH" envDefault:"genpass.db"`
	// SecretKey enables at-rest encryption of stored passwords when set.
	SecretKey string `env:"GENPASS_SECRET_KEY"`

	MaxHistory            int `env:"GENPASS_MAX_HISTORY" envDefault:"50"`
	DefaultUsernameLength int `env:"GENPASS_DEFAULT_USERNAME_LENGTH" envDefault:"8"`
	DefaultPasswordLength int `env:"GENPASS_DEFAULT_PASSWORD_LENGTH" envDefault:"12"`
}

// HasSecretKey reports whether stored passwords should be sealed.
func (c *Config) HasSecretKey() bool {
	return c.SecretKey != ""
}

// DefaultSettings returns model.DefaultSettings with the configured history
// size and default lengths applied. These seed the settings store until the
// user saves their own.
func (c *Config) DefaultSettings() model.Settings {
	s := model.DefaultSettings()
	s.MaxHistory = c.MaxHistory
	s.DefaultUsernameLength = c.DefaultUsernameLength
	s.DefaultPasswordLength = c.DefaultPasswordLength
	return s
}

// Load reads an optional .env file from the working directory, then parses
// GENPASS_ environment variables into a validated Config. Variables already
// present in the environment take precedence over the .env file.
func Load() (*Config, error) {
	return LoadFiles()
}

// LoadFiles works like Load but reads the given dotenv files instead of .env.
// Missing files are ignored.
func LoadFiles(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch {
	case c.ListenAddr == "":
		return errors.New("GENPASS_LISTEN_ADDR must not be empty")
	case c.DBPath == "":
		return errors.New("GENPASS_DB_PATH must not be empty")
	case c.MaxHistory < 1 || c.MaxHistory > application.MaxHistoryLimit:
		return fmt.Errorf("GENPASS_MAX_HISTORY must be between 1 and %d, got %d", application.MaxHistoryLimit, c.MaxHistory)
	case c.DefaultUsernameLength < 1 || c.DefaultUsernameLength > application.MaxUsernameLength:
		return fmt.Errorf("GENPASS_DEFAULT_USERNAME_LENGTH must be between 1 and %d, got %d", application.MaxUsernameLength, c.DefaultUsernameLength)
	case c.DefaultPasswordLength < 1 || c.DefaultPasswordLength > application.MaxPasswordLength:
		return fmt.Errorf("GENPASS_DEFAULT_PASSWORD_LENGTH must be between 1 and %d, got %d", application.MaxPasswordLength, c.DefaultPasswordLength)
	}
	return nil
}
