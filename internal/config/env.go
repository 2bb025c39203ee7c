package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env holds process settings that may come from the environment.
// Command-line flags take precedence over these values.
type Env struct {
	DBPath   string `env:"MAZE_DB_PATH"`
	LogLevel string `env:"MAZE_LOG_LEVEL" envDefault:"info"`
	LogFile  string `env:"MAZE_LOG_FILE"`
	SSHAddr  string `env:"MAZE_SSH_ADDR" envDefault:"localhost:2222"`
	FPS      int    `env:"MAZE_FPS" envDefault:"30"`
	Mono     bool   `env:"MAZE_MONO"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadEnv parses the MAZE_* variables.
func LoadEnv() (Env, error) {
	var e Env
	if err := ParseEnv(&e); err != nil {
		return Env{}, err
	}
	return e, nil
}
