package app

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "CASHBOX"

// Config holds runtime wiring options for building the app.
type Config struct {
	Home string    `envconfig:"HOME" default:"data"` // data directory for the three files
	Log  LogConfig `envconfig:"LOG"`
}

// LogConfig controls structured logging.
type LogConfig struct {
	Level      string `envconfig:"LEVEL" default:"info"`  // debug|info|warn|error
	Format     string `envconfig:"FORMAT" default:"text"` // text|json|logfmt
	Prefix     string `envconfig:"PREFIX" default:"cashbox"`
	TimeFormat string `envconfig:"TIME_FORMAT" default:"15:04:05"`
}

// LoadConfig reads envFiles into the environment, then processes CASHBOX_*
// variables. With no envFiles a .env in the working directory is used if it
// exists; an explicitly named file that cannot be read is an error.
// Variables already set in the environment win over file values.
func LoadConfig(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("config: load .env: %w", err)
		}
	} else if err := godotenv.Load(envFiles...); err != nil {
		return Config{}, fmt.Errorf("config: load %v: %w", envFiles, err)
	}

	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}
