// Package config loads CLI defaults from the environment
package config

import (
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/KirkDiggler/rpg-sheetfill/internal/errors"
)

// Config holds run settings. Every field can be overridden by a CLI flag.
type Config struct {
	Input    string `env:"INPUT" envDefault:"character.xml"`
	Output   string `env:"OUTPUT" envDefault:"character.pdf"`
	Template string `env:"TEMPLATE"`
	Layout   string `env:"LAYOUT"`
	// SourceDateEpoch pins the PDF creation date for reproducible output
	SourceDateEpoch int64  `env:"SOURCE_DATE_EPOCH"`
	LogLevel        string `env:"LOG_LEVEL" envDefault:"info"`
	Development     bool   `env:"DEVELOPMENT"`
}

// Prefix is prepended to every variable name
const Prefix = "CHARSHEET_"

var logLevels = []string{"debug", "info", "warn", "error"}

// Load reads an optional .env file and then the CHARSHEET_* environment.
// Variables already set in the environment win over the file.
func Load(dotenv string) (*Config, error) {
	if dotenv != "" {
		if err := godotenv.Load(dotenv); err != nil && !os.IsNotExist(err) {
			return nil, errors.WrapWithCode(err, errors.CodeIO, "failed to read env file").
				WithMeta("path", dotenv)
		}
	}

	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: Prefix}); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}
	return cfg, nil
}

// Validate checks the settings needed by every command
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("input", c.Input, vb)
	errors.ValidateEnum("log_level", c.LogLevel, logLevels, vb)
	if c.SourceDateEpoch < 0 {
		vb.InvalidField("source_date_epoch", "must not be negative")
	}
	return vb.Build()
}
