// Package config loads covcheck settings from the environment, optionally
// seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"math"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/katalvlaran/hesscov/covariance"
	"github.com/katalvlaran/hesscov/internal/logging"
	"github.com/katalvlaran/hesscov/selftest"
)

// Prefix is prepended to every variable name: HESSCOV_STEP, HESSCOV_MEMO, …
const Prefix = "HESSCOV"

// DefaultEnvFile is read when present; its absence is not an error.
const DefaultEnvFile = ".env"

// ErrInvalid reports a setting outside its domain.
var ErrInvalid = errors.New("config: invalid value")

// Config holds all covcheck configuration.
type Config struct {
	Step      float64 `envconfig:"STEP" default:"1e-3"`
	Inverter  string  `envconfig:"INVERTER" default:"gonum"`
	Memo      bool    `envconfig:"MEMO" default:"false"`
	Tolerance float64 `envconfig:"TOLERANCE" default:"1e-2"`
	Format    string  `envconfig:"FORMAT" default:"text"`
	XLSX      string  `envconfig:"XLSX"`
	LogLevel  string  `envconfig:"LOG_LEVEL" default:"info"`
	LogDev    bool    `envconfig:"LOG_DEV" default:"false"`
}

// Load reads envFile (DefaultEnvFile when empty) into the process
// environment without overriding variables already set, then processes
// HESSCOV_* variables. An explicit envFile that does not exist is an error.
//
// Load only parses; call Validate once every other source (command-line
// flags) has been applied on top.
func Load(envFile string) (*Config, error) {
	explicit := envFile != ""
	if !explicit {
		envFile = DefaultEnvFile
	}
	if err := godotenv.Load(envFile); err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read env file %s: %w", envFile, err)
		}
	}

	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return &cfg, nil
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Step:      selftest.DefaultStep,
		Inverter:  covariance.InverterGonum,
		Tolerance: 1e-2,
		Format:    string(selftest.FormatText),
		LogLevel:  "info",
	}
}

// Validate checks every field against its domain.
func (c *Config) Validate() error {
	if math.IsNaN(c.Step) || math.IsInf(c.Step, 0) || c.Step <= 0 {
		return fmt.Errorf("%w: step %v must be positive and finite", ErrInvalid, c.Step)
	}
	if math.IsNaN(c.Tolerance) || c.Tolerance < 0 {
		return fmt.Errorf("%w: tolerance %v must be >= 0", ErrInvalid, c.Tolerance)
	}
	if _, err := covariance.InverterByName(c.Inverter); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if _, err := selftest.ParseFormat(c.Format); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	return nil
}

// Logging maps the log settings onto a logging.Config.
func (c *Config) Logging() logging.Config {
	lc := logging.DefaultConfig()
	if c.LogDev {
		lc = logging.DevelopmentConfig()
	}
	if c.LogLevel != "" {
		lc.Level = c.LogLevel
	}

	return lc
}
