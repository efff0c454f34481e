package cmd

import (
	"github.com/cockroachdb/errors"
	"github.com/kelseyhightower/envconfig"
)

// Config holds the command's settings, read from RDATE_* environment
// variables.
type Config struct {
	FirstDayOfWeek string `envconfig:"FIRST_DAY_OF_WEEK" default:"monday"`
	LogFormat      string `envconfig:"LOG_FORMAT" default:"text"`
	LogLevel       string `envconfig:"LOG_LEVEL" default:"info"`
}

// LoadConfig reads configuration from environment variables.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("rdate", &cfg); err != nil {
		return nil, errors.Wrap(err, "reading environment")
	}
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, errors.Newf("log format must be text or json, not %q", cfg.LogFormat)
	}
	return &cfg, nil
}
