package cmd

import (
	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
)

// Config carries the launcher identity and defaults, sourced from the
// environment so wrapping launchers can brand the command lines they
// produce without extra flags.
type Config struct {
	LauncherName    string `env:"CRAFTLINE_LAUNCHER_NAME" envDefault:"craftline"`
	LauncherVersion string `env:"CRAFTLINE_LAUNCHER_VERSION" envDefault:"0.1.0"`
	Xmx             int    `env:"CRAFTLINE_XMX" envDefault:"4"`
	Xms             int    `env:"CRAFTLINE_XMS" envDefault:"2"`
	JavaPath        string `env:"CRAFTLINE_JAVA"`
}

func loadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, errors.Wrap(err, "reading environment configuration")
	}
	return cfg, nil
}
