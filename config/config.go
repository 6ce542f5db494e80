package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is read from the environment, optionally primed from a .env file.
type Config struct {
	AppName     string `env:"RF_APP_NAME" envDefault:"ResearchFlow"`
	Host        string `env:"RF_HOST" envDefault:"0.0.0.0"`
	Port        int    `env:"PORT" envDefault:"8080"`
	Env         string `env:"RF_ENV" envDefault:"development"`
	LogLevel    string `env:"RF_LOG_LEVEL" envDefault:"info"`
	LogPretty   bool   `env:"RF_LOG_PRETTY" envDefault:"false"`
	SeedFile    string `env:"RF_SEED_FILE"`
	CurrentUser string `env:"RF_CURRENT_USER" envDefault:"u1"`
}

func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Addr returns host:port for the HTTP listener.
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Load reads files (default ".env") into the process environment when they exist and
// then parses the environment. A missing file is not an error.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("loading %s: %w", f, err)
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("PORT must be between 1 and 65535, got %d", cfg.Port)
	}
	return cfg, nil
}
