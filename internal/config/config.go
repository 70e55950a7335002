package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"

	"tj2904.com/internal/catalog"
	"tj2904.com/internal/services"
)

// Config holds all application configuration
type Config struct {
	ServerAddr      string        `env:"SERVER_ADDR" envDefault:":8080"`
	SiteURL         string        `env:"SITE_URL" envDefault:"https://tj2904.com"`
	SiteAuthor      string        `env:"SITE_AUTHOR" envDefault:"Tim Jackson"`
	SiteTitle       string        `env:"SITE_TITLE" envDefault:"Tim Jackson's Portfolio"`
	CatalogPath     string        `env:"CATALOG_PATH"`
	AssetsDir       string        `env:"ASSETS_DIR" envDefault:"public/assets"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

// Load reads configuration from the environment
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}

// Site returns the site identity used for page metadata
func (c *Config) Site() services.Site {
	return services.Site{
		URL:    c.SiteURL,
		Author: c.SiteAuthor,
		Title:  c.SiteTitle,
	}
}

// Level parses LogLevel
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid LOG_LEVEL %q: %w", c.LogLevel, err)
	}
	return level, nil
}

// LoadCatalog reads the catalog file at CatalogPath, or the embedded
// dataset when no path is set.
func (c *Config) LoadCatalog() (*catalog.Catalog, error) {
	if c.CatalogPath == "" {
		return catalog.Default()
	}
	return catalog.Load(c.CatalogPath)
}
