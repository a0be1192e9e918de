package config

import (
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
)

// Server holds the settings for skyphase serve.
type Server struct {
	HTTPAddr   string     `env:"HTTP_ADDR" envDefault:":8080"`
	LogLevel   slog.Level `env:"LOG_LEVEL" envDefault:"INFO"`
	PlacesFile string     `env:"PLACES_FILE"`
	CacheSize  int        `env:"CACHE_SIZE" envDefault:"256"`
}

// LoadServer reads Server from the environment.
func LoadServer() (*Server, error) {
	cfg, err := env.ParseAs[Server]()
	if err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	if cfg.CacheSize < 0 {
		return nil, fmt.Errorf("CACHE_SIZE must not be negative: %d", cfg.CacheSize)
	}
	return &cfg, nil
}
