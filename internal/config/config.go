package config

import (
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all configuration for the application
type Config struct {
	// Application settings
	Port    string `envconfig:"PORT" default:"8080"`
	GinMode string `envconfig:"GIN_MODE" default:"debug"`

	// BaseURL is the externally visible root of the service. Every
	// hyperlink in a response body is built from it.
	BaseURL string `envconfig:"BASE_URL" default:"http://localhost:8080"`

	MongodbURL      string `envconfig:"MONGODB_URL" required:"true"`
	MongodbDatabase string `envconfig:"MONGODB_DATABASE" default:"songvault"`

	// ValkeyURL is optional; when empty the service falls back to an
	// in-process cache.
	ValkeyURL string `envconfig:"VALKEY_URL"`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return nil, err
	}

	// Link construction appends paths itself; a trailing slash would
	// produce double slashes in every href.
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	return &cfg, nil
}

// CollectionURL returns the absolute URL of the songs collection root.
func (c *Config) CollectionURL() string {
	return c.BaseURL + "/songs"
}
