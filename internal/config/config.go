package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/amorporfilmes/filmes-series/internal/catalog"
	"github.com/amorporfilmes/filmes-series/internal/catalog/mock"
	"github.com/amorporfilmes/filmes-series/internal/catalog/tmdb"
)

// EnvPrefix prefixes every environment override, e.g. AMOR_CATALOG_API_KEY.
const EnvPrefix = "AMOR_"

// DefaultConfigFile is looked up in the working directory when no path is given.
const DefaultConfigFile = "amor.yaml"

// ErrMissingCredentials is returned when the tmdb source has no key or token.
var ErrMissingCredentials = errors.New("catalog api_key or access_token is required for the tmdb source")

var validate = validator.New()

// Config is the deployment configuration: defaults, then YAML file, then
// environment.
type Config struct {
	Catalog CatalogConfig `koanf:"catalog"`
	Mock    MockConfig    `koanf:"mock"`
	Logging LoggingConfig `koanf:"logging"`
}

type CatalogConfig struct {
	Source          string        `koanf:"source" validate:"oneof=mock tmdb"`
	BaseURL         string        `koanf:"base_url" validate:"required,url"`
	APIKey          string        `koanf:"api_key"`
	AccessToken     string        `koanf:"access_token"`
	Language        string        `koanf:"language" validate:"required"`
	Region          string        `koanf:"region"`
	Timeout         time.Duration `koanf:"timeout" validate:"gt=0"`
	RateLimit       float64       `koanf:"rate_limit" validate:"gt=0"`
	Burst           int           `koanf:"burst" validate:"gte=1"`
	BreakerFailures uint32        `koanf:"breaker_failures" validate:"gte=1"`
	BreakerCooldown time.Duration `koanf:"breaker_cooldown" validate:"gt=0"`
}

type MockConfig struct {
	Delay time.Duration `koanf:"delay" validate:"gte=0"`
}

type LoggingConfig struct {
	Level  string `koanf:"level" validate:"oneof=trace debug info warn error"`
	Format string `koanf:"format" validate:"oneof=console json"`
}

func defaultConfig() *Config {
	return &Config{
		Catalog: CatalogConfig{
			Source:          catalog.SourceMock,
			BaseURL:         tmdb.DefaultBaseURL,
			Language:        tmdb.DefaultLanguage,
			Region:          tmdb.DefaultRegion,
			Timeout:         tmdb.DefaultTimeout,
			RateLimit:       tmdb.DefaultRateLimit,
			Burst:           tmdb.DefaultBurst,
			BreakerFailures: tmdb.DefaultBreakerFailures,
			BreakerCooldown: tmdb.DefaultBreakerCooldown,
		},
		Mock: MockConfig{
			Delay: mock.DefaultDelay,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Default returns the built-in configuration.
func Default() *Config {
	return defaultConfig()
}

// Load layers defaults, the YAML file at path and AMOR_* environment
// variables. An empty path falls back to DefaultConfigFile when it exists.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path == "" {
		if _, err := os.Stat(DefaultConfigFile); err == nil {
			path = DefaultConfigFile
		}
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// envTransformFunc maps AMOR_CATALOG_API_KEY to catalog.api_key. Variables
// without a section are ignored.
func envTransformFunc(key string) string {
	key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
	section, field, ok := strings.Cut(key, "_")
	if !ok || section == "" || field == "" {
		return ""
	}
	return section + "." + field
}

// Validate checks field constraints and the credentials of the tmdb source.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return err
	}
	if c.Catalog.Source == catalog.SourceTMDB && c.Catalog.APIKey == "" && c.Catalog.AccessToken == "" {
		return ErrMissingCredentials
	}
	return nil
}

// TMDBOptions returns the catalog client options.
func (c *Config) TMDBOptions() tmdb.Options {
	return tmdb.Options{
		BaseURL:         c.Catalog.BaseURL,
		APIKey:          c.Catalog.APIKey,
		AccessToken:     c.Catalog.AccessToken,
		Language:        c.Catalog.Language,
		Region:          c.Catalog.Region,
		Timeout:         c.Catalog.Timeout,
		RateLimit:       c.Catalog.RateLimit,
		Burst:           c.Catalog.Burst,
		BreakerFailures: c.Catalog.BreakerFailures,
		BreakerCooldown: c.Catalog.BreakerCooldown,
	}
}
