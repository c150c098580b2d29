package config

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/amorporfilmes/filmes-series/internal/catalog"
	"github.com/amorporfilmes/filmes-series/internal/catalog/mock"
	"github.com/amorporfilmes/filmes-series/internal/catalog/tmdb"
)

// BuildServices returns the catalog ports for source. The catalog API has
// no sign-in endpoint, so the tmdb source signs in through the mock.
func BuildServices(cfg *Config, source string) (catalog.Services, error) {
	fixtures := mock.NewService(cfg.Mock.Delay)

	switch source {
	case catalog.SourceMock:
		log.Debug().Dur("delay", cfg.Mock.Delay).Msg("using mock catalog")
		return fixtures.Services(), nil
	case catalog.SourceTMDB:
		if cfg.Catalog.APIKey == "" && cfg.Catalog.AccessToken == "" {
			return catalog.Services{}, ErrMissingCredentials
		}
		client, err := tmdb.NewClient(cfg.TMDBOptions())
		if err != nil {
			return catalog.Services{}, fmt.Errorf("failed to create catalog client: %w", err)
		}
		log.Debug().Str("base_url", cfg.Catalog.BaseURL).Msg("using tmdb catalog")
		return catalog.Services{
			Movies: client,
			Actors: client,
			Series: client,
			Users:  fixtures,
		}, nil
	default:
		return catalog.Services{}, fmt.Errorf("unknown catalog source %q", source)
	}
}
