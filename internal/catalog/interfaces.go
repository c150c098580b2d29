package catalog

import (
	"context"
	"fmt"

	"github.com/amorporfilmes/filmes-series/internal/model"
)

// MovieService fetches movie lists from the catalog.
type MovieService interface {
	FetchNowPlayingMovies(ctx context.Context) ([]model.Movie, error)
	FetchUpcomingMovies(ctx context.Context) ([]model.Movie, error)
	FetchRecentlyWatchedMovies(ctx context.Context) ([]model.Movie, error)
}

// ActorService fetches people from the catalog.
type ActorService interface {
	FetchFamousActors(ctx context.Context) ([]model.Actor, error)
}

// SerieService fetches TV series from the catalog.
type SerieService interface {
	FetchLastWatchedSeriesEpisodes(ctx context.Context) ([]model.Serie, error)
}

// UserService authenticates the user.
type UserService interface {
	SignIn(ctx context.Context, email, password string) (model.User, error)
}

// Services bundles one implementation of every port.
type Services struct {
	Movies MovieService
	Actors ActorService
	Series SerieService
	Users  UserService
}

// Validate checks that every port is set.
func (s Services) Validate() error {
	switch {
	case s.Movies == nil:
		return fmt.Errorf("catalog: movie service is not set")
	case s.Actors == nil:
		return fmt.Errorf("catalog: actor service is not set")
	case s.Series == nil:
		return fmt.Errorf("catalog: serie service is not set")
	case s.Users == nil:
		return fmt.Errorf("catalog: user service is not set")
	}
	return nil
}

// Source names accepted by the app configuration
const (
	SourceMock = "mock"
	SourceTMDB = "tmdb"
)
