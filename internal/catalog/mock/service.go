package mock

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/amorporfilmes/filmes-series/internal/catalog"
	"github.com/amorporfilmes/filmes-series/internal/model"
)

// DefaultDelay mirrors the latency of a mobile network round trip
const DefaultDelay = 1100 * time.Millisecond

// MinPasswordLength is the shortest password the mock accepts
const MinPasswordLength = 6

// ErrInvalidCredentials is returned by SignIn for a malformed email or a
// short password.
var ErrInvalidCredentials = errors.New("e-mail ou senha inválidos")

var (
	_ catalog.MovieService = (*Service)(nil)
	_ catalog.ActorService = (*Service)(nil)
	_ catalog.SerieService = (*Service)(nil)
	_ catalog.UserService  = (*Service)(nil)
)

// Service serves fixture data for every catalog port
type Service struct {
	delay time.Duration
}

// NewService creates a mock service answering after delay. A negative delay
// is treated as zero.
func NewService(delay time.Duration) *Service {
	if delay < 0 {
		delay = 0
	}
	return &Service{delay: delay}
}

// Services returns a bundle where every port is served by s
func (s *Service) Services() catalog.Services {
	return catalog.Services{Movies: s, Actors: s, Series: s, Users: s}
}

// FetchNowPlayingMovies returns the movie fixture
func (s *Service) FetchNowPlayingMovies(ctx context.Context) ([]model.Movie, error) {
	return fetch(ctx, s, "now_playing", LoadMovies)
}

// FetchUpcomingMovies returns the movie fixture
func (s *Service) FetchUpcomingMovies(ctx context.Context) ([]model.Movie, error) {
	return fetch(ctx, s, "upcoming", LoadMovies)
}

// FetchRecentlyWatchedMovies returns the movie fixture
func (s *Service) FetchRecentlyWatchedMovies(ctx context.Context) ([]model.Movie, error) {
	return fetch(ctx, s, "recently_watched", LoadMovies)
}

// FetchFamousActors returns the actor fixture
func (s *Service) FetchFamousActors(ctx context.Context) ([]model.Actor, error) {
	return fetch(ctx, s, "famous_actors", LoadActors)
}

// FetchLastWatchedSeriesEpisodes returns the series fixture
func (s *Service) FetchLastWatchedSeriesEpisodes(ctx context.Context) ([]model.Serie, error) {
	return fetch(ctx, s, "last_watched_series", LoadSeries)
}

// SignIn accepts any well-formed email with a long enough password
func (s *Service) SignIn(ctx context.Context, email, password string) (model.User, error) {
	if err := s.wait(ctx); err != nil {
		return model.User{}, err
	}

	email = strings.TrimSpace(email)
	at := strings.Index(email, "@")
	if at < 1 || at == len(email)-1 || len(password) < MinPasswordLength {
		return model.User{}, ErrInvalidCredentials
	}

	return model.User{
		ID:    uuid.NewString(),
		Email: email,
		Name:  email[:at],
	}, nil
}

func fetch[T any](ctx context.Context, s *Service, name string, load func() ([]T, error)) ([]T, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}

	items, err := load()
	if err != nil {
		return nil, err
	}

	log.Debug().Str("endpoint", name).Int("items", len(items)).Msg("mock catalog answered")
	return items, nil
}

func (s *Service) wait(ctx context.Context) error {
	if s.delay == 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(s.delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
