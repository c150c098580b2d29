package tmdb

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog/log"
	"github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/amorporfilmes/filmes-series/internal/catalog"
	"github.com/amorporfilmes/filmes-series/internal/model"
)

// API paths
const (
	PathNowPlaying      = "/movie/now_playing"
	PathUpcoming        = "/movie/upcoming"
	PathRecentlyWatched = "/movie/popular"
	PathPopularPeople   = "/person/popular"
	PathOnTheAir        = "/tv/on_the_air"
)

// Defaults
const (
	DefaultBaseURL         = "https://api.themoviedb.org/3"
	DefaultLanguage        = "pt-BR"
	DefaultRegion          = "BR"
	DefaultTimeout         = 15 * time.Second
	DefaultRateLimit       = 20.0
	DefaultBurst           = 5
	DefaultBreakerFailures = 5
	DefaultBreakerCooldown = 30 * time.Second
	maxErrorBody           = 4 << 10
)

var (
	_ catalog.MovieService = (*Client)(nil)
	_ catalog.ActorService = (*Client)(nil)
	_ catalog.SerieService = (*Client)(nil)
)

// Options configures a Client. Zero values fall back to the defaults above.
type Options struct {
	BaseURL         string
	APIKey          string
	AccessToken     string
	Language        string
	Region          string
	Timeout         time.Duration
	RateLimit       float64
	Burst           int
	BreakerFailures uint32
	BreakerCooldown time.Duration
	HTTPClient      *http.Client
}

// Client talks to the catalog API
type Client struct {
	httpc    *http.Client
	baseURL  *url.URL
	apiKey   string
	token    string
	language string
	region   string
	limiter  *rate.Limiter
	breaker  *gobreaker.CircuitBreaker[[]byte]
}

type page[T any] struct {
	Page         int `json:"page"`
	Results      []T `json:"results"`
	TotalPages   int `json:"total_pages"`
	TotalResults int `json:"total_results"`
}

// NewClient creates a client. Either APIKey or AccessToken is required.
func NewClient(opts Options) (*Client, error) {
	if opts.APIKey == "" && opts.AccessToken == "" {
		return nil, fmt.Errorf("tmdb: api key or access token is required")
	}

	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	base, err := url.Parse(opts.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("tmdb: invalid base url %q: %w", opts.BaseURL, err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("tmdb: base url %q must be absolute", opts.BaseURL)
	}

	if opts.Language == "" {
		opts.Language = DefaultLanguage
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.RateLimit <= 0 {
		opts.RateLimit = DefaultRateLimit
	}
	if opts.Burst <= 0 {
		opts.Burst = DefaultBurst
	}
	if opts.BreakerFailures == 0 {
		opts.BreakerFailures = DefaultBreakerFailures
	}
	if opts.BreakerCooldown <= 0 {
		opts.BreakerCooldown = DefaultBreakerCooldown
	}

	httpc := opts.HTTPClient
	if httpc == nil {
		httpc = &http.Client{Timeout: opts.Timeout}
	}

	failures := opts.BreakerFailures
	breaker := gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:    "tmdb",
		Timeout: opts.BreakerCooldown,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= failures
		},
		IsSuccessful: func(err error) bool {
			return err == nil || clientError(err) || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).Msg("catalog circuit breaker state changed")
		},
	})

	return &Client{
		httpc:    httpc,
		baseURL:  base,
		apiKey:   opts.APIKey,
		token:    opts.AccessToken,
		language: opts.Language,
		region:   opts.Region,
		limiter:  rate.NewLimiter(rate.Limit(opts.RateLimit), opts.Burst),
		breaker:  breaker,
	}, nil
}

// FetchNowPlayingMovies lists movies currently in theaters
func (c *Client) FetchNowPlayingMovies(ctx context.Context) ([]model.Movie, error) {
	return fetchPage[model.Movie](ctx, c, PathNowPlaying, true)
}

// FetchUpcomingMovies lists movies about to be released
func (c *Client) FetchUpcomingMovies(ctx context.Context) ([]model.Movie, error) {
	return fetchPage[model.Movie](ctx, c, PathUpcoming, true)
}

// FetchRecentlyWatchedMovies lists popular movies. The API has no watch
// history without a user session.
func (c *Client) FetchRecentlyWatchedMovies(ctx context.Context) ([]model.Movie, error) {
	return fetchPage[model.Movie](ctx, c, PathRecentlyWatched, true)
}

// FetchFamousActors lists popular people
func (c *Client) FetchFamousActors(ctx context.Context) ([]model.Actor, error) {
	return fetchPage[model.Actor](ctx, c, PathPopularPeople, false)
}

// FetchLastWatchedSeriesEpisodes lists series with episodes airing this week
func (c *Client) FetchLastWatchedSeriesEpisodes(ctx context.Context) ([]model.Serie, error) {
	return fetchPage[model.Serie](ctx, c, PathOnTheAir, false)
}

func fetchPage[T any](ctx context.Context, c *Client, endpoint string, regional bool) ([]T, error) {
	body, err := c.get(ctx, endpoint, regional)
	if err != nil {
		return nil, err
	}

	var p page[T]
	if err := json.Unmarshal(body, &p); err != nil {
		return nil, fmt.Errorf("tmdb: decode %s: %w", endpoint, err)
	}
	if p.Results == nil {
		p.Results = []T{}
	}

	log.Debug().Str("endpoint", endpoint).Int("items", len(p.Results)).Int("page", p.Page).Msg("catalog page fetched")
	return p.Results, nil
}

func (c *Client) get(ctx context.Context, endpoint string, regional bool) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("tmdb: rate limit wait: %w", err)
	}

	return c.breaker.Execute(func() ([]byte, error) {
		return c.do(ctx, endpoint, regional)
	})
}

func (c *Client) do(ctx context.Context, endpoint string, regional bool) ([]byte, error) {
	u := *c.baseURL
	u.Path = path.Join(u.Path, endpoint)

	q := url.Values{}
	if c.apiKey != "" {
		q.Set("api_key", c.apiKey)
	}
	q.Set("language", c.language)
	q.Set("page", "1")
	if regional && c.region != "" {
		q.Set("region", c.region)
	}
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("tmdb: new request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tmdb: %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{HTTPStatus: resp.StatusCode}
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		if len(raw) > 0 {
			_ = json.Unmarshal(raw, apiErr)
		}
		log.Debug().Str("endpoint", endpoint).Int("status", resp.StatusCode).Msg("catalog request failed")
		return nil, apiErr
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("tmdb: read %s: %w", endpoint, err)
	}
	return body, nil
}
