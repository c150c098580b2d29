package viewmodel

import (
	"github.com/amorporfilmes/filmes-series/internal/catalog"
	"github.com/amorporfilmes/filmes-series/internal/dispatch"
	"github.com/amorporfilmes/filmes-series/internal/model"
	"github.com/amorporfilmes/filmes-series/internal/observable"
)

// Poster backs the banner at the top of the home screen.
type Poster struct {
	*Aggregator

	// UpcomingPosterMovies starts empty rather than nil.
	UpcomingPosterMovies *observable.Observable[[]model.Movie]
}

func NewPoster(movies catalog.MovieService, ui dispatch.Executor) *Poster {
	p := &Poster{
		UpcomingPosterMovies: observable.New([]model.Movie{}),
	}
	p.Aggregator = NewAggregator("poster", ui,
		NewSource(model.CategoryPosterBanner, movies.FetchUpcomingMovies, p.UpcomingPosterMovies),
	)
	return p
}

func (p *Poster) FetchPosterData() {
	p.FetchAll()
}
