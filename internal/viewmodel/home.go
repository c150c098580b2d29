package viewmodel

import (
	"github.com/amorporfilmes/filmes-series/internal/catalog"
	"github.com/amorporfilmes/filmes-series/internal/dispatch"
	"github.com/amorporfilmes/filmes-series/internal/model"
	"github.com/amorporfilmes/filmes-series/internal/observable"
)

// Home backs the home screen. Category observables stay nil until their
// first successful fetch.
type Home struct {
	*Aggregator

	NowPlayingMovies          *observable.Observable[[]model.Movie]
	UpcomingMovies            *observable.Observable[[]model.Movie]
	FamousActors              *observable.Observable[[]model.Actor]
	RecentlyWatchedMovies     *observable.Observable[[]model.Movie]
	LastWatchedSeriesEpisodes *observable.Observable[[]model.Serie]

	navigator navRef[HomeNavigator]
}

// NewHome wires the home categories to their catalog ports.
func NewHome(movies catalog.MovieService, actors catalog.ActorService, series catalog.SerieService, ui dispatch.Executor) *Home {
	h := &Home{
		NowPlayingMovies:          observable.New[[]model.Movie](nil),
		UpcomingMovies:            observable.New[[]model.Movie](nil),
		FamousActors:              observable.New[[]model.Actor](nil),
		RecentlyWatchedMovies:     observable.New[[]model.Movie](nil),
		LastWatchedSeriesEpisodes: observable.New[[]model.Serie](nil),
	}

	h.Aggregator = NewAggregator("home", ui,
		NewSource(model.CategoryNowPlaying, movies.FetchNowPlayingMovies, h.NowPlayingMovies),
		NewSource(model.CategoryUpcoming, movies.FetchUpcomingMovies, h.UpcomingMovies),
		NewSource(model.CategoryFamousActors, actors.FetchFamousActors, h.FamousActors),
		NewSource(model.CategoryRecentlyWatched, movies.FetchRecentlyWatchedMovies, h.RecentlyWatchedMovies),
		NewSource(model.CategoryLastWatchedSerie, series.FetchLastWatchedSeriesEpisodes, h.LastWatchedSeriesEpisodes),
	)
	return h
}

// NewHomeFromServices is NewHome over a service bundle.
func NewHomeFromServices(services catalog.Services, ui dispatch.Executor) *Home {
	return NewHome(services.Movies, services.Actors, services.Series, ui)
}

// FetchHomeData loads every home category.
func (h *Home) FetchHomeData() {
	h.FetchAll()
}

// DetachNavigator stops forwarding selections.
func (h *Home) DetachNavigator() {
	h.navigator.clear()
}

// HasNavigator reports whether a live navigator is attached.
func (h *Home) HasNavigator() bool {
	_, ok := h.navigator.get()
	return ok
}

func (h *Home) DidSelectMovie(movie model.Movie) {
	if nav, ok := h.navigator.get(); ok {
		nav.ShowMovieDetails(movie)
	}
}

func (h *Home) DidSelectSerie(serie model.Serie) {
	if nav, ok := h.navigator.get(); ok {
		nav.ShowSerieDetails(serie)
	}
}

func (h *Home) DidSelectActor(actor model.Actor) {
	if nav, ok := h.navigator.get(); ok {
		nav.ShowActorDetails(actor)
	}
}

func (h *Home) DidRequestLogout() {
	if nav, ok := h.navigator.get(); ok {
		nav.RequestLogout()
	}
}
