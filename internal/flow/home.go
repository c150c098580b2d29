package flow

import (
	"weak"

	"github.com/rs/zerolog/log"

	"github.com/amorporfilmes/filmes-series/internal/catalog"
	"github.com/amorporfilmes/filmes-series/internal/dispatch"
	"github.com/amorporfilmes/filmes-series/internal/model"
	"github.com/amorporfilmes/filmes-series/internal/viewmodel"
)

// Home runs the home screen and opens details for selected items.
type Home struct {
	children

	nav     Navigator
	screens ScreenFactory
	home    *viewmodel.Home
	poster  *viewmodel.Poster
	parent  weak.Pointer[App]
}

func NewHome(nav Navigator, screens ScreenFactory, services catalog.Services, ui dispatch.Executor, parent *App) *Home {
	h := &Home{
		nav:     nav,
		screens: screens,
		home:    viewmodel.NewHomeFromServices(services, ui),
		poster:  viewmodel.NewPoster(services.Movies, ui),
		parent:  weak.Make(parent),
	}
	viewmodel.AttachHomeNavigator(h.home, h)
	return h
}

// Start shows the home screen and loads its data.
func (h *Home) Start() {
	h.nav.SetRoot(h.screens.Home(h.home, h.poster))
	h.home.FetchHomeData()
	h.poster.FetchPosterData()
}

func (h *Home) ShowMovieDetails(movie model.Movie) {
	h.showDetails(model.MovieDetail(movie))
}

func (h *Home) ShowSerieDetails(serie model.Serie) {
	h.showDetails(model.SerieDetail(serie))
}

func (h *Home) ShowActorDetails(actor model.Actor) {
	h.showDetails(model.ActorDetail(actor))
}

// RequestLogout hands the logout to the app flow.
func (h *Home) RequestLogout() {
	if parent := h.parent.Value(); parent != nil {
		parent.DidRequestLogout()
	}
}

func (h *Home) showDetails(target model.DetailTarget) {
	log.Debug().Stringer("target", target).Msg("opening details")
	details := NewDetails(h.nav, h.screens, target, h)
	h.addChild(details)
	details.Start()
}

func (h *Home) ViewModels() (*viewmodel.Home, *viewmodel.Poster) {
	return h.home, h.poster
}
