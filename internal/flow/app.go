package flow

import (
	"github.com/rs/zerolog/log"

	"github.com/amorporfilmes/filmes-series/internal/catalog"
	"github.com/amorporfilmes/filmes-series/internal/dispatch"
	"github.com/amorporfilmes/filmes-series/internal/model"
)

// App is the root coordinator.
type App struct {
	children

	nav      Navigator
	screens  ScreenFactory
	services catalog.Services
	session  SessionStore
	ui       dispatch.Executor
}

func NewApp(nav Navigator, screens ScreenFactory, services catalog.Services, session SessionStore, ui dispatch.Executor) *App {
	return &App{
		nav:      nav,
		screens:  screens,
		services: services,
		session:  session,
		ui:       ui,
	}
}

// Start shows the home flow for a signed-in user, sign-in otherwise.
func (a *App) Start() {
	if a.session.IsLoggedIn() {
		a.showHome()
		return
	}
	a.showAuth()
}

// DidLogIn persists the session and switches to the home flow.
func (a *App) DidLogIn(user model.User) {
	log.Info().Str("user", user.ID).Msg("user signed in")
	a.session.SetLoggedIn(true)
	a.session.SetUserEmail(user.Email)
	a.showHome()
}

// DidRequestLogout clears the session and returns to sign-in.
func (a *App) DidRequestLogout() {
	log.Info().Msg("user signed out")
	a.session.SetLoggedIn(false)
	a.session.SetUserEmail("")
	a.showAuth()
}

func (a *App) showAuth() {
	a.removeAll()
	auth := NewAuth(a.nav, a.screens, a.services.Users, a.ui, a)
	a.addChild(auth)
	auth.Start()
}

func (a *App) showHome() {
	a.removeAll()
	home := NewHome(a.nav, a.screens, a.services, a.ui, a)
	a.addChild(home)
	home.Start()
}
