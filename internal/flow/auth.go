package flow

import (
	"weak"

	"github.com/amorporfilmes/filmes-series/internal/catalog"
	"github.com/amorporfilmes/filmes-series/internal/dispatch"
	"github.com/amorporfilmes/filmes-series/internal/model"
	"github.com/amorporfilmes/filmes-series/internal/viewmodel"
)

// Auth runs the sign-in screen.
type Auth struct {
	nav     Navigator
	screens ScreenFactory
	login   *viewmodel.Login
	parent  weak.Pointer[App]
}

func NewAuth(nav Navigator, screens ScreenFactory, users catalog.UserService, ui dispatch.Executor, parent *App) *Auth {
	a := &Auth{
		nav:     nav,
		screens: screens,
		login:   viewmodel.NewLogin(users, ui),
		parent:  weak.Make(parent),
	}
	viewmodel.AttachAuthNavigator(a.login, a)
	return a
}

func (a *Auth) Start() {
	a.nav.SetRoot(a.screens.Login(a.login))
}

// DidLogIn forwards the signed-in user to the app flow.
func (a *Auth) DidLogIn(user model.User) {
	if parent := a.parent.Value(); parent != nil {
		parent.DidLogIn(user)
	}
}

// Login returns the view model of the sign-in screen.
func (a *Auth) Login() *viewmodel.Login {
	return a.login
}
