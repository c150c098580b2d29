package viewmodel

import (
	"context"
	"strings"

	"github.com/amorporfilmes/filmes-series/internal/catalog"
	"github.com/amorporfilmes/filmes-series/internal/dispatch"
	"github.com/amorporfilmes/filmes-series/internal/model"
	"github.com/amorporfilmes/filmes-series/internal/observable"
)

const (
	// MissingCredentialsMessage is shown when email or password is blank.
	MissingCredentialsMessage = "Informe e-mail e senha"

	signInLabel = "login"
)

// Login backs the sign-in screen.
type Login struct {
	*Aggregator

	// User is nil until a sign-in succeeds.
	User *observable.Observable[*model.User]

	users     catalog.UserService
	navigator navRef[AuthNavigator]
}

func NewLogin(users catalog.UserService, ui dispatch.Executor) *Login {
	return &Login{
		Aggregator: NewAggregator("login", ui),
		User:       observable.New[*model.User](nil),
		users:      users,
	}
}

// SignIn authenticates in the background. Blank fields are rejected without
// a request.
func (l *Login) SignIn(email, password string) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		l.ErrorMessage.Set(MissingCredentialsMessage)
		return
	}

	l.start(&callSource{
		label: signInLabel,
		run: func(ctx context.Context) (func(), error) {
			user, err := l.users.SignIn(ctx, email, password)
			if err != nil {
				return nil, err
			}
			return func() {
				l.User.Set(&user)
				if nav, ok := l.navigator.get(); ok {
					nav.DidLogIn(user)
				}
			}, nil
		},
		message: func(err error) string {
			return "Erro ao entrar: " + err.Error()
		},
	})
}

func (l *Login) DetachNavigator() {
	l.navigator.clear()
}
