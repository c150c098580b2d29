package viewmodel

import (
	"sync/atomic"
	"weak"

	"github.com/amorporfilmes/filmes-series/internal/model"
)

// HomeNavigator receives the selections made on the home screen.
type HomeNavigator interface {
	ShowMovieDetails(movie model.Movie)
	ShowSerieDetails(serie model.Serie)
	ShowActorDetails(actor model.Actor)
	RequestLogout()
}

// AuthNavigator is told when the user has signed in.
type AuthNavigator interface {
	DidLogIn(user model.User)
}

// navRef is a non-owning reference to a navigator. It resolves to false once
// the navigator has been detached or garbage collected.
type navRef[I any] struct {
	resolve atomic.Pointer[func() (I, bool)]
}

// weakResolver builds a resolver over p that does not keep *T reachable.
func weakResolver[I any, T any](p *T, as func(*T) I) func() (I, bool) {
	w := weak.Make(p)
	return func() (I, bool) {
		if target := w.Value(); target != nil {
			return as(target), true
		}
		var zero I
		return zero, false
	}
}

func (r *navRef[I]) set(resolve func() (I, bool)) {
	r.resolve.Store(&resolve)
}

func (r *navRef[I]) clear() {
	r.resolve.Store(nil)
}

func (r *navRef[I]) get() (I, bool) {
	if resolve := r.resolve.Load(); resolve != nil {
		return (*resolve)()
	}
	var zero I
	return zero, false
}

// AttachHomeNavigator makes nav the receiver of h's selections without
// keeping nav alive.
func AttachHomeNavigator[T any, PT interface {
	*T
	HomeNavigator
}](h *Home, nav PT) {
	if (*T)(nav) == nil {
		h.navigator.clear()
		return
	}
	h.navigator.set(weakResolver((*T)(nav), func(p *T) HomeNavigator { return PT(p) }))
}

// AttachAuthNavigator makes nav the receiver of l's sign-in result without
// keeping nav alive.
func AttachAuthNavigator[T any, PT interface {
	*T
	AuthNavigator
}](l *Login, nav PT) {
	if (*T)(nav) == nil {
		l.navigator.clear()
		return
	}
	l.navigator.set(weakResolver((*T)(nav), func(p *T) AuthNavigator { return PT(p) }))
}
