package flow

import (
	"github.com/amorporfilmes/filmes-series/internal/model"
	"github.com/amorporfilmes/filmes-series/internal/viewmodel"
)

// Screen is an opaque view produced by a ScreenFactory.
type Screen any

// Navigator is a stack of screens.
type Navigator interface {
	SetRoot(screen Screen)
	Push(screen Screen)
	Pop()
}

// ScreenFactory builds the views bound to view models.
type ScreenFactory interface {
	Login(vm *viewmodel.Login) Screen
	Home(home *viewmodel.Home, poster *viewmodel.Poster) Screen
	Details(target model.DetailTarget, onClose func()) Screen
}

// SessionStore persists the signed-in state between launches.
type SessionStore interface {
	IsLoggedIn() bool
	SetLoggedIn(loggedIn bool)
	SetUserEmail(email string)
}

// Coordinator owns one navigation flow.
type Coordinator interface {
	Start()
}

// children is the child bookkeeping shared by coordinators.
type children struct {
	list []Coordinator
}

func (c *children) addChild(child Coordinator) {
	c.list = append(c.list, child)
}

func (c *children) childDidFinish(child Coordinator) {
	for i, existing := range c.list {
		if existing == child {
			c.list = append(c.list[:i], c.list[i+1:]...)
			return
		}
	}
}

func (c *children) removeAll() {
	c.list = nil
}

// Children returns the number of running child flows.
func (c *children) Children() int {
	return len(c.list)
}
