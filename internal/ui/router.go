package ui

import (
	"fyne.io/fyne/v2"
	"github.com/rs/zerolog/log"

	"github.com/amorporfilmes/filmes-series/internal/flow"
)

var _ flow.Navigator = (*Router)(nil)

// contentSetter is the part of fyne.Window the router needs
type contentSetter interface {
	SetContent(content fyne.CanvasObject)
}

// Router keeps a stack of screens and shows the top one in the window
type Router struct {
	window contentSetter
	stack  []*Screen
}

// NewRouter creates a router drawing into window
func NewRouter(window contentSetter) *Router {
	return &Router{window: window}
}

// SetRoot disposes the whole stack and shows s alone
func (r *Router) SetRoot(s flow.Screen) {
	screen, ok := asScreen(s)
	if !ok {
		return
	}
	for _, old := range r.stack {
		old.Dispose()
	}
	r.stack = []*Screen{screen}
	r.show()
}

// Push shows s on top of the current screen
func (r *Router) Push(s flow.Screen) {
	screen, ok := asScreen(s)
	if !ok {
		return
	}
	r.stack = append(r.stack, screen)
	r.show()
}

// Pop removes the top screen. The root screen is never popped.
func (r *Router) Pop() {
	if len(r.stack) <= 1 {
		return
	}
	top := r.stack[len(r.stack)-1]
	r.stack = r.stack[:len(r.stack)-1]
	top.Dispose()
	r.show()
}

// Depth returns the number of stacked screens
func (r *Router) Depth() int {
	return len(r.stack)
}

// Top returns the visible screen, nil when empty
func (r *Router) Top() *Screen {
	if len(r.stack) == 0 {
		return nil
	}
	return r.stack[len(r.stack)-1]
}

func (r *Router) show() {
	r.window.SetContent(r.Top().Content)
}

func asScreen(s flow.Screen) (*Screen, bool) {
	switch v := s.(type) {
	case *Screen:
		return v, true
	case fyne.CanvasObject:
		return &Screen{Content: v}, true
	default:
		log.Error().Type("screen", s).Msg("router received a value that is not a screen")
		return nil, false
	}
}
