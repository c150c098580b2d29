package ui

import (
	"fyne.io/fyne/v2"

	"github.com/amorporfilmes/filmes-series/internal/observable"
)

// Screen is a view plus the observable bindings feeding it
type Screen struct {
	Name    string
	Content fyne.CanvasObject

	bindings []*observable.Binding
}

func newScreen(name string) *Screen {
	return &Screen{Name: name}
}

func (s *Screen) track(b *observable.Binding) {
	s.bindings = append(s.bindings, b)
}

// Dispose releases the bindings so the view models stop updating the view
func (s *Screen) Dispose() {
	for _, b := range s.bindings {
		b.Unbind()
	}
	s.bindings = nil
}
