package ui

import (
	"fyne.io/fyne/v2"

	"github.com/amorporfilmes/filmes-series/internal/dispatch"
)

var _ dispatch.Executor = MainThread{}

// MainThread runs tasks on the Fyne main goroutine
type MainThread struct{}

func (MainThread) Do(fn func()) {
	fyne.Do(fn)
}
