package flow

import (
	"weak"

	"github.com/amorporfilmes/filmes-series/internal/model"
)

// Details shows one movie, series or actor on top of the home screen.
type Details struct {
	nav     Navigator
	screens ScreenFactory
	target  model.DetailTarget
	parent  weak.Pointer[Home]
	done    bool
}

func NewDetails(nav Navigator, screens ScreenFactory, target model.DetailTarget, parent *Home) *Details {
	return &Details{
		nav:     nav,
		screens: screens,
		target:  target,
		parent:  weak.Make(parent),
	}
}

func (d *Details) Start() {
	d.nav.Push(d.screens.Details(d.target, d.Finish))
}

// Finish pops the details screen and detaches from the parent. Further
// calls do nothing.
func (d *Details) Finish() {
	if d.done {
		return
	}
	d.done = true
	d.nav.Pop()
	if parent := d.parent.Value(); parent != nil {
		parent.childDidFinish(d)
	}
}

func (d *Details) Target() model.DetailTarget {
	return d.target
}
