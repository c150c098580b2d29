package ui

// Package ui contains the Fyne user interface. Screens bind widgets to the
// view model observables, Router implements the flow navigator on top of a
// window, and MainThread is the executor view models publish through. All
// UI strings are localized via Localization.
