package observable

// Package observable provides Observable, a value cell with change
// notification used to bind view-model state to the UI. Subscribers are
// called synchronously on the goroutine that sets the value.
