package dispatch

// Package dispatch defines the UI execution context that view models publish
// through. Every Observable write visible to bindings goes through an
// Executor so that concurrent fetch completions are serialised onto one
// logical thread.
