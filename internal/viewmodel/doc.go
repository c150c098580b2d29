package viewmodel

// Package viewmodel holds the screen view models. Each one fans out its
// catalog fetches concurrently, publishes every result to its own Observable
// as soon as it arrives, and clears IsLoading once the last fetch of the
// session has completed. Results and errors are published through a
// dispatch.Executor standing for the UI thread.
//
// View models report user selections to the navigation layer through
// non-owning references, so a view model never keeps a coordinator alive.
