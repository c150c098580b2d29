package catalog

// Package catalog declares the service ports the view models depend on:
// movies, actors, series and user sign-in. Implementations live in the mock
// (fixtures) and tmdb (remote HTTP API) subpackages and are chosen when the
// app starts.
