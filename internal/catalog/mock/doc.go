package mock

// Package mock implements the catalog ports with embedded fixture data and a
// simulated network latency. It backs the app when no catalog API key is
// configured and during development.
