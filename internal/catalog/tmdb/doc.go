package tmdb

// Package tmdb implements the catalog ports against The Movie Database v3
// REST API. Requests are rate limited client-side and guarded by a circuit
// breaker; there is no retry.
