package model

// Package model defines domain data structures used across the app: catalog
// records (movies, series, actors), fetch outcomes, the categories each
// screen loads, and the targets the details flow can open. Records are plain
// values decoded from the catalog API and are never mutated after decoding.
