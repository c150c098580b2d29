package mock

import (
	"embed"
	"fmt"

	"github.com/goccy/go-json"

	"github.com/amorporfilmes/filmes-series/internal/model"
)

// Fixture files
const (
	FixtureMovies = "fixtures/movies_popular.json"
	FixtureActors = "fixtures/person_popular.json"
	FixtureSeries = "fixtures/tv_on_the_air.json"
)

//go:embed fixtures/*.json
var fixtures embed.FS

type page[T any] struct {
	Page    int `json:"page"`
	Results []T `json:"results"`
}

// LoadMovies decodes the bundled movie fixture
func LoadMovies() ([]model.Movie, error) {
	return load[model.Movie](FixtureMovies)
}

// LoadActors decodes the bundled actor fixture
func LoadActors() ([]model.Actor, error) {
	return load[model.Actor](FixtureActors)
}

// LoadSeries decodes the bundled series fixture
func LoadSeries() ([]model.Serie, error) {
	return load[model.Serie](FixtureSeries)
}

func load[T any](name string) ([]T, error) {
	raw, err := fixtures.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("read fixture %s: %w", name, err)
	}

	var p page[T]
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("decode fixture %s: %w", name, err)
	}
	if p.Results == nil {
		p.Results = []T{}
	}
	return p.Results, nil
}
