package model

import "fmt"

// DetailKind says which record a DetailTarget carries
type DetailKind string

const (
	DetailMovie DetailKind = "movie"
	DetailSerie DetailKind = "serie"
	DetailActor DetailKind = "actor"
)

// DetailTarget is what the details flow opens. Exactly one of Movie, Serie
// or Actor is set, matching Kind.
type DetailTarget struct {
	Kind  DetailKind
	Movie *Movie
	Serie *Serie
	Actor *Actor
}

// MovieDetail creates a movie target
func MovieDetail(m Movie) DetailTarget {
	return DetailTarget{Kind: DetailMovie, Movie: &m}
}

// SerieDetail creates a series target
func SerieDetail(s Serie) DetailTarget {
	return DetailTarget{Kind: DetailSerie, Serie: &s}
}

// ActorDetail creates an actor target
func ActorDetail(a Actor) DetailTarget {
	return DetailTarget{Kind: DetailActor, Actor: &a}
}

// ID returns the record id of the target
func (d DetailTarget) ID() int {
	switch d.Kind {
	case DetailMovie:
		return d.Movie.ID
	case DetailSerie:
		return d.Serie.ID
	case DetailActor:
		return d.Actor.ID
	default:
		return 0
	}
}

// Title returns the display title of the target
func (d DetailTarget) Title() string {
	switch d.Kind {
	case DetailMovie:
		return d.Movie.GetDisplayTitle()
	case DetailSerie:
		return d.Serie.GetDisplayTitle()
	case DetailActor:
		return d.Actor.GetDisplayTitle()
	default:
		return ""
	}
}

// String returns kind and id, e.g. "movie#550"
func (d DetailTarget) String() string {
	return fmt.Sprintf("%s#%d", d.Kind, d.ID())
}
