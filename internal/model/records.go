package model

import (
	"strings"
)

// Image sizes understood by the catalog image CDN
const (
	PosterSizeSmall  = "w185"
	PosterSizeMedium = "w342"
	PosterSizeLarge  = "w780"
	ProfileSize      = "w185"
)

// DefaultImageBaseURL is the public CDN prefix for poster and profile paths.
const DefaultImageBaseURL = "https://image.tmdb.org/t/p"

// Movie is a catalog movie record
type Movie struct {
	Adult            bool    `json:"adult"`
	BackdropPath     string  `json:"backdrop_path"`
	GenreIDs         []int   `json:"genre_ids"`
	ID               int     `json:"id"`
	OriginalLanguage string  `json:"original_language"`
	OriginalTitle    string  `json:"original_title"`
	Overview         string  `json:"overview"`
	Popularity       float64 `json:"popularity"`
	PosterPath       string  `json:"poster_path"`
	ReleaseDate      string  `json:"release_date"`
	Title            string  `json:"title"`
	Video            bool    `json:"video"`
	VoteAverage      float64 `json:"vote_average"`
	VoteCount        int     `json:"vote_count"`
}

// Serie is a catalog TV series record
type Serie struct {
	Adult            bool     `json:"adult"`
	BackdropPath     string   `json:"backdrop_path"`
	GenreIDs         []int    `json:"genre_ids"`
	ID               int      `json:"id"`
	OriginCountry    []string `json:"origin_country"`
	OriginalLanguage string   `json:"original_language"`
	OriginalName     string   `json:"original_name"`
	Overview         string   `json:"overview"`
	Popularity       float64  `json:"popularity"`
	PosterPath       string   `json:"poster_path"`
	FirstAirDate     string   `json:"first_air_date"`
	Name             string   `json:"name"`
	VoteAverage      float64  `json:"vote_average"`
	VoteCount        int      `json:"vote_count"`
}

// Actor is a catalog person record
type Actor struct {
	ID                 int     `json:"id"`
	Name               string  `json:"name"`
	OriginalName       string  `json:"original_name,omitempty"`
	ProfilePath        string  `json:"profile_path"`
	KnownForDepartment string  `json:"known_for_department"`
	Popularity         float64 `json:"popularity"`
	Gender             int     `json:"gender"`
}

// User is the signed-in account
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// GetDisplayTitle returns the localized title, falling back to the original one
func (m Movie) GetDisplayTitle() string {
	if strings.TrimSpace(m.Title) != "" {
		return m.Title
	}
	return m.OriginalTitle
}

// GetReleaseYear returns the year part of ReleaseDate, or "" when unknown
func (m Movie) GetReleaseYear() string {
	return yearOf(m.ReleaseDate)
}

// GetPosterURL returns the full poster URL for the given size, or "" when the
// movie has no poster
func (m Movie) GetPosterURL(baseURL, size string) string {
	return imageURL(baseURL, size, m.PosterPath)
}

// GetDisplayTitle returns the localized name, falling back to the original one
func (s Serie) GetDisplayTitle() string {
	if strings.TrimSpace(s.Name) != "" {
		return s.Name
	}
	return s.OriginalName
}

// GetFirstAirYear returns the year part of FirstAirDate, or "" when unknown
func (s Serie) GetFirstAirYear() string {
	return yearOf(s.FirstAirDate)
}

// GetPosterURL returns the full poster URL for the given size
func (s Serie) GetPosterURL(baseURL, size string) string {
	return imageURL(baseURL, size, s.PosterPath)
}

// GetDisplayTitle returns the actor name
func (a Actor) GetDisplayTitle() string {
	if strings.TrimSpace(a.Name) != "" {
		return a.Name
	}
	return a.OriginalName
}

// GetProfileURL returns the full profile picture URL
func (a Actor) GetProfileURL(baseURL string) string {
	return imageURL(baseURL, ProfileSize, a.ProfilePath)
}

func yearOf(date string) string {
	if len(date) < 4 {
		return ""
	}
	return date[:4]
}

func imageURL(baseURL, size, path string) string {
	if path == "" {
		return ""
	}
	if baseURL == "" {
		baseURL = DefaultImageBaseURL
	}
	return strings.TrimRight(baseURL, "/") + "/" + size + "/" + strings.TrimLeft(path, "/")
}
