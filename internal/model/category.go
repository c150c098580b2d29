package model

// Category identifies one independently loaded list on a screen
type Category string

const (
	CategoryNowPlaying       Category = "now_playing"
	CategoryUpcoming         Category = "upcoming"
	CategoryFamousActors     Category = "famous_actors"
	CategoryRecentlyWatched  Category = "recently_watched"
	CategoryLastWatchedSerie Category = "last_watched_series"
	CategoryPosterBanner     Category = "poster_banner"
)

// categoryLabels are the user-facing names used in error messages
var categoryLabels = map[Category]string{
	CategoryNowPlaying:       "filmes em cartaz",
	CategoryUpcoming:         "filmes em breve",
	CategoryFamousActors:     "atores",
	CategoryRecentlyWatched:  "filmes assistidos recentemente",
	CategoryLastWatchedSerie: "últimos episódios de séries",
	CategoryPosterBanner:     "filmes para o banner",
}

// String returns the string representation of Category
func (c Category) String() string {
	return string(c)
}

// Label returns the user-facing label, or the raw identifier when unknown
func (c Category) Label() string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}
	return string(c)
}

// HomeCategories returns the categories of the home screen in display order
func HomeCategories() []Category {
	return []Category{
		CategoryNowPlaying,
		CategoryUpcoming,
		CategoryFamousActors,
		CategoryRecentlyWatched,
		CategoryLastWatchedSerie,
	}
}
