package config

import (
	"fyne.io/fyne/v2"

	"github.com/amorporfilmes/filmes-series/internal/catalog"
)

// Settings keys for Fyne preferences
const (
	KeyLoggedIn      = "is_logged_in"
	KeyLanguage      = "app_language"
	KeyCatalogSource = "catalog_source"
	KeyUserEmail     = "user_email"
)

// Default values
const (
	DefaultLanguage = "system"
)

// Settings manages the user preferences stored by Fyne
type Settings struct {
	app           fyne.App
	defaultSource string
}

// NewSettings creates a new settings manager. defaultSource is used until
// the user picks a catalog source.
func NewSettings(app fyne.App, defaultSource string) *Settings {
	if !validSource(defaultSource) {
		defaultSource = catalog.SourceMock
	}
	return &Settings{app: app, defaultSource: defaultSource}
}

// IsLoggedIn returns whether a user signed in on a previous launch
func (s *Settings) IsLoggedIn() bool {
	return s.app.Preferences().BoolWithFallback(KeyLoggedIn, false)
}

// SetLoggedIn persists the signed-in flag
func (s *Settings) SetLoggedIn(loggedIn bool) {
	s.app.Preferences().SetBool(KeyLoggedIn, loggedIn)
}

// GetUserEmail returns the email of the signed-in user
func (s *Settings) GetUserEmail() string {
	return s.app.Preferences().String(KeyUserEmail)
}

// SetUserEmail persists the email of the signed-in user; "" clears it
func (s *Settings) SetUserEmail(email string) {
	if email == "" {
		s.app.Preferences().RemoveValue(KeyUserEmail)
		return
	}
	s.app.Preferences().SetString(KeyUserEmail, email)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetCatalogSource returns the catalog backend the app talks to
func (s *Settings) GetCatalogSource() string {
	source := s.app.Preferences().String(KeyCatalogSource)
	if !validSource(source) {
		return s.defaultSource
	}
	return source
}

// SetCatalogSource sets the catalog backend. Unknown names are ignored.
func (s *Settings) SetCatalogSource(source string) {
	if !validSource(source) {
		return
	}
	s.app.Preferences().SetString(KeyCatalogSource, source)
}

// GetCatalogSourceOptions returns available catalog sources
func (s *Settings) GetCatalogSourceOptions() []string {
	return []string{catalog.SourceMock, catalog.SourceTMDB}
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"pt":     "Português",
	}
}

func validSource(source string) bool {
	return source == catalog.SourceMock || source == catalog.SourceTMDB
}
