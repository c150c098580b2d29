package config

import (
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/amorporfilmes/filmes-series/internal/catalog"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app, catalog.SourceTMDB)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
	if settings.defaultSource != catalog.SourceTMDB {
		t.Errorf("Expected default source %s, got %s", catalog.SourceTMDB, settings.defaultSource)
	}

	settings = NewSettings(app, "ftp")
	if settings.defaultSource != catalog.SourceMock {
		t.Errorf("Unknown default source should fall back to %s, got %s", catalog.SourceMock, settings.defaultSource)
	}
}

func TestLoggedIn(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app, catalog.SourceMock)

	// Test default value
	if settings.IsLoggedIn() {
		t.Error("Expected a fresh install to be signed out")
	}

	settings.SetLoggedIn(true)
	if !settings.IsLoggedIn() {
		t.Error("Expected signed-in flag to persist")
	}

	settings.SetLoggedIn(false)
	if settings.IsLoggedIn() {
		t.Error("Expected signed-in flag to be cleared")
	}
}

func TestUserEmail(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app, catalog.SourceMock)

	settings.SetUserEmail("ana@example.com")
	if got := settings.GetUserEmail(); got != "ana@example.com" {
		t.Errorf("Expected email ana@example.com, got %s", got)
	}

	settings.SetUserEmail("")
	if got := settings.GetUserEmail(); got != "" {
		t.Errorf("Expected email to be cleared, got %s", got)
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app, catalog.SourceMock)

	// Test default value
	lang := settings.GetLanguage()
	if lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	settings.SetLanguage("en")

	retrievedLang := settings.GetLanguage()
	if retrievedLang != "en" {
		t.Errorf("Expected language 'en', got %s", retrievedLang)
	}
}

func TestCatalogSource(t *testing.T) {
	tests := []struct {
		name     string
		set      string
		expected string
	}{
		{name: "default", set: "", expected: catalog.SourceMock},
		{name: "tmdb", set: catalog.SourceTMDB, expected: catalog.SourceTMDB},
		{name: "unknown is ignored", set: "ftp", expected: catalog.SourceMock},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			app := test.NewApp()
			settings := NewSettings(app, catalog.SourceMock)

			if tc.set != "" {
				settings.SetCatalogSource(tc.set)
			}

			if got := settings.GetCatalogSource(); got != tc.expected {
				t.Errorf("Expected source %s, got %s", tc.expected, got)
			}
		})
	}
}

func TestGetCatalogSourceOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app, catalog.SourceMock)

	options := settings.GetCatalogSourceOptions()
	expected := []string{catalog.SourceMock, catalog.SourceTMDB}

	if len(options) != len(expected) {
		t.Fatalf("Expected %d source options, got %d", len(expected), len(options))
	}
	for i := range expected {
		if options[i] != expected[i] {
			t.Errorf("Source option %d: expected %s, got %s", i, expected[i], options[i])
		}
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app, catalog.SourceMock)

	options := settings.GetLanguageOptions()

	expectedLangs := []string{"system", "en", "pt"}
	for _, lang := range expectedLangs {
		if _, exists := options[lang]; !exists {
			t.Errorf("Expected language option '%s' to exist", lang)
		}
	}

	if len(options) != len(expectedLangs) {
		t.Errorf("Expected %d language options, got %d", len(expectedLangs), len(options))
	}
}
