package ui

import (
	"strings"

	"fyne.io/fyne/v2/lang"

	"github.com/amorporfilmes/filmes-series/internal/model"
)

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeySignInTitle       = "sign_in_title"
	KeyEmail             = "email"
	KeyPassword          = "password"
	KeySignIn            = "sign_in"
	KeyLogout            = "logout"
	KeyLogoutConfirm     = "logout_confirm"
	KeySettings          = "settings"
	KeyLanguage          = "language"
	KeyCatalogSource     = "catalog_source"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeySettingsSaved     = "settings_saved"
	KeyRestartRequired   = "restart_required"
	KeyBack              = "back"
	KeyOverview          = "overview"
	KeyRating            = "rating"
	KeyReleased          = "released"
	KeyFirstAired        = "first_aired"
	KeyKnownFor          = "known_for"
	KeyPopularity        = "popularity"
	KeyOpenPoster        = "open_poster"
	KeyNothingHere       = "nothing_here"
	KeyBanner            = "banner"
	KeyNowPlaying        = "now_playing"
	KeyUpcoming          = "upcoming"
	KeyFamousActors      = "famous_actors"
	KeyRecentlyWatched   = "recently_watched"
	KeyLastWatchedSeries = "last_watched_series"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "pt",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language. "system" follows the device
// locale: English for en-*, Portuguese otherwise.
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		lang = systemLanguage()
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to Portuguese
	if text, found := l.texts["pt"][key]; found {
		return text
	}

	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"pt": "Português",
	}
}

// CategoryTitle returns the section heading for a home category
func (l *Localization) CategoryTitle(c model.Category) string {
	switch c {
	case model.CategoryNowPlaying:
		return l.GetText(KeyNowPlaying)
	case model.CategoryUpcoming:
		return l.GetText(KeyUpcoming)
	case model.CategoryFamousActors:
		return l.GetText(KeyFamousActors)
	case model.CategoryRecentlyWatched:
		return l.GetText(KeyRecentlyWatched)
	case model.CategoryLastWatchedSerie:
		return l.GetText(KeyLastWatchedSeries)
	case model.CategoryPosterBanner:
		return l.GetText(KeyBanner)
	default:
		return c.Label()
	}
}

func systemLanguage() string {
	if strings.HasPrefix(strings.ToLower(lang.SystemLocale().LanguageString()), "en") {
		return "en"
	}
	return "pt"
}

func (l *Localization) initializeTexts() {
	l.texts["pt"] = map[string]string{
		KeyAppTitle:          "Amor por Filmes & Séries",
		KeySignInTitle:       "Bem-vindo de volta",
		KeyEmail:             "E-mail",
		KeyPassword:          "Senha",
		KeySignIn:            "Entrar",
		KeyLogout:            "Sair",
		KeyLogoutConfirm:     "Deseja mesmo sair?",
		KeySettings:          "Configurações",
		KeyLanguage:          "Idioma",
		KeyCatalogSource:     "Fonte do catálogo",
		KeySave:              "Salvar",
		KeyCancel:            "Cancelar",
		KeySettingsSaved:     "Configurações salvas com sucesso!",
		KeyRestartRequired:   "A fonte do catálogo será usada na próxima abertura.",
		KeyBack:              "Voltar",
		KeyOverview:          "Sinopse",
		KeyRating:            "Nota",
		KeyReleased:          "Lançamento",
		KeyFirstAired:        "Estreia",
		KeyKnownFor:          "Conhecido por",
		KeyPopularity:        "Popularidade",
		KeyOpenPoster:        "Abrir pôster",
		KeyNothingHere:       "Nada por aqui ainda",
		KeyBanner:            "Em breve nos cinemas",
		KeyNowPlaying:        "Em cartaz",
		KeyUpcoming:          "Em breve",
		KeyFamousActors:      "Atores",
		KeyRecentlyWatched:   "Assistidos recentemente",
		KeyLastWatchedSeries: "Últimos episódios",
	}

	l.texts["en"] = map[string]string{
		KeyAppTitle:          "Love for Movies & Series",
		KeySignInTitle:       "Welcome back",
		KeyEmail:             "Email",
		KeyPassword:          "Password",
		KeySignIn:            "Sign in",
		KeyLogout:            "Sign out",
		KeyLogoutConfirm:     "Do you really want to sign out?",
		KeySettings:          "Settings",
		KeyLanguage:          "Language",
		KeyCatalogSource:     "Catalog source",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeySettingsSaved:     "Settings saved successfully!",
		KeyRestartRequired:   "The catalog source is used from the next launch.",
		KeyBack:              "Back",
		KeyOverview:          "Overview",
		KeyRating:            "Rating",
		KeyReleased:          "Released",
		KeyFirstAired:        "First aired",
		KeyKnownFor:          "Known for",
		KeyPopularity:        "Popularity",
		KeyOpenPoster:        "Open poster",
		KeyNothingHere:       "Nothing here yet",
		KeyBanner:            "Coming soon to theaters",
		KeyNowPlaying:        "Now playing",
		KeyUpcoming:          "Upcoming",
		KeyFamousActors:      "Actors",
		KeyRecentlyWatched:   "Recently watched",
		KeyLastWatchedSeries: "Latest episodes",
	}
}
