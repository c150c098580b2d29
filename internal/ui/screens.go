package ui

import (
	"fyne.io/fyne/v2"

	"github.com/amorporfilmes/filmes-series/internal/config"
	"github.com/amorporfilmes/filmes-series/internal/flow"
	"github.com/amorporfilmes/filmes-series/internal/model"
	"github.com/amorporfilmes/filmes-series/internal/viewmodel"
)

var _ flow.ScreenFactory = (*Screens)(nil)

// Screens builds the Fyne views for the flow coordinators
type Screens struct {
	window       fyne.Window
	localization *Localization
	settings     *config.Settings
	mobile       *MobileUI
	imageBaseURL string
}

// NewScreens creates the screen factory for window
func NewScreens(window fyne.Window, localization *Localization, settings *config.Settings) *Screens {
	return &Screens{
		window:       window,
		localization: localization,
		settings:     settings,
		mobile:       NewMobileUI(),
		imageBaseURL: model.DefaultImageBaseURL,
	}
}

func (f *Screens) Login(vm *viewmodel.Login) flow.Screen {
	return f.newLoginView(vm).screen
}

func (f *Screens) Home(home *viewmodel.Home, poster *viewmodel.Poster) flow.Screen {
	return f.newHomeView(home, poster).screen
}

func (f *Screens) Details(target model.DetailTarget, onClose func()) flow.Screen {
	return f.newDetailsView(target, onClose).screen
}

func (f *Screens) text(key string) string {
	return f.localization.GetText(key)
}

func (f *Screens) showSettings() {
	NewSettingsDialog(f.settings, f.localization, f.window, nil).Show()
}
