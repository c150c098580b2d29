package main

import (
	"fmt"
	"runtime"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/rs/zerolog/log"

	"github.com/amorporfilmes/filmes-series/internal/catalog"
	"github.com/amorporfilmes/filmes-series/internal/config"
	"github.com/amorporfilmes/filmes-series/internal/flow"
	"github.com/amorporfilmes/filmes-series/internal/logging"
	"github.com/amorporfilmes/filmes-series/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID = "br.com.amorporfilmes.series"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		logging.Init(logging.Config{})
		log.Error().Err(err).Msg("invalid configuration, using defaults")
		cfg = config.Default()
	} else {
		logging.Init(logging.Config{Level: cfg.Logging.Level, Format: cfg.Logging.Format})
	}
	log.Info().Str("version", version).Msg("Amor por Filmes & Séries starting")

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewCinemaTheme())

	settings := config.NewSettings(myApp, cfg.Catalog.Source)
	localization := ui.NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	window := myApp.NewWindow(fmt.Sprintf("%s v%s", localization.GetText(ui.KeyAppTitle), version))
	window.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))
	if logo, err := ui.LoadLogoResource(); err == nil {
		window.SetIcon(logo)
	}

	source := settings.GetCatalogSource()
	services, err := config.BuildServices(cfg, source)
	if err != nil {
		log.Warn().Err(err).Str("source", source).Msg("catalog unavailable, falling back to mock")
		services, _ = config.BuildServices(cfg, catalog.SourceMock)
	}

	coordinator := flow.NewApp(
		ui.NewRouter(window),
		ui.NewScreens(window, localization, settings),
		services,
		settings,
		ui.MainThread{},
	)
	coordinator.Start()

	window.ShowAndRun()

	// child flows only hold weak references to the root coordinator
	runtime.KeepAlive(coordinator)
}
