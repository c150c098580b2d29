package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/amorporfilmes/filmes-series/internal/model"
	"github.com/amorporfilmes/filmes-series/internal/observable"
	"github.com/amorporfilmes/filmes-series/internal/viewmodel"
)

type homeView struct {
	screen  *Screen
	home    *viewmodel.Home
	poster  *viewmodel.Poster
	banner  *cardRow
	rows    map[model.Category]*cardRow
	spinner *widget.ProgressBarInfinite
	status  *widget.Label
	refresh refreshGuard
}

func (f *Screens) newHomeView(home *viewmodel.Home, poster *viewmodel.Poster) *homeView {
	v := &homeView{
		screen: newScreen("home"),
		home:   home,
		poster: poster,
		banner: newCardRow(fyne.NewSize(BannerCardWidth, BannerCardHeight), f.text(KeyNothingHere)),
		rows:   make(map[model.Category]*cardRow),
	}
	for _, c := range model.HomeCategories() {
		v.rows[c] = newCardRow(fyne.NewSize(CardWidth, CardHeight), f.text(KeyNothingHere))
	}

	v.spinner = widget.NewProgressBarInfinite()
	v.spinner.Hide()
	v.status = widget.NewLabel("")
	v.status.Wrapping = fyne.TextWrapWord
	v.status.Importance = widget.DangerImportance
	v.status.Hide()

	bindCards(v.screen, poster.UpcomingPosterMovies, v.banner, func(items []model.Movie) []fyne.CanvasObject {
		return movieCards(items, home.DidSelectMovie)
	})
	bindCards(v.screen, home.NowPlayingMovies, v.rows[model.CategoryNowPlaying], func(items []model.Movie) []fyne.CanvasObject {
		return movieCards(items, home.DidSelectMovie)
	})
	bindCards(v.screen, home.UpcomingMovies, v.rows[model.CategoryUpcoming], func(items []model.Movie) []fyne.CanvasObject {
		return movieCards(items, home.DidSelectMovie)
	})
	bindCards(v.screen, home.FamousActors, v.rows[model.CategoryFamousActors], func(items []model.Actor) []fyne.CanvasObject {
		return actorCards(items, home.DidSelectActor)
	})
	bindCards(v.screen, home.RecentlyWatchedMovies, v.rows[model.CategoryRecentlyWatched], func(items []model.Movie) []fyne.CanvasObject {
		return movieCards(items, home.DidSelectMovie)
	})
	bindCards(v.screen, home.LastWatchedSeriesEpisodes, v.rows[model.CategoryLastWatchedSerie], func(items []model.Serie) []fyne.CanvasObject {
		return serieCards(items, home.DidSelectSerie)
	})

	v.screen.track(home.IsLoading.Bind(func(bool) { v.updateLoading() }))
	v.screen.track(poster.IsLoading.Bind(func(bool) { v.updateLoading() }))
	v.screen.track(home.ErrorMessage.Bind(func(string) { v.updateStatus() }))
	v.screen.track(poster.ErrorMessage.Bind(func(string) { v.updateStatus() }))
	v.updateLoading()
	v.updateStatus()

	sections := container.NewVBox(
		widget.NewLabelWithStyle(f.localization.CategoryTitle(model.CategoryPosterBanner), fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		v.banner.box,
	)
	for _, c := range model.HomeCategories() {
		sections.Add(widget.NewLabelWithStyle(f.localization.CategoryTitle(c), fyne.TextAlignLeading, fyne.TextStyle{Bold: true}))
		sections.Add(v.rows[c].box)
	}

	refreshBtn := widget.NewButtonWithIcon("", theme.ViewRefreshIcon(), v.reload)
	refreshBtn.Importance = widget.LowImportance
	settingsBtn := widget.NewButton(IconSettings, f.showSettings)
	settingsBtn.Importance = widget.LowImportance
	logoutBtn := widget.NewButton(IconLogout+" "+f.text(KeyLogout), func() {
		dialog.ShowConfirm(f.text(KeyLogout), f.text(KeyLogoutConfirm), func(ok bool) {
			if ok {
				home.DidRequestLogout()
			}
		}, f.window)
	})

	title := widget.NewLabelWithStyle(f.text(KeyAppTitle), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	header := container.NewBorder(nil, nil, nil, container.NewHBox(refreshBtn, settingsBtn, logoutBtn), title)

	body := newGestureArea(container.NewVScroll(sections), func(g GestureType) {
		if g == GestureSwipeDown {
			v.reload()
		}
	})

	v.screen.Content = container.NewBorder(container.NewVBox(header, v.spinner, v.status), nil, nil, nil, body)
	return v
}

// bindCards renders the current value once, then every new one
func bindCards[T any](s *Screen, o *observable.Observable[[]T], row *cardRow, render func([]T) []fyne.CanvasObject) {
	row.set(render(o.Value()))
	s.track(o.Bind(func(items []T) {
		row.set(render(items))
	}))
}

func (v *homeView) reload() {
	if !v.refresh.allow() {
		return
	}
	v.home.FetchHomeData()
	v.poster.FetchPosterData()
}

func (v *homeView) updateLoading() {
	if v.home.IsLoading.Value() || v.poster.IsLoading.Value() {
		v.spinner.Show()
		return
	}
	v.spinner.Hide()
}

func (v *homeView) updateStatus() {
	message := v.home.ErrorMessage.Value()
	if message == "" {
		message = v.poster.ErrorMessage.Value()
	}
	v.status.SetText(message)
	if message == "" {
		v.status.Hide()
		return
	}
	v.status.Show()
}
