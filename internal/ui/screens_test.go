package ui

import (
	"runtime"
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/amorporfilmes/filmes-series/internal/catalog"
	"github.com/amorporfilmes/filmes-series/internal/catalog/mock"
	"github.com/amorporfilmes/filmes-series/internal/config"
	"github.com/amorporfilmes/filmes-series/internal/dispatch"
	"github.com/amorporfilmes/filmes-series/internal/model"
	"github.com/amorporfilmes/filmes-series/internal/viewmodel"
)

func newTestScreens(t *testing.T) *Screens {
	t.Helper()
	app := test.NewApp()
	window := app.NewWindow("test")
	t.Cleanup(window.Close)
	settings := config.NewSettings(app, catalog.SourceMock)
	return NewScreens(window, NewLocalization(), settings)
}

type selectionRecorder struct {
	movies []model.Movie
	series []model.Serie
	actors []model.Actor
	logout int
}

func (r *selectionRecorder) ShowMovieDetails(m model.Movie) { r.movies = append(r.movies, m) }
func (r *selectionRecorder) ShowSerieDetails(s model.Serie) { r.series = append(r.series, s) }
func (r *selectionRecorder) ShowActorDetails(a model.Actor) { r.actors = append(r.actors, a) }
func (r *selectionRecorder) RequestLogout()                 { r.logout++ }

func TestLoginView_BindsViewModel(t *testing.T) {
	f := newTestScreens(t)
	vm := viewmodel.NewLogin(mock.NewService(0), dispatch.Immediate{})
	v := f.newLoginView(vm)

	if v.status.Visible() {
		t.Error("Expected error label hidden initially")
	}

	test.Tap(v.signIn)
	if v.status.Text != viewmodel.MissingCredentialsMessage || !v.status.Visible() {
		t.Errorf("Expected missing credentials message, got %q", v.status.Text)
	}

	vm.IsLoading.Set(true)
	if !v.signIn.Disabled() || !v.spinner.Visible() {
		t.Error("Expected sign-in disabled with spinner while loading")
	}
	vm.IsLoading.Set(false)
	if v.signIn.Disabled() || v.spinner.Visible() {
		t.Error("Expected sign-in enabled once loading ends")
	}

	v.screen.Dispose()
	if vm.ErrorMessage.Subscribers() != 0 || vm.IsLoading.Subscribers() != 0 {
		t.Error("Expected dispose to unbind the login view")
	}
}

func TestHomeView_RendersCategories(t *testing.T) {
	f := newTestScreens(t)
	svc := mock.NewService(0)
	home := viewmodel.NewHome(svc, svc, svc, dispatch.Immediate{})
	poster := viewmodel.NewPoster(svc, dispatch.Immediate{})
	nav := &selectionRecorder{}
	viewmodel.AttachHomeNavigator(home, nav)

	v := f.newHomeView(home, poster)
	for c, row := range v.rows {
		if row.len() != 0 {
			t.Errorf("Expected %v row empty before loading, got %d cards", c, row.len())
		}
	}

	home.NowPlayingMovies.Set([]model.Movie{{ID: 550, Title: "Clube da Luta"}, {ID: 278}})
	home.FamousActors.Set([]model.Actor{{ID: 287, Name: "Brad Pitt"}})
	home.LastWatchedSeriesEpisodes.Set([]model.Serie{{ID: 70523, Name: "Dark"}})
	poster.UpcomingPosterMovies.Set([]model.Movie{{ID: 1}, {ID: 2}, {ID: 3}})

	tests := []struct {
		name     string
		got      int
		expected int
	}{
		{"now playing", v.rows[model.CategoryNowPlaying].len(), 2},
		{"actors", v.rows[model.CategoryFamousActors].len(), 1},
		{"series", v.rows[model.CategoryLastWatchedSerie].len(), 1},
		{"banner", v.banner.len(), 3},
		{"upcoming", v.rows[model.CategoryUpcoming].len(), 0},
	}
	for _, test := range tests {
		if test.got != test.expected {
			t.Errorf("%s: expected %d cards, got %d", test.name, test.expected, test.got)
		}
	}

	test.Tap(v.rows[model.CategoryNowPlaying].grid.Objects[0].(*itemCard))
	test.Tap(v.rows[model.CategoryFamousActors].grid.Objects[0].(*itemCard))
	test.Tap(v.rows[model.CategoryLastWatchedSerie].grid.Objects[0].(*itemCard))

	if len(nav.movies) != 1 || nav.movies[0].ID != 550 {
		t.Errorf("Expected movie 550 selected, got %v", nav.movies)
	}
	if len(nav.actors) != 1 || nav.actors[0].ID != 287 {
		t.Errorf("Expected actor 287 selected, got %v", nav.actors)
	}
	if len(nav.series) != 1 || nav.series[0].ID != 70523 {
		t.Errorf("Expected serie 70523 selected, got %v", nav.series)
	}
	runtime.KeepAlive(nav)
}

func TestHomeView_LoadingAndErrors(t *testing.T) {
	f := newTestScreens(t)
	svc := mock.NewService(0)
	home := viewmodel.NewHome(svc, svc, svc, dispatch.Immediate{})
	poster := viewmodel.NewPoster(svc, dispatch.Immediate{})
	v := f.newHomeView(home, poster)

	poster.IsLoading.Set(true)
	if !v.spinner.Visible() {
		t.Error("Expected spinner while the banner loads")
	}
	poster.IsLoading.Set(false)
	if v.spinner.Visible() {
		t.Error("Expected spinner hidden when nothing loads")
	}

	poster.ErrorMessage.Set("Erro ao carregar filmes para o banner: offline")
	if v.status.Text != "Erro ao carregar filmes para o banner: offline" {
		t.Errorf("Expected banner error, got %q", v.status.Text)
	}
	home.ErrorMessage.Set("Erro ao carregar atores: offline")
	if v.status.Text != "Erro ao carregar atores: offline" {
		t.Errorf("Expected home error to take precedence, got %q", v.status.Text)
	}

	v.screen.Dispose()
	if home.NowPlayingMovies.Subscribers() != 0 || poster.UpcomingPosterMovies.Subscribers() != 0 {
		t.Error("Expected dispose to unbind the home view")
	}
}

func TestDetailFields(t *testing.T) {
	tests := []struct {
		name     string
		target   model.DetailTarget
		expected []detailField
	}{
		{
			name:   "movie",
			target: model.MovieDetail(model.Movie{ID: 550, ReleaseDate: "1999-10-15", VoteAverage: 8.4, Overview: "Um homem deprimido..."}),
			expected: []detailField{
				{KeyReleased, "1999"},
				{KeyRating, "8.4"},
				{KeyOverview, "Um homem deprimido..."},
			},
		},
		{
			name:   "serie without date",
			target: model.SerieDetail(model.Serie{ID: 70523, VoteAverage: 8.1}),
			expected: []detailField{
				{KeyFirstAired, DashPlaceholder},
				{KeyRating, "8.1"},
				{KeyOverview, DashPlaceholder},
			},
		},
		{
			name:   "actor",
			target: model.ActorDetail(model.Actor{ID: 287, KnownForDepartment: "Acting", Popularity: 12.6}),
			expected: []detailField{
				{KeyKnownFor, "Acting"},
				{KeyPopularity, "13"},
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := detailFields(test.target)
			if len(got) != len(test.expected) {
				t.Fatalf("Expected %d fields, got %d", len(test.expected), len(got))
			}
			for i := range got {
				if got[i] != test.expected[i] {
					t.Errorf("Field %d: expected %+v, got %+v", i, test.expected[i], got[i])
				}
			}
		})
	}
}

func TestDetailsView_BackAndLink(t *testing.T) {
	f := newTestScreens(t)
	closed := 0
	target := model.MovieDetail(model.Movie{ID: 550, Title: "Clube da Luta", PosterPath: "/pB8BM7pdSp6B6Ih7QZ4DrQ3PmJK.jpg"})

	v := f.newDetailsView(target, func() { closed++ })

	if v.link == nil {
		t.Fatal("Expected a poster link")
	}
	expected := "https://image.tmdb.org/t/p/w780/pB8BM7pdSp6B6Ih7QZ4DrQ3PmJK.jpg"
	if v.link.URL.String() != expected {
		t.Errorf("Expected poster URL %s, got %s", expected, v.link.URL.String())
	}

	test.Tap(v.back)
	if closed != 1 {
		t.Errorf("Expected back to close once, got %d", closed)
	}

	noPoster := f.newDetailsView(model.ActorDetail(model.Actor{ID: 1}), func() {})
	if noPoster.link != nil {
		t.Error("Expected no link without a profile picture")
	}
}

func TestScreens_ImplementFactory(t *testing.T) {
	f := newTestScreens(t)
	svc := mock.NewService(0)

	login := f.Login(viewmodel.NewLogin(svc, dispatch.Immediate{}))
	if s, ok := login.(*Screen); !ok || s.Name != "login" || s.Content == nil {
		t.Errorf("Expected login screen, got %#v", login)
	}

	details := f.Details(model.SerieDetail(model.Serie{ID: 1399}), func() {})
	if s, ok := details.(*Screen); !ok || s.Name != "details:serie#1399" {
		t.Errorf("Expected details screen, got %#v", details)
	}
}
