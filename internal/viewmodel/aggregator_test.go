package viewmodel

import (
	"context"
	"errors"
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	"github.com/amorporfilmes/filmes-series/internal/dispatch"
	"github.com/amorporfilmes/filmes-series/internal/model"
	"github.com/amorporfilmes/filmes-series/internal/observable"
)

func TestAggregator_LoadingClearsAfterLastCompletion(t *testing.T) {
	ui := newRecordingUI(t)
	first := newGate(movies(1), nil)
	second := newGate(movies(2), nil)
	third := newGate[model.Actor](nil, errors.New("offline"))

	nowPlaying := observable.New[[]model.Movie](nil)
	upcoming := observable.New[[]model.Movie](nil)
	actors := observable.New[[]model.Actor](nil)
	a := NewAggregator("test", ui,
		NewSource(model.CategoryNowPlaying, first.fetch, nowPlaying),
		NewSource(model.CategoryUpcoming, second.fetch, upcoming),
		NewSource(model.CategoryFamousActors, third.fetch, actors),
	)
	tr := trackLoading(a)

	a.FetchAll()
	if !a.IsLoading.Value() {
		t.Fatal("Expected IsLoading true right after FetchAll")
	}

	second.release()
	ui.waitTasks(t, 1)
	if !a.IsLoading.Value() {
		t.Error("Expected IsLoading true after 1 of 3 completions")
	}

	third.release()
	ui.waitTasks(t, 1)
	if !a.IsLoading.Value() {
		t.Error("Expected IsLoading true after 2 of 3 completions")
	}

	first.release()
	ui.waitTasks(t, 1)
	tr.waitIdle(t)

	if tr.falses() != 1 {
		t.Errorf("Expected IsLoading to become false once, history %v", tr.history)
	}
	if len(tr.history) != 2 || !tr.history[0] {
		t.Errorf("Expected history [true false], got %v", tr.history)
	}
}

func TestAggregator_PartialFailure(t *testing.T) {
	ui := newRecordingUI(t)
	nowPlaying := observable.New[[]model.Movie](nil)
	upcoming := observable.New[[]model.Movie](nil)
	actors := observable.New[[]model.Actor](nil)

	a := NewAggregator("test", ui,
		NewSource(model.CategoryNowPlaying, returning(movies(1, 2), nil), nowPlaying),
		NewSource(model.CategoryUpcoming, returning[model.Movie](nil, errors.New("network error")), upcoming),
		NewSource(model.CategoryFamousActors, returning([]model.Actor{{ID: 7}}, nil), actors),
	)
	tr := trackLoading(a)

	a.FetchAll()
	tr.waitIdle(t)

	if got := len(nowPlaying.Value()); got != 2 {
		t.Errorf("Expected 2 now playing movies, got %d", got)
	}
	if got := len(actors.Value()); got != 1 {
		t.Errorf("Expected 1 actor, got %d", got)
	}
	if upcoming.Value() != nil {
		t.Errorf("Expected upcoming to stay unset, got %v", upcoming.Value())
	}

	expected := "Erro ao carregar filmes em breve: network error"
	if got := a.ErrorMessage.Value(); got != expected {
		t.Errorf("Expected error message %q, got %q", expected, got)
	}
}

func TestAggregator_LastErrorWins(t *testing.T) {
	tests := []struct {
		name     string
		order    []int
		expected string
	}{
		{
			name:     "upcoming fails last",
			order:    []int{0, 1},
			expected: "Erro ao carregar filmes em breve: y",
		},
		{
			name:     "now playing fails last",
			order:    []int{1, 0},
			expected: "Erro ao carregar filmes em cartaz: x",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ui := newRecordingUI(t)
			gates := []*gate[model.Movie]{
				newGate[model.Movie](nil, errors.New("x")),
				newGate[model.Movie](nil, errors.New("y")),
			}
			a := NewAggregator("test", ui,
				NewSource(model.CategoryNowPlaying, gates[0].fetch, observable.New[[]model.Movie](nil)),
				NewSource(model.CategoryUpcoming, gates[1].fetch, observable.New[[]model.Movie](nil)),
			)
			tr := trackLoading(a)

			a.FetchAll()
			for _, i := range test.order {
				gates[i].release()
				ui.waitTasks(t, 1)
			}
			tr.waitIdle(t)

			if got := a.ErrorMessage.Value(); got != test.expected {
				t.Errorf("Expected error message %q, got %q", test.expected, got)
			}
		})
	}
}

func TestAggregator_FailureKeepsPreviousValues(t *testing.T) {
	ui := newRecordingUI(t)
	nowPlaying := observable.New(movies(1))
	upcoming := observable.New(movies(2, 3))

	calls := 0
	flaky := func(context.Context) ([]model.Movie, error) {
		calls++
		return nil, errors.New("timeout")
	}

	a := NewAggregator("test", ui,
		NewSource(model.CategoryNowPlaying, flaky, nowPlaying),
		NewSource(model.CategoryUpcoming, returning(movies(4), nil), upcoming),
	)
	tr := trackLoading(a)

	a.FetchAll()
	tr.waitIdle(t)

	if got := nowPlaying.Value(); len(got) != 1 || got[0].ID != 1 {
		t.Errorf("Expected failed category to keep [1], got %v", got)
	}
	if got := upcoming.Value(); len(got) != 1 || got[0].ID != 4 {
		t.Errorf("Expected upcoming [4], got %v", got)
	}
	if calls != 1 {
		t.Errorf("Expected no retry, got %d calls", calls)
	}
}

func TestAggregator_SuccessWithNoItemsIsEmptyNotNil(t *testing.T) {
	ui := newRecordingUI(t)
	target := observable.New[[]model.Movie](nil)
	a := NewAggregator("test", ui, NewSource(model.CategoryNowPlaying, returning[model.Movie](nil, nil), target))
	tr := trackLoading(a)

	a.FetchAll()
	tr.waitIdle(t)

	if got := target.Value(); got == nil || len(got) != 0 {
		t.Errorf("Expected empty non-nil slice, got %#v", got)
	}
}

func TestAggregator_FetchAllResetsErrorMessage(t *testing.T) {
	ui := newRecordingUI(t)
	a := NewAggregator("test", ui, NewSource(model.CategoryNowPlaying, returning(movies(1), nil), observable.New[[]model.Movie](nil)))
	a.ErrorMessage.Set("stale")

	tr := trackLoading(a)
	a.FetchAll()
	if got := a.ErrorMessage.Value(); got != "" {
		t.Errorf("Expected error message cleared synchronously, got %q", got)
	}
	tr.waitIdle(t)
}

func TestAggregator_PanickingPortIsAFailure(t *testing.T) {
	ui := newRecordingUI(t)
	boom := func(context.Context) ([]model.Movie, error) { panic("boom") }
	a := NewAggregator("test", ui,
		NewSource(model.CategoryNowPlaying, boom, observable.New[[]model.Movie](nil)),
		NewSource(model.CategoryUpcoming, returning(movies(1), nil), observable.New[[]model.Movie](nil)),
	)
	tr := trackLoading(a)

	a.FetchAll()
	tr.waitIdle(t)

	if got := a.ErrorMessage.Value(); !strings.Contains(got, "panic: boom") {
		t.Errorf("Expected panic reported in error message, got %q", got)
	}
}

func TestAggregator_NoSources(t *testing.T) {
	a := NewAggregator("empty", dispatch.Immediate{})
	tr := trackLoading(a)

	a.FetchAll()
	tr.waitIdle(t)

	if a.IsLoading.Value() {
		t.Error("Expected IsLoading false with no sources")
	}
	if len(tr.history) != 2 {
		t.Errorf("Expected history [true false], got %v", tr.history)
	}
}

// sequenced hands out one gate per call and signals when each call started.
func sequenced(gates ...*gate[model.Movie]) (func(context.Context) ([]model.Movie, error), chan struct{}) {
	picked := make(chan struct{}, len(gates))
	call := 0
	return func(ctx context.Context) ([]model.Movie, error) {
		g := gates[call]
		call++
		picked <- struct{}{}
		return g.fetch(ctx)
	}, picked
}

func TestAggregator_OverlappingSessions(t *testing.T) {
	ui := newRecordingUI(t)
	target := observable.New[[]model.Movie](nil)

	slow := newGate(movies(1), nil)
	fast := newGate(movies(2), nil)
	fetch, picked := sequenced(slow, fast)

	a := NewAggregator("test", ui, NewSource(model.CategoryNowPlaying, fetch, target))
	tr := trackLoading(a)

	a.FetchAll()
	<-picked
	a.FetchAll()
	<-picked

	fast.release()
	ui.waitTasks(t, 1)
	tr.waitIdle(t)

	if got := target.Value(); len(got) != 1 || got[0].ID != 2 {
		t.Errorf("Expected newest session data [2], got %v", got)
	}

	slow.release()
	ui.waitTasks(t, 1)

	if a.IsLoading.Value() {
		t.Error("Expected IsLoading to stay false after superseded session")
	}
	if got := target.Value(); len(got) != 1 || got[0].ID != 1 {
		t.Errorf("Expected superseded session to still publish [1], got %v", got)
	}
	if tr.falses() != 1 || len(tr.values) != 0 {
		t.Errorf("Expected a single false transition, history %v", tr.history)
	}
}

func TestAggregator_SupersededSessionDoesNotClearLoading(t *testing.T) {
	ui := newRecordingUI(t)
	first := newGate(movies(1), nil)
	second := newGate(movies(2), nil)
	fetch, picked := sequenced(first, second)

	a := NewAggregator("test", ui, NewSource(model.CategoryNowPlaying, fetch, observable.New[[]model.Movie](nil)))
	tr := trackLoading(a)

	a.FetchAll()
	<-picked
	a.FetchAll()
	<-picked

	first.release()
	ui.waitTasks(t, 1)
	if !a.IsLoading.Value() {
		t.Error("Expected IsLoading true while the newest session runs")
	}

	second.release()
	ui.waitTasks(t, 1)
	tr.waitIdle(t)
}

// Random completion orders must always end idle with exactly one clear.
func TestAggregator_RandomCompletionOrder(t *testing.T) {
	q := dispatch.NewQueue()
	defer q.Close()

	jitter := func(context.Context) ([]model.Movie, error) {
		time.Sleep(time.Duration(rand.IntN(200)) * time.Microsecond)
		if rand.IntN(4) == 0 {
			return nil, errors.New("random failure")
		}
		return movies(1), nil
	}

	sources := make([]Source, 0, 5)
	for _, c := range []model.Category{
		model.CategoryNowPlaying,
		model.CategoryUpcoming,
		model.CategoryRecentlyWatched,
		model.CategoryPosterBanner,
		model.CategoryLastWatchedSerie,
	} {
		sources = append(sources, NewSource(c, jitter, observable.New[[]model.Movie](nil)))
	}
	a := NewAggregator("random", q, sources...)

	for run := 0; run < 1000; run++ {
		tr := trackLoading(a)
		a.FetchAll()
		tr.waitIdle(t)
		q.Sync()
		tr.stop()

		if a.IsLoading.Value() {
			t.Fatalf("Run %d: expected IsLoading false", run)
		}
		if tr.falses() != 1 {
			t.Fatalf("Run %d: expected one false transition, history %v", run, tr.history)
		}
	}
}
