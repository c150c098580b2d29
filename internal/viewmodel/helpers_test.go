package viewmodel

import (
	"context"
	"testing"
	"time"

	"github.com/amorporfilmes/filmes-series/internal/dispatch"
	"github.com/amorporfilmes/filmes-series/internal/model"
	"github.com/amorporfilmes/filmes-series/internal/observable"
)

const waitTimeout = 2 * time.Second

// recordingUI runs tasks on a serial queue and signals after each one.
type recordingUI struct {
	q   *dispatch.Queue
	ran chan struct{}
}

func newRecordingUI(t *testing.T) *recordingUI {
	t.Helper()
	q := dispatch.NewQueue()
	t.Cleanup(q.Close)
	return &recordingUI{q: q, ran: make(chan struct{}, 64)}
}

func (u *recordingUI) Do(fn func()) {
	u.q.Do(func() {
		fn()
		u.ran <- struct{}{}
	})
}

// waitTasks blocks until n published completions have run.
func (u *recordingUI) waitTasks(t *testing.T, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		select {
		case <-u.ran:
		case <-time.After(waitTimeout):
			t.Fatalf("Expected %d UI tasks, got %d", n, i)
		}
	}
}

// loadingTracker records every IsLoading transition.
type loadingTracker struct {
	values  chan bool
	history []bool
	binding *observable.Binding
}

func trackLoading(a *Aggregator) *loadingTracker {
	tr := &loadingTracker{values: make(chan bool, 64)}
	tr.binding = a.IsLoading.Bind(func(v bool) { tr.values <- v })
	return tr
}

func (tr *loadingTracker) stop() {
	tr.binding.Unbind()
}

// waitIdle drains transitions until IsLoading becomes false.
func (tr *loadingTracker) waitIdle(t *testing.T) {
	t.Helper()
	for {
		select {
		case v := <-tr.values:
			tr.history = append(tr.history, v)
			if !v {
				return
			}
		case <-time.After(waitTimeout):
			t.Fatalf("IsLoading never became false, history %v", tr.history)
		}
	}
}

func (tr *loadingTracker) falses() int {
	n := 0
	for _, v := range tr.history {
		if !v {
			n++
		}
	}
	return n
}

// gate blocks a fetch until release is called.
type gate[T any] struct {
	open  chan struct{}
	items []T
	err   error
}

func newGate[T any](items []T, err error) *gate[T] {
	return &gate[T]{open: make(chan struct{}), items: items, err: err}
}

func (g *gate[T]) fetch(ctx context.Context) ([]T, error) {
	<-g.open
	return g.items, g.err
}

func (g *gate[T]) release() {
	close(g.open)
}

func returning[T any](items []T, err error) func(context.Context) ([]T, error) {
	return func(context.Context) ([]T, error) { return items, err }
}

// fakeCatalog serves the home ports from plain functions.
type fakeCatalog struct {
	nowPlaying func(context.Context) ([]model.Movie, error)
	upcoming   func(context.Context) ([]model.Movie, error)
	recent     func(context.Context) ([]model.Movie, error)
	actors     func(context.Context) ([]model.Actor, error)
	series     func(context.Context) ([]model.Serie, error)
}

func (f *fakeCatalog) FetchNowPlayingMovies(ctx context.Context) ([]model.Movie, error) {
	return f.nowPlaying(ctx)
}

func (f *fakeCatalog) FetchUpcomingMovies(ctx context.Context) ([]model.Movie, error) {
	return f.upcoming(ctx)
}

func (f *fakeCatalog) FetchRecentlyWatchedMovies(ctx context.Context) ([]model.Movie, error) {
	return f.recent(ctx)
}

func (f *fakeCatalog) FetchFamousActors(ctx context.Context) ([]model.Actor, error) {
	return f.actors(ctx)
}

func (f *fakeCatalog) FetchLastWatchedSeriesEpisodes(ctx context.Context) ([]model.Serie, error) {
	return f.series(ctx)
}

func movies(ids ...int) []model.Movie {
	out := make([]model.Movie, 0, len(ids))
	for _, id := range ids {
		out = append(out, model.Movie{ID: id})
	}
	return out
}
