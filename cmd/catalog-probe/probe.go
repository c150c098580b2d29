package main

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/amorporfilmes/filmes-series/internal/dispatch"
	"github.com/amorporfilmes/filmes-series/internal/model"
	"github.com/amorporfilmes/filmes-series/internal/observable"
	"github.com/amorporfilmes/filmes-series/internal/viewmodel"
)

// ErrTimeout is returned when the session did not finish in time
var ErrTimeout = errors.New("aggregation did not finish in time")

const maxTitles = 5

type categoryReport struct {
	Label  string   `json:"label"`
	Loaded bool     `json:"loaded"`
	Count  int      `json:"count"`
	Titles []string `json:"titles,omitempty"`
}

type report struct {
	Categories []categoryReport `json:"categories"`
	Error      string           `json:"error,omitempty"`
	Elapsed    string           `json:"elapsed"`
}

func runHome(cmd *cobra.Command, env *probeEnv) error {
	q := dispatch.NewQueue()
	defer q.Close()

	home := viewmodel.NewHomeFromServices(env.services, q)
	elapsed, err := awaitSession(home.Aggregator, q, home.FetchHomeData, env.flags.timeout)
	if err != nil {
		return err
	}

	r := report{
		Categories: []categoryReport{
			categoryOf(model.CategoryNowPlaying, home.NowPlayingMovies, model.Movie.GetDisplayTitle),
			categoryOf(model.CategoryUpcoming, home.UpcomingMovies, model.Movie.GetDisplayTitle),
			categoryOf(model.CategoryFamousActors, home.FamousActors, model.Actor.GetDisplayTitle),
			categoryOf(model.CategoryRecentlyWatched, home.RecentlyWatchedMovies, model.Movie.GetDisplayTitle),
			categoryOf(model.CategoryLastWatchedSerie, home.LastWatchedSeriesEpisodes, model.Serie.GetDisplayTitle),
		},
		Error:   home.ErrorMessage.Value(),
		Elapsed: elapsed.Round(time.Millisecond).String(),
	}
	return writeReport(cmd.OutOrStdout(), r, env.flags.asJSON)
}

func runPoster(cmd *cobra.Command, env *probeEnv) error {
	q := dispatch.NewQueue()
	defer q.Close()

	poster := viewmodel.NewPoster(env.services.Movies, q)
	elapsed, err := awaitSession(poster.Aggregator, q, poster.FetchPosterData, env.flags.timeout)
	if err != nil {
		return err
	}

	r := report{
		Categories: []categoryReport{
			categoryOf(model.CategoryPosterBanner, poster.UpcomingPosterMovies, model.Movie.GetDisplayTitle),
		},
		Error:   poster.ErrorMessage.Value(),
		Elapsed: elapsed.Round(time.Millisecond).String(),
	}
	return writeReport(cmd.OutOrStdout(), r, env.flags.asJSON)
}

// awaitSession starts a session on the queue and waits until IsLoading
// drops back to false.
func awaitSession(a *viewmodel.Aggregator, q *dispatch.Queue, start func(), timeout time.Duration) (time.Duration, error) {
	done := make(chan struct{})
	var once sync.Once
	began := time.Now()

	var binding *observable.Binding
	q.Do(func() {
		binding = a.IsLoading.Bind(func(loading bool) {
			if !loading {
				once.Do(func() { close(done) })
			}
		})
		start()
	})

	select {
	case <-done:
	case <-time.After(timeout):
		return 0, fmt.Errorf("%w after %s", ErrTimeout, timeout)
	}

	q.Sync()
	binding.Unbind()
	return time.Since(began), nil
}

func categoryOf[T any](c model.Category, o *observable.Observable[[]T], title func(T) string) categoryReport {
	items := o.Value()
	r := categoryReport{Label: c.Label(), Loaded: items != nil, Count: len(items)}
	for i, item := range items {
		if i == maxTitles {
			break
		}
		r.Titles = append(r.Titles, title(item))
	}
	return r
}

func writeReport(w io.Writer, r report, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	}

	for _, c := range r.Categories {
		status := "não carregado"
		if c.Loaded {
			status = fmt.Sprintf("%d itens", c.Count)
		}
		fmt.Fprintf(w, "%-32s %s\n", c.Label, status)
		if len(c.Titles) > 0 {
			fmt.Fprintf(w, "%-32s %s\n", "", strings.Join(c.Titles, ", "))
		}
	}
	if r.Error != "" {
		fmt.Fprintf(w, "erro: %s\n", r.Error)
	}
	fmt.Fprintf(w, "tempo: %s\n", r.Elapsed)
	return nil
}
