package viewmodel

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/amorporfilmes/filmes-series/internal/dispatch"
	"github.com/amorporfilmes/filmes-series/internal/observable"
)

// Aggregator runs a fixed set of sources concurrently and tracks their
// aggregate loading state.
//
// FetchAll may be called again while a session is running. Each session
// joins on its own barrier; only the newest session clears IsLoading, while
// older sessions still publish their results and errors.
type Aggregator struct {
	// IsLoading is true from FetchAll until the newest session completes.
	IsLoading *observable.Observable[bool]

	// ErrorMessage holds the latest failure message, "" when none. It is a
	// single slot: concurrent failures overwrite each other.
	ErrorMessage *observable.Observable[string]

	name    string
	sources []Source
	ui      dispatch.Executor

	generation atomic.Uint64
}

// NewAggregator creates an aggregator publishing through ui.
func NewAggregator(name string, ui dispatch.Executor, sources ...Source) *Aggregator {
	return &Aggregator{
		IsLoading:    observable.New(false),
		ErrorMessage: observable.New(""),
		name:         name,
		sources:      sources,
		ui:           ui,
	}
}

// Sources returns the number of configured sources.
func (a *Aggregator) Sources() int {
	return len(a.sources)
}

// FetchAll starts a session over every configured source. Call it from the
// UI execution context: IsLoading and ErrorMessage are reset before it
// returns.
func (a *Aggregator) FetchAll() {
	a.start(a.sources...)
}

func (a *Aggregator) start(sources ...Source) {
	session := uuid.NewString()
	gen := a.generation.Add(1)
	logger := log.With().Str("viewmodel", a.name).Str("session", session).Logger()

	a.IsLoading.Set(true)
	a.ErrorMessage.Set("")

	started := time.Now()
	finish := func() {
		if a.generation.Load() != gen {
			logger.Debug().Dur("elapsed", time.Since(started)).Msg("superseded session finished")
			return
		}
		a.IsLoading.Set(false)
		logger.Info().Dur("elapsed", time.Since(started)).Msg("session finished")
	}

	if len(sources) == 0 {
		finish()
		return
	}

	logger.Debug().Int("sources", len(sources)).Msg("session started")

	b := newBarrier(len(sources), finish)
	for _, src := range sources {
		go a.run(logger, b, src)
	}
}

func (a *Aggregator) run(logger zerolog.Logger, b *barrier, src Source) {
	begin := time.Now()
	publish, err := fetchSafely(src)

	event := logger.Debug()
	if err != nil {
		event = logger.Warn().Err(err)
	}
	event.Str("source", src.Label()).Dur("elapsed", time.Since(begin)).Msg("source completed")

	a.ui.Do(func() {
		if err != nil {
			a.ErrorMessage.Set(src.failure(err))
		} else {
			publish()
		}
		b.leave()
	})
}

// fetchSafely turns a panicking port into a failure so that the session
// barrier always drains.
func fetchSafely(src Source) (publish func(), err error) {
	defer func() {
		if r := recover(); r != nil {
			publish = nil
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return src.fetch(context.Background())
}
