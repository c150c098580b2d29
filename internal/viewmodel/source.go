package viewmodel

import (
	"context"
	"fmt"

	"github.com/amorporfilmes/filmes-series/internal/model"
	"github.com/amorporfilmes/filmes-series/internal/observable"
)

// ErrorMessageFormat renders a failed category fetch: label, then reason.
const ErrorMessageFormat = "Erro ao carregar %s: %s"

// Source is one independent fetch of an aggregation session.
type Source interface {
	// Label names the source in logs and error messages.
	Label() string

	// fetch runs on a background goroutine. On success it returns the write
	// to perform on the UI executor.
	fetch(ctx context.Context) (publish func(), err error)

	// failure renders err for the ErrorMessage observable.
	failure(err error) string
}

type listSource[T any] struct {
	category model.Category
	load     func(context.Context) ([]T, error)
	target   *observable.Observable[[]T]
}

// NewSource binds a catalog list fetch to the observable it fills.
func NewSource[T any](category model.Category, load func(context.Context) ([]T, error), target *observable.Observable[[]T]) Source {
	return &listSource[T]{category: category, load: load, target: target}
}

func (s *listSource[T]) Label() string {
	return s.category.Label()
}

func (s *listSource[T]) fetch(ctx context.Context) (func(), error) {
	items, err := s.load(ctx)
	outcome := model.OutcomeOf(items, err)
	if !outcome.IsSuccess() {
		return nil, outcome.Err
	}
	return func() { s.target.Set(outcome.Items) }, nil
}

func (s *listSource[T]) failure(err error) string {
	return fmt.Sprintf(ErrorMessageFormat, s.Label(), err.Error())
}

// callSource is a single request whose result is handled by a closure, used
// by view models that do not publish a list.
type callSource struct {
	label   string
	run     func(ctx context.Context) (func(), error)
	message func(err error) string
}

func (s *callSource) Label() string {
	return s.label
}

func (s *callSource) fetch(ctx context.Context) (func(), error) {
	return s.run(ctx)
}

func (s *callSource) failure(err error) string {
	return s.message(err)
}
