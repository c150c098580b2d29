package model

// Outcome is the result of one fetch against a catalog port: either the items
// or the error, never both.
type Outcome[T any] struct {
	Items []T
	Err   error
}

// Success wraps items. A nil slice becomes an empty one so that a successful
// fetch is never mistaken for "not loaded".
func Success[T any](items []T) Outcome[T] {
	if items == nil {
		items = []T{}
	}
	return Outcome[T]{Items: items}
}

// Failure wraps err
func Failure[T any](err error) Outcome[T] {
	return Outcome[T]{Err: err}
}

// OutcomeOf builds an Outcome from a port's return values
func OutcomeOf[T any](items []T, err error) Outcome[T] {
	if err != nil {
		return Failure[T](err)
	}
	return Success(items)
}

// IsSuccess returns true when the fetch succeeded
func (o Outcome[T]) IsSuccess() bool {
	return o.Err == nil
}
