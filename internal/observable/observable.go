package observable

import (
	"sync"
)

// Observable holds a current value and the ordered list of subscribers that
// observe its future changes.
type Observable[T any] struct {
	mu     sync.RWMutex
	value  T
	nextID uint64
	subs   []subscriber[T]
}

type subscriber[T any] struct {
	id uint64
	fn func(T)
}

// Binding is the handle returned by Bind. It does not own the observable.
type Binding struct {
	unbind func()
	once   sync.Once
}

// Unbind removes the subscriber. Calling it more than once is a no-op.
func (b *Binding) Unbind() {
	if b == nil || b.unbind == nil {
		return
	}
	b.once.Do(b.unbind)
}

// New creates an observable holding initial.
func New[T any](initial T) *Observable[T] {
	return &Observable[T]{value: initial}
}

// Value returns the current value.
func (o *Observable[T]) Value() T {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.value
}

// Set replaces the value and invokes every registered subscriber with v in
// subscription order before returning.
func (o *Observable[T]) Set(v T) {
	o.mu.Lock()
	o.value = v
	subs := make([]subscriber[T], len(o.subs))
	copy(subs, o.subs)
	o.mu.Unlock()

	// Called outside the lock so subscribers may read, bind or unbind.
	for _, s := range subs {
		s.fn(v)
	}
}

// Bind registers fn for future Set calls. fn is not called with the current
// value.
func (o *Observable[T]) Bind(fn func(T)) *Binding {
	o.mu.Lock()
	o.nextID++
	id := o.nextID
	o.subs = append(o.subs, subscriber[T]{id: id, fn: fn})
	o.mu.Unlock()

	return &Binding{unbind: func() { o.remove(id) }}
}

// Subscribers returns the number of registered subscribers.
func (o *Observable[T]) Subscribers() int {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return len(o.subs)
}

func (o *Observable[T]) remove(id uint64) {
	o.mu.Lock()
	defer o.mu.Unlock()

	for i, s := range o.subs {
		if s.id == id {
			o.subs = append(o.subs[:i:i], o.subs[i+1:]...)
			return
		}
	}
}
