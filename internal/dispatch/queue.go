package dispatch

import (
	"sync"

	"github.com/rs/zerolog/log"
)

// Queue is a single-goroutine FIFO executor. It stands in for a UI main
// thread in headless runs and tests.
type Queue struct {
	mu      sync.Mutex
	pending []func()
	closed  bool

	wake chan struct{}
	done chan struct{}
}

// NewQueue starts the queue goroutine.
func NewQueue() *Queue {
	q := &Queue{
		wake: make(chan struct{}, 1),
		done: make(chan struct{}),
	}
	go q.loop()
	return q
}

// Do appends fn to the queue. Tasks submitted after Close are dropped.
func (q *Queue) Do(fn func()) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		log.Warn().Msg("dispatch queue closed, task dropped")
		return
	}
	q.pending = append(q.pending, fn)
	q.mu.Unlock()

	select {
	case q.wake <- struct{}{}:
	default:
	}
}

// Sync blocks until every task queued before the call has run. It must not be
// called from a task running on the queue.
func (q *Queue) Sync() {
	ch := make(chan struct{})
	q.Do(func() { close(ch) })

	select {
	case <-ch:
	case <-q.done:
	}
}

// Close runs the tasks already queued and stops the goroutine.
func (q *Queue) Close() {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		<-q.done
		return
	}
	q.closed = true
	q.mu.Unlock()

	select {
	case q.wake <- struct{}{}:
	default:
	}
	<-q.done
}

func (q *Queue) loop() {
	defer close(q.done)

	for range q.wake {
		for {
			q.mu.Lock()
			batch := q.pending
			q.pending = nil
			closed := q.closed
			q.mu.Unlock()

			if len(batch) == 0 {
				if closed {
					return
				}
				break
			}

			for _, fn := range batch {
				q.run(fn)
			}
		}
	}
}

func (q *Queue) run(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("dispatch queue task panicked")
		}
	}()
	fn()
}
