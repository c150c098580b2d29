package viewmodel

import (
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog/log"
)

// barrier is the join point of one aggregation session. Every source calls
// leave exactly once; the call that brings the count to zero runs done.
type barrier struct {
	pending atomic.Int64
	once    sync.Once
	done    func()
}

func newBarrier(n int, done func()) *barrier {
	b := &barrier{done: done}
	b.pending.Store(int64(n))
	return b
}

// leave records one completion and reports whether it was the last one.
func (b *barrier) leave() bool {
	left := b.pending.Add(-1)
	if left < 0 {
		log.Error().Int64("pending", left).Msg("aggregation barrier left more times than entered")
		return false
	}
	if left > 0 {
		return false
	}

	fired := false
	b.once.Do(func() {
		fired = true
		b.done()
	})
	return fired
}

func (b *barrier) remaining() int64 {
	return b.pending.Load()
}
