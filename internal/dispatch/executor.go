package dispatch

// Executor runs fn on the execution context it represents. Do must not wait
// for fn when called from another goroutine, and tasks submitted from one
// goroutine run in submission order.
type Executor interface {
	Do(fn func())
}

// ExecutorFunc adapts a function to Executor.
type ExecutorFunc func(fn func())

// Do calls f(fn).
func (f ExecutorFunc) Do(fn func()) {
	f(fn)
}

// Immediate runs tasks inline on the calling goroutine. Only use it when the
// caller already serialises every Do call.
type Immediate struct{}

// Do runs fn.
func (Immediate) Do(fn func()) {
	fn()
}
