package api

import "sync"

// Lazy is a compute-once cell. The thunk runs on the first Get and the
// result is cached; later calls return the cached value. Get is safe for
// concurrent use.
type Lazy[T any] struct {
	once sync.Once
	fn   func() T
	v    T
}

// NewLazy wraps fn so it is evaluated at most once.
func NewLazy[T any](fn func() T) *Lazy[T] {
	return &Lazy[T]{fn: fn}
}

// Strict returns an already evaluated cell holding v.
func Strict[T any](v T) *Lazy[T] {
	l := &Lazy[T]{v: v}
	l.once.Do(func() {})
	return l
}

func (l *Lazy[T]) Get() T {
	l.once.Do(func() {
		l.v = l.fn()
		l.fn = nil
	})
	return l.v
}
