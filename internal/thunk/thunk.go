// Package thunk provides memoized deferred computations.
package thunk

// Thunk holds a value of type T that is computed on first use.
//
// The computation runs at most once: after a successful Force the function is
// released and later calls return the cached value. If the function panics,
// the Thunk stays unforced and the next Force runs it again.
//
// A Thunk is not safe for concurrent use.
type Thunk[T any] struct {
	fn    func() T
	value T
	done  bool
}

// New returns a Thunk that computes its value by calling fn.
//
// New panics if fn is nil.
func New[T any](fn func() T) *Thunk[T] {
	if fn == nil {
		panic("thunk.New: fn must not be nil")
	}
	return &Thunk[T]{fn: fn}
}

// Of returns an already forced Thunk holding v.
func Of[T any](v T) *Thunk[T] {
	return &Thunk[T]{value: v, done: true}
}

// Force computes the value if needed and returns it.
func (t *Thunk[T]) Force() T {
	if !t.done {
		v := t.fn()
		t.value = v
		t.done = true
		t.fn = nil
	}
	return t.value
}

// Forced reports whether the value has already been computed.
func (t *Thunk[T]) Forced() bool {
	return t.done
}
