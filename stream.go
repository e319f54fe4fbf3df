package lazystream

import (
	"iter"

	"github.com/KasperOmsK/lazystream/internal/thunk"
)

// Stream is an immutable, lazily-evaluated sequence of values of type T.
//
// A Stream is either empty or holds a head value and a generator producing
// the rest of the sequence. Generators run only when a consumer walks past
// a node, and each node runs its generator at most once: the resulting tail
// is cached and shared by every stream derived from that node.
//
// The zero value is an empty Stream. Streams are small values and are meant
// to be passed and copied by value.
//
// Streams are not safe for concurrent use: two goroutines must not force the
// same unevaluated node at the same time.
type Stream[T any] struct {
	cell *thunk.Thunk[*node[T]]
}

// node is a populated position of a stream. A nil *node means empty.
type node[T any] struct {
	head T
	tail *thunk.Thunk[Stream[T]]
}

func (n *node[T]) rest() Stream[T] {
	return n.tail.Force()
}

// Empty returns an empty Stream.
func Empty[T any]() Stream[T] {
	return Stream[T]{}
}

// New returns a Stream whose first element is head and whose remaining
// elements are produced by next.
//
// next is called at most once, the first time the tail of the returned
// stream is needed. A nil next makes a single-element stream.
func New[T any](head T, next func() Stream[T]) Stream[T] {
	var tail *thunk.Thunk[Stream[T]]
	if next == nil {
		tail = thunk.Of(Empty[T]())
	} else {
		tail = thunk.New(next)
	}
	return Stream[T]{cell: thunk.Of(&node[T]{head: head, tail: tail})}
}

// Defer returns a Stream whose content is computed by fn the first time the
// stream is inspected. fn is called at most once.
//
// Defer is the building block of every transformation in this package: it
// lets a derived stream be constructed without evaluating anything upstream.
func Defer[T any](fn func() Stream[T]) Stream[T] {
	return Stream[T]{cell: thunk.New(func() *node[T] {
		return fn().resolve()
	})}
}

// resolve forces the first position of s.
func (s Stream[T]) resolve() *node[T] {
	if s.cell == nil {
		return nil
	}
	return s.cell.Force()
}

// knownEmpty reports whether s is empty without forcing anything.
func (s Stream[T]) knownEmpty() bool {
	return s.cell == nil || (s.cell.Forced() && s.cell.Force() == nil)
}

// IsEmpty reports whether s has no elements.
//
// Inspecting a derived stream resolves its first position, which may invoke
// the callbacks of the transformations it was built with.
func (s Stream[T]) IsEmpty() bool {
	return s.resolve() == nil
}

// First returns the first element of s, or ErrEmptyStream if s is empty.
func (s Stream[T]) First() (T, error) {
	n := s.resolve()
	if n == nil {
		var zero T
		return zero, ErrEmptyStream
	}
	return n.head, nil
}

// MustFirst is like First but panics with ErrEmptyStream if s is empty.
func (s Stream[T]) MustFirst() T {
	v, err := s.First()
	if err != nil {
		panic(err)
	}
	return v
}

// Tail returns s without its first element. The tail of an empty stream is
// empty.
func (s Stream[T]) Tail() Stream[T] {
	n := s.resolve()
	if n == nil {
		return s
	}
	return n.rest()
}

// Len walks the whole stream and returns the number of elements.
//
// Len never returns on an infinite stream.
func (s Stream[T]) Len() int {
	length := 0
	for n := s.resolve(); n != nil; n = n.rest().resolve() {
		length++
	}
	return length
}

// ToSlice walks the whole stream and returns its elements in order.
// The result is never nil.
//
// ToSlice never returns on an infinite stream.
func (s Stream[T]) ToSlice() []T {
	out := make([]T, 0)
	for n := s.resolve(); n != nil; n = n.rest().resolve() {
		out = append(out, n.head)
	}
	return out
}

// All returns an iterator over the elements of s.
//
// Elements are forced one at a time as the loop advances; breaking out of the
// loop stops evaluation, so All is safe to use on infinite streams.
func (s Stream[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := s.resolve(); n != nil; n = n.rest().resolve() {
			if !yield(n.head) {
				return
			}
		}
	}
}

// Reduce folds s from left to right, starting from initialValue and calling
// reducer with the accumulator and each element in turn.
//
// Reduce returns initialValue unchanged for an empty stream and never returns
// on an infinite one.
func Reduce[T, Acc any](s Stream[T], reducer func(acc Acc, item T) Acc, initialValue Acc) Acc {
	acc := initialValue
	for n := s.resolve(); n != nil; n = n.rest().resolve() {
		acc = reducer(acc, n.head)
	}
	return acc
}
