package lazystream

type (

	// MapFunc is a pure mapping function used by Map that transforms a value
	// of type In into a value of type Out.
	MapFunc[In, Out any] func(in In) Out

	// Predicate represents a filtering function that returns true when the
	// provided value should be included in the output stream.
	Predicate[T any] func(item T) bool
)

// Filter returns a Stream that yields only the values of s for which
// predicate returns true, in their original order.
//
// Building the filtered stream does not call predicate. Inspecting a
// position of the result calls predicate on upstream values until the first
// match and no further.
func (s Stream[T]) Filter(predicate Predicate[T]) Stream[T] {
	if s.knownEmpty() {
		return s
	}
	return Defer(func() Stream[T] {
		cur := s
		for {
			n := cur.resolve()
			if n == nil {
				return cur
			}
			if predicate(n.head) {
				return New(n.head, func() Stream[T] {
					return n.rest().Filter(predicate)
				})
			}
			cur = n.rest()
		}
	})
}

// Map transforms each value of s using fn and returns a new Stream producing
// the mapped values.
//
// fn is applied to a value when its position in the result is inspected,
// never before.
func Map[In, Out any](s Stream[In], fn MapFunc[In, Out]) Stream[Out] {
	if s.knownEmpty() {
		return Empty[Out]()
	}
	return Defer(func() Stream[Out] {
		n := s.resolve()
		if n == nil {
			return Empty[Out]()
		}
		return New(fn(n.head), func() Stream[Out] {
			return Map(n.rest(), fn)
		})
	})
}

// FlatMap transforms each value of s using fn and returns a Stream producing
// the flattened output values.
//
// FlatMap is equivalent to calling Flatten(Map(s, fn)).
func FlatMap[In, Out any](s Stream[In], fn MapFunc[In, []Out]) Stream[Out] {
	return Flatten(Map(s, fn))
}

// Flatten converts a Stream of slices into a Stream of their elements,
// emitting the items of each slice in order. Empty slices are skipped.
func Flatten[T any](s Stream[[]T]) Stream[T] {
	return Defer(func() Stream[T] {
		cur := s
		for {
			n := cur.resolve()
			if n == nil {
				return Empty[T]()
			}
			if len(n.head) > 0 {
				return FromSlice(n.head).Concat(Flatten(n.rest()))
			}
			cur = n.rest()
		}
	})
}

// Concat returns a Stream that yields every value of s followed by every
// value of other.
//
// other is not inspected until s is exhausted. Once it is, the result
// continues with other itself rather than a copy of it.
//
// To concatenate streams of different element types, map them to a common
// type first.
func (s Stream[T]) Concat(other Stream[T]) Stream[T] {
	if s.knownEmpty() {
		return other
	}
	return Defer(func() Stream[T] {
		n := s.resolve()
		if n == nil {
			return other
		}
		return New(n.head, func() Stream[T] {
			return n.rest().Concat(other)
		})
	})
}

// Concat combines multiple streams into a single stream that yields all
// values of the first, then all values of the second, and so on.
//
// No stream is inspected before all the streams preceding it are exhausted.
func Concat[T any](streams ...Stream[T]) Stream[T] {
	if len(streams) == 0 {
		return Empty[T]()
	}

	out := streams[len(streams)-1]
	for i := len(streams) - 2; i >= 0; i-- {
		out = streams[i].Concat(out)
	}
	return out
}

// Take returns a Stream of the first n values of s, or all of s if it is
// shorter.
//
// Take does not force anything past the n-th value, which makes it the
// usual way to consume a prefix of an infinite stream.
//
// Take panics if n is negative.
func (s Stream[T]) Take(n int) Stream[T] {
	if n < 0 {
		panic("lazystream.Take: n must not be negative")
	}
	if n == 0 {
		return Empty[T]()
	}
	return Defer(func() Stream[T] {
		nd := s.resolve()
		if nd == nil {
			return s
		}
		if n == 1 {
			return New(nd.head, nil)
		}
		return New(nd.head, func() Stream[T] {
			return nd.rest().Take(n - 1)
		})
	})
}

// TakeWhile returns the longest prefix of s whose values all satisfy
// predicate.
//
// The first value failing predicate ends the stream; nothing after it is
// forced.
func (s Stream[T]) TakeWhile(predicate Predicate[T]) Stream[T] {
	if s.knownEmpty() {
		return s
	}
	return Defer(func() Stream[T] {
		n := s.resolve()
		if n == nil || !predicate(n.head) {
			return Empty[T]()
		}
		return New(n.head, func() Stream[T] {
			return n.rest().TakeWhile(predicate)
		})
	})
}

// Tap returns a Stream with the same values as s that calls fn with each
// value when its position is first inspected.
//
// Since positions are evaluated at most once, fn sees each value at most
// once no matter how many times the stream is walked.
//
// Tap panics if fn is nil.
func (s Stream[T]) Tap(fn func(T)) Stream[T] {
	if fn == nil {
		panic("lazystream.Tap: fn must not be nil")
	}
	if s.knownEmpty() {
		return s
	}
	return Defer(func() Stream[T] {
		n := s.resolve()
		if n == nil {
			return s
		}
		fn(n.head)
		return New(n.head, func() Stream[T] {
			return n.rest().Tap(fn)
		})
	})
}

// Chunk groups values of s into slices of the given size and returns a
// Stream producing those slices.
//
// The final chunk may be smaller than chunkSize. Each chunk has its own
// backing array, so callers may keep chunks around freely.
//
// Chunk panics if chunkSize is not positive.
func Chunk[T any](s Stream[T], chunkSize int) Stream[[]T] {
	if chunkSize <= 0 {
		panic("lazystream.Chunk: chunkSize must be positive")
	}
	return chunk(s, chunkSize)
}

func chunk[T any](s Stream[T], chunkSize int) Stream[[]T] {
	return Defer(func() Stream[[]T] {
		accum := make([]T, 0, chunkSize)
		cur := s
		for {
			n := cur.resolve()
			if n == nil {
				break
			}
			accum = append(accum, n.head)
			if len(accum) == chunkSize {
				return New(accum, func() Stream[[]T] {
					return chunk(n.rest(), chunkSize)
				})
			}
			cur = n.rest()
		}

		if len(accum) == 0 {
			return Empty[[]T]()
		}
		return New(accum, nil)
	})
}

// GroupBy groups consecutive values of s according to a key function and
// returns a Stream producing slices of those grouped values.
//
// GroupBy does not reorder values; values are grouped only when they appear
// consecutively with the same key. For example, given input values:
//
//	A, A, B, B, A
//
// GroupBy will emit:
//
//	[A, A], [B, B], [A]
//
// Deciding that a group is complete requires inspecting the first value of
// the next group, so each group forces one value past its end.
func GroupBy[T any, K comparable](s Stream[T], keyFunc func(T) K) Stream[[]T] {
	return GroupByAggregate(s, keyFunc,
		func(first T) []T { return nil },
		func(acc *[]T, item T) { *acc = append(*acc, item) })
}

// GroupByAggregate groups consecutive values of s by key and aggregates them
// using user-supplied initialization and update callbacks, producing one
// aggregated output value per group.
//
// GroupByAggregate is equivalent to performing a GroupBy followed by a Map,
// but does so without allocating a slice for each group.
//
// initFunc is called when a new group starts. It receives the first value of
// the group and returns the initial accumulator for that group.
//
// updateFunc is called for each value in the current group, including the
// first. It receives a pointer to the accumulator and the current value, and
// updates the accumulator in place.
//
// For example, to sum values in each group:
//
//	initFunc := func(v int) int {
//	    return 0 // start at 0
//	}
//
//	updateFunc := func(acc *int, v int) {
//	    *acc += v // add the value to the accumulator
//	}
//
// keyFunc is called exactly once per value.
func GroupByAggregate[In any, K comparable, Out any](
	s Stream[In],
	keyFunc func(In) K,
	initFunc func(first In) Out,
	updateFunc func(acc *Out, item In)) Stream[Out] {

	return Defer(func() Stream[Out] {
		n := s.resolve()
		if n == nil {
			return Empty[Out]()
		}
		return aggregateGroup(n, keyFunc(n.head), keyFunc, initFunc, updateFunc)
	})
}

// aggregateGroup folds the group starting at first, whose key has already
// been computed.
func aggregateGroup[In any, K comparable, Out any](
	first *node[In],
	key K,
	keyFunc func(In) K,
	initFunc func(first In) Out,
	updateFunc func(acc *Out, item In)) Stream[Out] {

	acc := initFunc(first.head)
	updateFunc(&acc, first.head)

	for n := first; ; {
		next := n.rest().resolve()
		if next == nil {
			return New(acc, nil)
		}
		k := keyFunc(next.head)
		if k != key {
			return New(acc, func() Stream[Out] {
				return aggregateGroup(next, k, keyFunc, initFunc, updateFunc)
			})
		}
		updateFunc(&acc, next.head)
		n = next
	}
}
