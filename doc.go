/*
Package lazystream provides immutable, lazily-evaluated linked streams
and the functional transformations to compose them.

This package is built around the concept of Streams. A Stream[T] is either
empty or holds one value of type T (its head) and a generator that produces
the rest of the sequence on demand. Nothing past the head exists until a
consumer asks for it, so streams may be arbitrarily long or even infinite.

Streams are created from plain values (New, FromSlice, Range, RangeStep)
and transformed with Filter, Map, Concat, Take and friends. Transformations
that keep the element type are methods so they can be chained; the ones that
change it (Map, FlatMap, Chunk, GroupBy, ...) are package-level functions
because Go methods cannot declare type parameters.

Every transformation returns a new Stream without evaluating anything.
Callbacks run only when a consumer inspects a position of the result
(First, IsEmpty, Len, ToSlice, All or Reduce), and only as far as that
consumer walks. Each position is evaluated at most once and then shared, so
a stream can be walked any number of times and derived streams can share
their upstream freely.

Example of a simple pipeline:

	// Every natural number; RangeStep never reaches -1.
	naturals := lazystream.RangeStep(0, -1, 1)

	squares := lazystream.Map(naturals, func(n int) int {
		return n * n
	})

	// Filtering an infinite stream is fine as long as consumption is bounded.
	odd := squares.Filter(func(n int) bool {
		return n%2 == 1
	})

	// Only the first five odd squares, and the values needed to find them,
	// are ever computed.
	fmt.Println(odd.Take(5).ToSlice()) // [1 9 25 49 81]

	// Reduce folds a finite stream.
	sum := lazystream.Reduce(lazystream.Range(1, 100), func(acc, n int) int {
		return acc + n
	}, 0)

The only error reported by this package is ErrEmptyStream, returned by
First. Panics raised by predicates, mappers and reducers propagate to the
caller unchanged.

Streams are meant for single-goroutine use: evaluating the same unevaluated
position from several goroutines at once is not supported.
*/
package lazystream
