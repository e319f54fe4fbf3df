package lazystream

import (
	"slices"

	"golang.org/x/exp/constraints"
)

// Number is the set of element types accepted by Range and RangeStep.
type Number interface {
	constraints.Integer | constraints.Float
}

// FromSlice returns a Stream producing the elements of items in order.
//
// items is copied, so modifying it afterwards does not affect the stream.
func FromSlice[T any](items []T) Stream[T] {
	return fromSlice(slices.Clone(items))
}

func fromSlice[T any](items []T) Stream[T] {
	if len(items) == 0 {
		return Empty[T]()
	}
	return New(items[0], func() Stream[T] {
		return fromSlice(items[1:])
	})
}

// Range returns the Stream start, start+1, ... up to and including end.
//
// Range is equivalent to RangeStep(start, end, 1).
func Range[N Number](start, end N) Stream[N] {
	return RangeStep(start, end, 1)
}

// RangeStep returns the Stream start, start+step, start+2*step, ... that
// ends with the first value equal to end.
//
// The stream only stops on exact equality. If repeated additions of step
// never land on end (end is below start with a positive step, or floating
// point rounding skips over it) the stream is infinite, and must be bounded
// by the consumer, for example with Take or TakeWhile.
func RangeStep[N Number](start, end, step N) Stream[N] {
	if start == end {
		return New(start, nil)
	}
	return New(start, func() Stream[N] {
		return RangeStep(start+step, end, step)
	})
}
