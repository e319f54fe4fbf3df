package lazystream_test

import (
	"testing"

	"github.com/KasperOmsK/lazystream"

	"github.com/stretchr/testify/require"
)

func TestEmpty(t *testing.T) {
	var zero lazystream.Stream[int]

	for _, s := range []lazystream.Stream[int]{zero, lazystream.Empty[int]()} {
		require.True(t, s.IsEmpty())
		require.Equal(t, 0, s.Len())
		require.Equal(t, []int{}, s.ToSlice())

		_, err := s.First()
		require.ErrorIs(t, err, lazystream.ErrEmptyStream)
	}
}

func TestNew_SingleElement(t *testing.T) {
	s := lazystream.New(1, nil)

	require.False(t, s.IsEmpty())
	require.Equal(t, []int{1}, s.ToSlice())
}

func TestNew_WithGenerator(t *testing.T) {
	s := lazystream.New(1, func() lazystream.Stream[int] {
		return lazystream.New(2, nil)
	})

	require.Equal(t, []int{1, 2}, s.ToSlice())
}

func TestNew_GeneratorRunsOnce(t *testing.T) {
	calls := 0
	s := lazystream.New(1, func() lazystream.Stream[int] {
		calls++
		return lazystream.New(2, nil)
	})

	require.Equal(t, 0, calls)

	require.Equal(t, 2, s.Len())
	require.Equal(t, []int{1, 2}, s.ToSlice())
	require.Equal(t, 2, s.Tail().MustFirst())
	require.Equal(t, 1, calls)
}

func TestDefer_RunsOnFirstInspection(t *testing.T) {
	calls := 0
	s := lazystream.Defer(func() lazystream.Stream[string] {
		calls++
		return lazystream.FromSlice([]string{"a", "b"})
	})

	require.Equal(t, 0, calls)

	require.False(t, s.IsEmpty())
	require.Equal(t, []string{"a", "b"}, s.ToSlice())
	require.Equal(t, 1, calls)
}

func TestFirst(t *testing.T) {
	s := lazystream.FromSlice([]int{1, 2, 3})

	v, err := s.First()
	require.NoError(t, err)
	require.Equal(t, 1, v)
}

func TestMustFirst_PanicsOnEmpty(t *testing.T) {
	require.PanicsWithError(t, lazystream.ErrEmptyStream.Error(), func() {
		lazystream.Empty[int]().MustFirst()
	})
}

func TestTail(t *testing.T) {
	s := lazystream.FromSlice([]int{1, 2, 3})

	require.Equal(t, []int{2, 3}, s.Tail().ToSlice())
	require.Equal(t, []int{1, 2, 3}, s.ToSlice())

	// The tail of an empty stream is empty.
	require.True(t, lazystream.Empty[int]().Tail().IsEmpty())
	require.True(t, s.Tail().Tail().Tail().Tail().IsEmpty())
}

func TestLen(t *testing.T) {
	require.Equal(t, 0, lazystream.Empty[int]().Len())
	require.Equal(t, 1, lazystream.New(1, nil).Len())
	require.Equal(t, 3, lazystream.FromSlice([]int{1, 2, 3}).Len())
}

func TestZeroValuesAreElements(t *testing.T) {
	ints := lazystream.FromSlice([]int{0, 0})
	require.Equal(t, 2, ints.Len())

	ptrs := lazystream.FromSlice([]*int{nil})
	v, err := ptrs.First()
	require.NoError(t, err)
	require.Nil(t, v)
	require.False(t, ptrs.IsEmpty())
}

func TestAll_StopsOnBreak(t *testing.T) {
	forced := 0
	naturals := lazystream.RangeStep(0, -1, 1).Tap(func(int) { forced++ })

	var out []int
	for v := range naturals.All() {
		if v == 3 {
			break
		}
		out = append(out, v)
	}

	require.Equal(t, []int{0, 1, 2}, out)
	require.Equal(t, 4, forced)
}

func TestAll_Empty(t *testing.T) {
	for range lazystream.Empty[int]().All() {
		t.Fatal("empty stream yielded a value")
	}
}

func TestReduce(t *testing.T) {
	sum := func(acc, item int) int { return acc + item }

	require.Equal(t, 6, lazystream.Reduce(lazystream.FromSlice([]int{1, 2, 3}), sum, 0))
	require.Equal(t, 0, lazystream.Reduce(lazystream.Empty[int](), sum, 0))
	require.Equal(t, 42, lazystream.Reduce(lazystream.Empty[int](), sum, 42))
}

func TestReduce_ChangesType(t *testing.T) {
	joined := lazystream.Reduce(lazystream.FromSlice([]int{1, 2, 3}),
		func(acc string, item int) string {
			return acc + string(rune('0'+item))
		}, ">")

	require.Equal(t, ">123", joined)
}

func TestReduce_PropagatesPanic(t *testing.T) {
	require.PanicsWithValue(t, "reducer failed", func() {
		lazystream.Reduce(lazystream.FromSlice([]int{1, 2}), func(acc, item int) int {
			if item == 2 {
				panic("reducer failed")
			}
			return acc + item
		}, 0)
	})
}

func TestSharedUpstream(t *testing.T) {
	calls := 0
	src := lazystream.FromSlice([]int{1, 2, 3, 4}).Tap(func(int) { calls++ })

	evens := src.Filter(func(v int) bool { return v%2 == 0 })
	doubled := lazystream.Map(src, func(v int) int { return v * 2 })

	require.Equal(t, []int{2, 4}, evens.ToSlice())
	require.Equal(t, []int{2, 4, 6, 8}, doubled.ToSlice())

	// Both derived streams walk the same evaluated nodes.
	require.Equal(t, 4, calls)
}
