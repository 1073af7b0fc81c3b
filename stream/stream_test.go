package stream

import (
	"context"
	"sync"
	"testing"

	"github.com/hdevalke/take-until/lazy"
	"github.com/stretchr/testify/require"
)

func TestStream_FindFirst(t *testing.T) {
	addOne := func(i int) int {
		return i + 1
	}

	require.Equal(t, 1, Just(1, 2, 3, 4, 5).FindFirst().MustGet())
	require.Equal(t, 2, lazy.Map(Just(1, 2, 3, 4, 5).FindFirst(), addOne).MustGet())
	require.Equal(t, 2, Just(1, 2, 3, 4, 5).Skip(1).FindFirst().MustGet())
	require.Nil(t, Empty[int]().FindFirst().MustGetOptional())
	require.Nil(t, Just[int]().FindFirst().MustGetOptional())
}

func TestStream_FindLast(t *testing.T) {
	require.Equal(t, 5, Just(1, 2, 3, 4, 5).FindLast().MustGet())
	require.Nil(t, Empty[int]().FindLast().MustGetOptional())
}

func TestStream_Filter(t *testing.T) {
	addOne := func(i int) int {
		return i + 1
	}

	require.Len(
		t,
		Just(1, 2, 3, 4, 5).
			Filter(func(i int) bool {
				return i > 2
			}).
			MustCollect(),
		3,
	)

	require.Len(
		t,
		Map(Just(1, 2, 3, 4, 5), addOne).
			Filter(func(i int) bool {
				return i > 2
			}).
			MustCollect(),
		4,
	)
}

func TestStream_CountAndIsEmpty(t *testing.T) {
	require.Equal(t, 3, Just(1, 2, 3).MustCount())
	require.Equal(t, 0, Empty[int]().MustCount())

	empty, err := Empty[int]().IsEmpty(context.Background())
	require.NoError(t, err)
	require.True(t, empty)

	empty, err = Just(1).IsEmpty(context.Background())
	require.NoError(t, err)
	require.False(t, empty)
}

func TestStream_Peek(t *testing.T) {
	var seen []int
	result := Just(1, 2, 3).
		Peek(func(v int) {
			seen = append(seen, v)
		}).
		MustCollect()
	require.Equal(t, []int{1, 2, 3}, result)
	require.Equal(t, []int{1, 2, 3}, seen)
}

func TestStream_WithLockWhileMaterializing(t *testing.T) {
	var mu sync.Mutex
	elementsSeen := 0

	s := Just(1, 2, 3).
		Peek(func(int) {
			// The lock is held for the whole materialization
			require.False(t, mu.TryLock())
			elementsSeen++
		}).
		WithLockWhileMaterializing(&mu)

	require.Equal(t, []int{1, 2, 3}, s.MustCollect())
	require.Equal(t, 3, elementsSeen)

	// And released once the drain is over
	require.True(t, mu.TryLock())
	mu.Unlock()
}

func TestStream_Untyped(t *testing.T) {
	s := Just(1, 2, 3).
		TakeUntil(func(i int) bool { return i == 2 }).
		Untyped()

	require.Equal(t, []any{1, 2}, s.MustCollect())

	// Untyped is a plain mapping, the size hint survives it
	hint := Just(1, 2, 3).Untyped().SizeHint()
	require.Equal(t, 3, hint.Lower)
}

func TestStream_FromLazy(t *testing.T) {
	require.Equal(t, []int{42}, FromLazy(lazy.Just(42)).MustCollect())
	require.Empty(t, FromLazy(lazy.Empty[int]()).MustCollect())
}
