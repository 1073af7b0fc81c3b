package stream

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func upperOf(t *testing.T, h SizeHint) int {
	t.Helper()
	require.NotNil(t, h.Upper)
	return *h.Upper
}

func TestSizeHint_SliceSourceIsExact(t *testing.T) {
	s := Just(1, 2, 3)
	hint := s.SizeHint()
	require.Equal(t, 3, hint.Lower)
	require.Equal(t, 3, upperOf(t, hint))

	require.Equal(t, SizeHint{}, NewSimpleStream(func(ctx context.Context) (int, error) {
		return 0, nil
	}).SizeHint())
}

func TestSizeHint_EmptyIsExactZero(t *testing.T) {
	hint := Empty[int]().SizeHint()
	require.Equal(t, 0, hint.Lower)
	require.Equal(t, 0, upperOf(t, hint))
}

// Mirrors the stop condition's defining hint behavior: upper bound follows the
// source, lower bound stays zero until the stream is done, then both are zero.
func TestSizeHint_TakeUntilProgression(t *testing.T) {
	s := Just[byte](0, 1, 2).TakeUntil(func(byte) bool { return true })

	hint := s.SizeHint()
	require.Equal(t, 0, hint.Lower)
	require.Equal(t, 3, upperOf(t, hint))

	// Materializing fires the predicate on the first element and latches done
	require.Equal(t, []byte{0}, s.MustCollect())

	hint = s.SizeHint()
	require.Equal(t, 0, hint.Lower)
	require.Equal(t, 0, upperOf(t, hint))
}

func TestSizeHint_TakeUntilUnknownSourceStaysUnknown(t *testing.T) {
	endless := NewSimpleStream(func(ctx context.Context) (int, error) {
		return 1, nil
	})
	hint := endless.TakeUntil(func(int) bool { return false }).SizeHint()
	require.Equal(t, 0, hint.Lower)
	require.Nil(t, hint.Upper)
}

func TestSizeHint_FilterKeepsOnlyUpperBound(t *testing.T) {
	hint := Just(1, 2, 3, 4).Filter(func(i int) bool { return i%2 == 0 }).SizeHint()
	require.Equal(t, 0, hint.Lower)
	require.Equal(t, 4, upperOf(t, hint))
}

func TestSizeHint_LimitClampsUpperBound(t *testing.T) {
	hint := Just(1, 2, 3, 4, 5).Limit(2).SizeHint()
	require.Equal(t, 2, hint.Lower)
	require.Equal(t, 2, upperOf(t, hint))

	hint = Just(1, 2).Limit(10).SizeHint()
	require.Equal(t, 2, hint.Lower)
	require.Equal(t, 2, upperOf(t, hint))
}

func TestSizeHint_SkipSubtracts(t *testing.T) {
	hint := Just(1, 2, 3, 4, 5).Skip(2).SizeHint()
	require.Equal(t, 3, hint.Lower)
	require.Equal(t, 3, upperOf(t, hint))

	hint = Just(1, 2).Skip(10).SizeHint()
	require.Equal(t, 0, hint.Lower)
	require.Equal(t, 0, upperOf(t, hint))
}

func TestSizeHint_MapPreservesSourceHint(t *testing.T) {
	hint := Map(Just(1, 2, 3), func(i int) int { return i * 2 }).SizeHint()
	require.Equal(t, 3, hint.Lower)
	require.Equal(t, 3, upperOf(t, hint))
}

func TestSizeHint_FromLazyIsAtMostOne(t *testing.T) {
	hint := FromLazy(Just(1).FindFirst()).SizeHint()
	require.Equal(t, 0, hint.Lower)
	require.Equal(t, 1, upperOf(t, hint))
}
