package stream

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromIterator(t *testing.T) {
	slc := []int{1, 2, 3}
	values := slices.Values(slc)
	require.Equal(t, slc, FromIterator[int](values).MustCollect())
}

func TestFromIterator_TakeUntilStopsPulling(t *testing.T) {
	produced := 0
	seq := func(yield func(int) bool) {
		for i := 1; ; i++ {
			produced++
			if !yield(i) {
				return
			}
		}
	}

	require.Equal(
		t,
		[]int{1, 2, 3},
		FromIterator[int](seq).
			TakeUntil(func(i int) bool { return i == 3 }).
			MustCollect(),
	)
	require.Equal(t, 3, produced)
}
