package takeuntil

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPredicate_Negate(t *testing.T) {
	positive := Predicate[int](func(i int) bool { return i > 0 })

	require.True(t, positive(1))
	require.False(t, positive.Negate()(1))
	require.True(t, positive.Negate()(-1))
}

func TestToErrCtx(t *testing.T) {
	double := Mapper[int, int](func(i int) int { return i * 2 })
	v, err := double.ToErrCtx()(context.Background(), 3)
	require.NoError(t, err)
	require.Equal(t, 6, v)

	isEven := Predicate[int](func(i int) bool { return i%2 == 0 })
	ok, err := isEven.ToErrCtx()(context.Background(), 4)
	require.NoError(t, err)
	require.True(t, ok)
}
