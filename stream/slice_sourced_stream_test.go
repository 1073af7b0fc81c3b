package stream

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestJust_EmptySlice(t *testing.T) {
	s := Just[int]()
	result, err := s.Collect(context.Background())
	require.NoError(t, err)
	require.Empty(t, result)
}

func TestJust_MultipleElements(t *testing.T) {
	s := Just(1, 2, 3, 4, 5)
	result, err := s.Collect(context.Background())
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3, 4, 5}, result)
}

func TestFromSlice_NilSlice(t *testing.T) {
	s := FromSlice([]int(nil))
	result, err := s.Collect(context.Background())
	require.NoError(t, err)
	require.Empty(t, result)
}

// Test that modifying the original slice after creating the stream doesn't affect the stream
func TestFromSlice_IsolatedFromOriginalSliceChanges(t *testing.T) {
	original := []int{1, 2, 3, 4, 5}
	s := FromSlice(original)

	original[0] = 999
	original[4] = 888

	result, err := s.Collect(context.Background())
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3, 4, 5}, result)
}

// Test that the stream can be collected multiple times
func TestFromSlice_MultipleCollections(t *testing.T) {
	s := FromSlice([]int{1, 2, 3, 4, 5})

	result1, err := s.Collect(context.Background())
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3, 4, 5}, result1)

	result2, err := s.Collect(context.Background())
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3, 4, 5}, result2)
}

// Mutations made after construction never leak in, even between drains
func TestFromSlice_IsolationSurvivesRedrain(t *testing.T) {
	original := []int{1, 2, 3}
	s := FromSlice(original)

	require.Equal(t, []int{1, 2, 3}, s.MustCollect())

	original[1] = 999
	require.Equal(t, []int{1, 2, 3}, s.MustCollect())
}

// Test context cancellation
func TestFromSlice_ContextCancellation(t *testing.T) {
	s := FromSlice([]int{1, 2, 3, 4, 5})

	ctx, cancel := context.WithCancel(context.Background())
	cancel() // Cancel immediately

	_, err := s.Collect(ctx)
	require.Error(t, err)
	require.Equal(t, context.Canceled, err)
}

// Test with a struct type
func TestFromSlice_StructType(t *testing.T) {
	type testStruct struct {
		ID   int
		Name string
	}

	original := []testStruct{
		{ID: 1, Name: "Alice"},
		{ID: 2, Name: "Bob"},
	}

	s := FromSlice(original)
	result, err := s.Collect(context.Background())
	require.NoError(t, err)
	require.Equal(t, original, result)

	// Verify independence
	original[0].Name = "Changed"
	result2, err := s.Collect(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Alice", result2[0].Name)
}

// Test with a pointer type
func TestFromSlice_PointerType(t *testing.T) {
	val1, val2, val3 := 1, 2, 3
	original := []*int{&val1, &val2, &val3}

	s := FromSlice(original)
	result, err := s.Collect(context.Background())
	require.NoError(t, err)
	require.Len(t, result, 3)

	// The slice is cloned, but pointers within are shared
	require.Same(t, original[0], result[0])
}
