package stream

// Iterator adapts the stream to the standard range-over-func convention,
// so streams compose with plain for loops: for v := range s.Iterator { ... }
func (s Stream[T]) Iterator(yield func(T) bool) {
	s.Filter(func(v T) bool {
		// Yield returns false if we need to stop (e.g. break within the loop)
		return !yield(v)
	}).FindFirst().
		MustGetOptional()
}

func (s Stream[T]) IndexedIterator(yield func(int, T) bool) {
	// Use a counter to keep track of the index
	index := -1
	s.Filter(func(v T) bool {
		index++
		return !yield(index, v)
	}).FindFirst().
		MustGetOptional()
}
