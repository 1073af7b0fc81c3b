package stream

import (
	"context"
	"io"
	"slices"

	"github.com/hdevalke/take-until/internal/util"
)

func Just[T any](slice ...T) Stream[T] {
	return NewStream[T](&justStream[T]{slcOrig: slice})
}

// FromSlice creates a stream sourced from a slice. The slice is cloned up front,
// so later mutations of the original do not leak in, and cloned again per
// materialization, so the stream can be collected multiple times.
func FromSlice[T any](slice []T) Stream[T] {
	return NewStream[T](&justStream[T]{slcOrig: slices.Clone(slice)})
}

type justStream[T any] struct {
	slcOrig []T
	slc     []T
	opened  bool
}

func (j *justStream[T]) Open(_ context.Context) error {
	if j.slcOrig != nil {
		j.slc = slices.Clone(j.slcOrig)
	}
	j.opened = true
	return nil
}

func (j *justStream[T]) Close() {
	j.slc = nil
	j.opened = false
}

func (j *justStream[T]) Emit(ctx context.Context) (T, error) {
	if ctx.Err() != nil {
		return util.DefaultValue[T](), ctx.Err()
	}
	if len(j.slc) == 0 {
		return util.DefaultValue[T](), io.EOF
	}
	v := j.slc[0]
	j.slc = j.slc[1:]
	return v, nil
}

func (j *justStream[T]) SizeHint() SizeHint {
	if !j.opened {
		return ExactSizeHint(len(j.slcOrig))
	}
	return ExactSizeHint(len(j.slc))
}
