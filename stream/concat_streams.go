package stream

import (
	"context"
	"io"

	"github.com/hdevalke/take-until/internal/util"
)

// Concat concatenates a stream of streams into a single stream. the streams are
// joined sequentially one after the other. Inner streams are opened lazily, one
// at a time, and closed as soon as they are exhausted.
func Concat[T any](streams Stream[Stream[T]]) Stream[T] {
	return NewStream[T](&concatProvider[T]{outer: streams})
}

// ConcatStreams concatenates multiple streams into a single stream. the streams are joined sequentially one after the other.
func ConcatStreams[T any](streams ...Stream[T]) Stream[T] {
	if len(streams) == 0 {
		return Empty[T]()
	}
	return Concat(Just(streams...))
}

type concatProvider[T any] struct {
	outer       Stream[Stream[T]]
	outerCancel context.CancelFunc
	currProv    ProviderFunc[T]
	currClose   func()
}

func (cp *concatProvider[T]) Open(ctx context.Context) error {
	cancel, err := doOpenStream(ctx, cp.outer)
	if err != nil {
		return err
	}
	cp.outerCancel = cancel
	return nil
}

func (cp *concatProvider[T]) Close() {
	if cp.currClose != nil {
		cp.currClose()
		cp.currClose = nil
		cp.currProv = nil
	}
	if cp.outerCancel != nil {
		doCloseStream(cp.outer)
		cp.outerCancel()
		cp.outerCancel = nil
	}
}

func (cp *concatProvider[T]) Emit(ctx context.Context) (T, error) {
	for {
		// Always check if the context is done before trying to advance
		if ctx.Err() != nil {
			return util.DefaultValue[T](), ctx.Err()
		}

		if cp.currProv == nil {
			nextStream, err := cp.outer.provider(ctx)
			if err != nil {
				// propagate the error (even if EOF, we're done when the outer stream is done)
				return util.DefaultValue[T](), err
			}
			cancel, err := doOpenStream(ctx, nextStream)
			if err != nil {
				return util.DefaultValue[T](), err
			}
			sub := nextStream
			cp.currProv = sub.provider
			cp.currClose = func() {
				doCloseStream(sub)
				cancel()
			}
		}

		v, err := cp.currProv(ctx)
		if err != nil {
			if err == io.EOF {
				// current stream is done, close it and continue with the next one
				cp.currClose()
				cp.currClose = nil
				cp.currProv = nil
				continue
			}
			return util.DefaultValue[T](), err
		}
		return v, nil
	}
}
