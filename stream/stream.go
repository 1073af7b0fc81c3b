package stream

import (
	"context"
	"errors"
	"fmt"
	"io"

	takeuntil "github.com/hdevalke/take-until"
	"github.com/hdevalke/take-until/internal/util"
	"github.com/hdevalke/take-until/lazy"
)

type Stream[T any] struct {
	provider            ProviderFunc[T]
	allLifecycleElement []Lifecycle
	sizeHintFunc        func() SizeHint
}

// ProviderFunc produces the next element of a stream, or io.EOF when the stream is done.
// Once io.EOF is returned, every subsequent call must keep returning io.EOF.
type ProviderFunc[T any] func(ctx context.Context) (T, error)

func NewStream[T any](provider Provider[T]) Stream[T] {
	s := newStream(provider.Emit, []Lifecycle{provider})
	if sized, ok := provider.(Sized); ok {
		s.sizeHintFunc = sized.SizeHint
	}
	return s
}

func newStream[T any](streamProviderFunc ProviderFunc[T], allLifecycleElement []Lifecycle) Stream[T] {
	return Stream[T]{provider: streamProviderFunc, allLifecycleElement: allLifecycleElement}
}

func (s Stream[T]) withSizeHintFunc(f func() SizeHint) Stream[T] {
	s.sizeHintFunc = f
	return s
}

type CreateStreamOption struct {
	openFunc     func(ctx context.Context) error
	closeFunc    func()
	sizeHintFunc func() SizeHint
}

func WithOpenFuncOption(openFunc func(ctx context.Context) error) CreateStreamOption {
	return CreateStreamOption{openFunc: openFunc}
}

func WithCloseFuncOption(closeFunc func()) CreateStreamOption {
	return CreateStreamOption{closeFunc: closeFunc}
}

// WithSizeHintFuncOption attaches an advisory remaining-element estimate to the stream.
func WithSizeHintFuncOption(sizeHintFunc func() SizeHint) CreateStreamOption {
	return CreateStreamOption{sizeHintFunc: sizeHintFunc}
}

func NewSimpleStream[T any](streamProviderFunc ProviderFunc[T], options ...CreateStreamOption) Stream[T] {
	var openFunc func(ctx context.Context) error
	var closeFunc func()
	var sizeHintFunc func() SizeHint

	for _, option := range options {
		if option.openFunc != nil {
			openFunc = option.openFunc
		}
		if option.closeFunc != nil {
			closeFunc = option.closeFunc
		}
		if option.sizeHintFunc != nil {
			sizeHintFunc = option.sizeHintFunc
		}
	}

	var lifeCycleElements []Lifecycle
	if openFunc != nil || closeFunc != nil {
		lifeCycleElements = []Lifecycle{
			NewLifecycle(openFunc, closeFunc),
		}
	}
	return Stream[T]{
		provider:            streamProviderFunc,
		allLifecycleElement: lifeCycleElements,
		sizeHintFunc:        sizeHintFunc,
	}
}

// Consume consumes the entire stream and applies the provided function to each element (sometimes named ForEach)
// It returns an error if the stream materialization fails in any stage of the pipeline
// For empty streams, it returns immediately with no error
// For infinite streams, it will block until either ctx is cancelled, the stream is done or an error occurs
func (s Stream[T]) Consume(ctx context.Context, f func(T)) error {
	return s.ConsumeWithErr(ctx, func(v T) error {
		f(v)
		return nil
	})
}

// MustConsume is a convenience method that panics if the stream errors
func (s Stream[T]) MustConsume(f func(T)) {
	err := s.Consume(context.Background(), f)
	if err != nil {
		panic(err)
	}
}

// ConsumeWithErr consumes the entire stream and applies the provided function to each element
// Allows to return an error from the function to stop the pipeline
func (s Stream[T]) ConsumeWithErr(ctx context.Context, f func(T) error) error {
	return s.ConsumeWithErrAndCtx(ctx, func(_ context.Context, v T) error {
		return f(v)
	})
}

// ConsumeWithErrAndCtx consumes the entire stream and applies the provided function to each element,
// passing through the context allowing the function to gracefully cancel
// It returns an error if the stream materialization fails in any stage of the pipeline
func (s Stream[T]) ConsumeWithErrAndCtx(ctx context.Context, f func(ctx context.Context, value T) error) error {
	cancelFunc, err := doOpenStream[T](ctx, s)
	if err != nil {
		return err
	}

	// If we reach here, all lifecycle elements have been opened successfully
	// We can defer closing them until the end of the function
	defer func() {
		doCloseStream(s)
		cancelFunc()
	}()

	for {
		// Make sure to check if the context is done before trying to get the next item
		if ctx.Err() != nil {
			return ctx.Err()
		}
		v, err := s.provider(ctx)
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
		err = f(ctx, v)
		if err != nil {
			return err
		}
	}
}

func (s Stream[T]) FindFirst() lazy.Lazy[T] {
	return lazy.NewLazyOptional[T](func(ctx context.Context) (*T, error) {
		itemArr, err := s.Limit(1).Collect(ctx)
		if err != nil {
			return nil, err
		}
		if len(itemArr) > 0 {
			return &itemArr[0], nil
		}
		return nil, nil
	}).OrElseThrow(func() error {
		return errors.New("no \"first element\" in an empty stream")
	})
}

func (s Stream[T]) FindLast() lazy.Lazy[T] {
	return lazy.NewLazyOptional[T](func(ctx context.Context) (*T, error) {
		var result *T
		err := s.Consume(ctx, func(v T) {
			result = &v
		})
		if err != nil {
			return nil, err
		}
		return result, nil
	}).OrElseThrow(func() error {
		return errors.New("no \"last element\" in an empty stream")
	})
}

// Collect materializes the stream, and collects all elements of the stream into a slice
// It returns an error if the stream materialization fails in any stage of the pipeline
func (s Stream[T]) Collect(ctx context.Context) ([]T, error) {
	// The hint's lower bound is advisory but never overstated, safe for pre-sizing
	result := make([]T, 0, s.SizeHint().Lower)
	err := s.Consume(ctx, func(v T) {
		result = append(result, v)
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// MustCollect is a convenience method that panics if the stream errors
// should be used for testing purpose or when streams are static (e.g. slice sourced streams)
func (s Stream[T]) MustCollect() []T {
	result, err := s.Collect(context.Background())
	if err != nil {
		panic(err)
	}
	return result
}

func (s Stream[T]) Filter(predicate takeuntil.Predicate[T]) Stream[T] {
	return s.FilterWithErAndCtx(predicate.ToErrCtx())
}

func (s Stream[T]) FilterWithErr(predicate takeuntil.PredicateWithErr[T]) Stream[T] {
	return s.FilterWithErAndCtx(predicate.ToErrCtx())
}

func (s Stream[T]) FilterWithErAndCtx(predicate takeuntil.PredicateWithErrAndCtx[T]) Stream[T] {
	return newStream[T](func(ctx context.Context) (T, error) {
		for {
			v, err := s.provider(ctx)
			if err != nil {
				return v, err
			}
			shouldKeep, err := predicate(ctx, v)
			if err != nil {
				// Wrapping errors, e.g. we don't want EOF accidentally returned from here
				return util.DefaultValue[T](), fmt.Errorf("filter failed for Stream: %w", err)
			}
			if shouldKeep {
				return v, nil
			}
		}
	}, s.allLifecycleElement).withSizeHintFunc(func() SizeHint {
		// How many elements pass the filter is unknowable, only the upper bound survives
		return SizeHint{Upper: s.SizeHint().Upper}
	})
}

// Count counts the number of elements in the stream (materializes the stream)
func (s Stream[T]) Count(ctx context.Context) (int, error) {
	count := 0
	err := s.Consume(ctx, func(v T) {
		count++
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

// MustCount is a convenience method that panics if the stream errors.
// Should be used for testing purpose or when streams are static (e.g. slice sourced streams)
func (s Stream[T]) MustCount() int {
	count, err := s.Count(context.Background())
	if err != nil {
		panic(err)
	}
	return count
}

func (s Stream[T]) IsEmpty(ctx context.Context) (bool, error) {
	return s.FindFirst().IsEmpty(ctx)
}

func (s Stream[T]) WithAdditionalLifecycle(lch Lifecycle) Stream[T] {
	return newStream(s.provider, append(s.allLifecycleElement, lch)).withSizeHintFunc(s.sizeHintFunc)
}

func doOpenStream[T any](ctx context.Context, s Stream[T]) (context.CancelFunc, error) {
	ctxWithCancel, cancelFunc := context.WithCancel(ctx)
	// Running all lifecycle elements
	for lcIdx, l := range s.allLifecycleElement {
		err := l.Open(ctxWithCancel)
		if err != nil {
			// Close only the successfully opened lifecycle elements
			for i := 0; i < lcIdx; i++ {
				s.allLifecycleElement[i].Close()
			}
			// Cancel the context to stop any ongoing operations
			cancelFunc()

			return nil, fmt.Errorf("failed to open stream lifecycle element %d: %w", lcIdx, err)
		}
	}
	return cancelFunc, nil
}

func doCloseStream[T any](s Stream[T]) {
	for _, l := range s.allLifecycleElement {
		l.Close()
	}
}

// Peek allows to peek at the elements of the stream without consuming them
// Peek will not materialize the stream, and will be invoked only (and if) the stream is materialized
func (s Stream[T]) Peek(f func(v T)) Stream[T] {
	return Map(
		s,
		func(v T) T {
			f(v)
			return v
		})
}

// FromLazy converts the Lazy to a Stream (either a single element, empty stream, or an error stream)
func FromLazy[T any](l lazy.Lazy[T]) Stream[T] {
	alreadyFetched := false
	return NewSimpleStream(func(ctx context.Context) (T, error) {
		if alreadyFetched {
			return util.DefaultValue[T](), io.EOF
		}
		alreadyFetched = true

		lazyValue, err := l.GetOptional(ctx)
		if err != nil {
			return util.DefaultValue[T](), err
		}
		if lazyValue == nil {
			return util.DefaultValue[T](), io.EOF
		}
		return *lazyValue, nil
	}, WithSizeHintFuncOption(func() SizeHint {
		if alreadyFetched {
			return ExactSizeHint(0)
		}
		return AtMostSizeHint(1)
	}))
}
