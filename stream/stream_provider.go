package stream

import "context"

// Provider is what needs to be implemented to expose a stream.
// it includes the lifecycle methods Open and Close.
// and a "generator method" Emit that returns the next item in the stream.
type Provider[T any] interface {
	Lifecycle

	// Emit returns the next item in the stream, or an error
	// When the stream is done, it should return io.EOF, and keep returning io.EOF on
	// any further call (fused behavior). The stream package handles the io.EOF error
	// and will not propagate it to the user.
	// Emit is never called concurrently from multiple goroutines.
	// it is the provider's responsibility to respect context cancellation if supported.
	// the stream package checks for context cancellation between calls to Emit.
	Emit(ctx context.Context) (T, error)
}

// Sized is an optional capability for providers that can estimate how many
// elements they may still produce. see SizeHint for the advisory-only contract.
type Sized interface {
	SizeHint() SizeHint
}

// Lifecycle is an interface that is used to add functionality to the stream lifecycle.
type Lifecycle interface {
	Open(ctx context.Context) error
	Close()
}

type lifecycleWrapper struct {
	openFunc  func(ctx context.Context) error
	closeFunc func()
}

func NewLifecycle(openFunc func(ctx context.Context) error, closeFunc func()) Lifecycle {
	return &lifecycleWrapper{openFunc: openFunc, closeFunc: closeFunc}
}

func (s *lifecycleWrapper) Open(ctx context.Context) error {
	if s.openFunc != nil {
		return s.openFunc(ctx)
	}
	return nil
}

func (s *lifecycleWrapper) Close() {
	if s.closeFunc != nil {
		s.closeFunc()
	}
}
