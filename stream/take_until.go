package stream

import (
	"context"
	"fmt"
	"io"

	takeuntil "github.com/hdevalke/take-until"
	"github.com/hdevalke/take-until/internal/util"
)

// TakeUntil accepts elements until the predicate is true, including the element
// that made the predicate true. Using it is equivalent to an inclusive TakeWhile
// with a negated condition:
//
//	Just(1, 2, 3, 4, -5, -6).TakeWhile(func(i int) bool { return i > 0 })    // [1 2 3 4]
//	Just(1, 2, 3, 4, -5, -6).TakeUntil(func(i int) bool { return i <= 0 })   // [1 2 3 4 -5]
//
// The returned stream is lazy: nothing is pulled from the source and the predicate
// is never evaluated until the stream is materialized. Once the stopping element
// has been emitted the stream is permanently exhausted, the source is never pulled
// again even if it could produce more elements.
func (s Stream[T]) TakeUntil(predicate takeuntil.Predicate[T]) Stream[T] {
	return s.TakeUntilWithErrAndCtx(predicate.ToErrCtx())
}

// TakeUntilWithErr is a TakeUntil variant for predicates that can fail.
// A predicate error aborts materialization and is reported to the consumer;
// the stream is not marked done by a failing evaluation.
func (s Stream[T]) TakeUntilWithErr(predicate takeuntil.PredicateWithErr[T]) Stream[T] {
	return s.TakeUntilWithErrAndCtx(predicate.ToErrCtx())
}

// TakeUntilWithErrAndCtx is a TakeUntil variant for predicates that can fail and
// want the materialization context.
func (s Stream[T]) TakeUntilWithErrAndCtx(predicate takeuntil.PredicateWithErrAndCtx[T]) Stream[T] {
	done := false
	return newStream[T](func(ctx context.Context) (T, error) {
		if done {
			// Fused: the latch is authoritative, the source is not consulted
			return util.DefaultValue[T](), io.EOF
		}
		v, err := s.provider(ctx)
		if err != nil {
			// covers both EOF and any other upstream error
			return util.DefaultValue[T](), err
		}
		stop, err := predicate(ctx, v)
		if err != nil {
			// Wrapping errors, e.g. we don't want EOF accidentally returned from here
			return util.DefaultValue[T](), fmt.Errorf("take-until predicate failed for Stream: %w", err)
		}
		if stop {
			// Still return the matching element, exhaustion starts on the next pull
			done = true
		}
		return v, nil
	}, s.allLifecycleElement).withSizeHintFunc(func() SizeHint {
		if done {
			return ExactSizeHint(0)
		}
		// The lower bound stays 0: how many elements precede the match is unknowable
		return SizeHint{Upper: s.SizeHint().Upper}
	})
}

// TakeWhile accepts elements as long as the predicate is true and stops before
// the first element for which it is false. That element is not emitted.
func (s Stream[T]) TakeWhile(predicate takeuntil.Predicate[T]) Stream[T] {
	return s.TakeWhileWithErrAndCtx(predicate.ToErrCtx())
}

// TakeWhileWithErr is a TakeWhile variant for predicates that can fail.
func (s Stream[T]) TakeWhileWithErr(predicate takeuntil.PredicateWithErr[T]) Stream[T] {
	return s.TakeWhileWithErrAndCtx(predicate.ToErrCtx())
}

// TakeWhileWithErrAndCtx is a TakeWhile variant for predicates that can fail and
// want the materialization context.
func (s Stream[T]) TakeWhileWithErrAndCtx(predicate takeuntil.PredicateWithErrAndCtx[T]) Stream[T] {
	done := false
	return newStream[T](func(ctx context.Context) (T, error) {
		if done {
			return util.DefaultValue[T](), io.EOF
		}
		v, err := s.provider(ctx)
		if err != nil {
			return util.DefaultValue[T](), err
		}
		keep, err := predicate(ctx, v)
		if err != nil {
			return util.DefaultValue[T](), fmt.Errorf("take-while predicate failed for Stream: %w", err)
		}
		if !keep {
			done = true
			return util.DefaultValue[T](), io.EOF
		}
		return v, nil
	}, s.allLifecycleElement).withSizeHintFunc(func() SizeHint {
		if done {
			return ExactSizeHint(0)
		}
		return SizeHint{Upper: s.SizeHint().Upper}
	})
}
