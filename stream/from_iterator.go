package stream

import (
	"context"
	"io"
	"iter"

	"github.com/hdevalke/take-until/internal/util"
)

// FromIterator creates a stream sourced from a standard range-over-func iterator.
// Note that unlike slice sourced streams, the resulting stream can only be
// materialized once, since iter.Seq carries no rewind capability.
func FromIterator[E any](seq iter.Seq[E]) Stream[E] {
	next, stop := iter.Pull(seq)
	return NewSimpleStream(func(ctx context.Context) (E, error) {
		if ctx.Err() != nil {
			return util.DefaultValue[E](), ctx.Err()
		}
		e, ok := next()
		if !ok {
			return util.DefaultValue[E](), io.EOF
		}
		return e, nil
	}, WithCloseFuncOption(func() {
		stop()
	}))
}
