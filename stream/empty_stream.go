package stream

import (
	"context"
	"io"

	"github.com/hdevalke/take-until/internal/util"
)

func Empty[T any]() Stream[T] {
	return newStream(func(ctx context.Context) (T, error) {
		return util.DefaultValue[T](), io.EOF
	}, nil).withSizeHintFunc(func() SizeHint {
		return ExactSizeHint(0)
	})
}
