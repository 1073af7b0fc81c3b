package stream

import (
	"context"

	takeuntil "github.com/hdevalke/take-until"
	"github.com/hdevalke/take-until/internal/util"
)

// Map maps the source stream to a target stream using the provided mapper function.
func Map[SRC any, TGT any](
	src Stream[SRC],
	mapper takeuntil.Mapper[SRC, TGT],
) Stream[TGT] {
	return MapWithErrAndCtx(src, mapper.ToErrCtx())
}

// MapWithErr maps the source stream to a target stream using the provided mapper function.
func MapWithErr[SRC any, TGT any](
	src Stream[SRC],
	mapper takeuntil.MapperWithErr[SRC, TGT],
) Stream[TGT] {
	return MapWithErrAndCtx(src, mapper.ToErrCtx())
}

// MapWithErrAndCtx maps the source stream to a target stream using the provided mapper function.
func MapWithErrAndCtx[SRC any, TGT any](
	src Stream[SRC],
	mapper takeuntil.MapperWithErrAndCtx[SRC, TGT],
) Stream[TGT] {
	return newStream[TGT](
		func(ctx context.Context) (TGT, error) {
			v, err := src.provider(ctx)
			if err != nil {
				return util.DefaultValue[TGT](), err
			}
			return mapper(ctx, v)
		}, src.allLifecycleElement,
	).withSizeHintFunc(src.SizeHint)
}

// MapWhileFiltering is a function that maps a Stream of SRC to a Stream of TGT while allowing to filter.
// filtering is done by returning nil from the mapper function.
// This is a convenience function to avoid chaining filter and the Map and do it in one go.
func MapWhileFiltering[SRC any, TGT any](
	src Stream[SRC],
	mapper takeuntil.Mapper[SRC, *TGT],
) Stream[TGT] {
	return MapWhileFilteringWithErrAndCtx(src, mapper.ToErrCtx())
}

// MapWhileFilteringWithErr is a function that maps a Stream of SRC to a Stream of TGT while allowing to filter.
// filtering is done by returning nil from the mapper function.
func MapWhileFilteringWithErr[SRC any, TGT any](
	src Stream[SRC],
	mapper takeuntil.MapperWithErr[SRC, *TGT],
) Stream[TGT] {
	return MapWhileFilteringWithErrAndCtx(src, mapper.ToErrCtx())
}

// MapWhileFilteringWithErrAndCtx is a function that maps a Stream of SRC to a Stream of TGT while allowing to filter while streaming.
// filtering is done by returning nil from the mapper function.
func MapWhileFilteringWithErrAndCtx[SRC any, TGT any](
	src Stream[SRC],
	mapper takeuntil.MapperWithErrAndCtx[SRC, *TGT],
) Stream[TGT] {
	return Map(

		// First we map the stream to a stream of pointers to TGT using the mapper
		MapWithErrAndCtx(src, mapper).

			// Then we filter the stream to remove nil values
			Filter(func(tgt *TGT) bool {
				return tgt != nil
			}),

		// Finally we map the stream to a stream of TGT by dereferencing the pointers
		func(p *TGT) TGT {
			return *p
		},
	)
}

// FlatMap maps a single element of the source stream to a stream of elements and flattens the result to a single stream.
func FlatMap[SRC any, TGT any](src Stream[SRC], mapper takeuntil.Mapper[SRC, Stream[TGT]]) Stream[TGT] {
	return Concat[TGT](Map(src, mapper))
}
