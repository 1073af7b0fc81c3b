package takeuntil

import (
	"context"
)

type Mapper[SRC any, TGT any] func(src SRC) TGT
type MapperWithErr[SRC any, TGT any] func(src SRC) (TGT, error)
type MapperWithErrAndCtx[SRC any, TGT any] func(context.Context, SRC) (TGT, error)

type Predicate[SRC any] Mapper[SRC, bool]
type PredicateWithErr[SRC any] MapperWithErr[SRC, bool]
type PredicateWithErrAndCtx[SRC any] MapperWithErrAndCtx[SRC, bool]

func (m Mapper[SRC, TGT]) ToErrCtx() MapperWithErrAndCtx[SRC, TGT] {
	return func(_ context.Context, src SRC) (TGT, error) {
		return m(src), nil
	}
}

func (em MapperWithErr[SRC, TGT]) ToErrCtx() MapperWithErrAndCtx[SRC, TGT] {
	return func(_ context.Context, src SRC) (TGT, error) {
		return em(src)
	}
}

func (p Predicate[SRC]) ToErrCtx() PredicateWithErrAndCtx[SRC] {
	return func(_ context.Context, src SRC) (bool, error) {
		return p(src), nil
	}
}

func (p PredicateWithErr[SRC]) ToErrCtx() PredicateWithErrAndCtx[SRC] {
	return func(_ context.Context, src SRC) (bool, error) {
		return p(src)
	}
}

// Negate returns a predicate matching exactly when p does not.
// Useful for moving between the inclusive TakeUntil and the exclusive TakeWhile.
func (p Predicate[SRC]) Negate() Predicate[SRC] {
	return func(src SRC) bool {
		return !p(src)
	}
}
