package stream

import "github.com/hdevalke/take-until/internal/util"

// SizeHint is an advisory estimate of how many elements a stream may still produce.
// Lower must never overstate a guaranteed minimum; Upper is nil when no bound is known.
// Consumers must not rely on it for correctness, it is an optimization hint only
// (e.g. pre-sizing a slice before collecting).
type SizeHint struct {
	Lower int
	Upper *int
}

func UnknownSizeHint() SizeHint {
	return SizeHint{}
}

func ExactSizeHint(n int) SizeHint {
	return SizeHint{Lower: n, Upper: util.Pointer(n)}
}

func AtMostSizeHint(n int) SizeHint {
	return SizeHint{Upper: util.Pointer(n)}
}

// SizeHint returns the stream's advisory remaining-element estimate.
// Streams with no estimate report the unknown hint (0, no upper bound).
func (s Stream[T]) SizeHint() SizeHint {
	if s.sizeHintFunc == nil {
		return UnknownSizeHint()
	}
	return s.sizeHintFunc()
}
