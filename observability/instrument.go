package observability

import (
	"context"

	"github.com/kbukum/lazystream/stream"
)

// Instrument returns s with every element counted on
// stream.elements.realized as it is first reached. Memoized elements are
// counted once no matter how often the result is traversed. A nil m returns
// s unchanged.
func Instrument[T any](ctx context.Context, m *StreamMetrics, sequence string, s *stream.Stream[T]) *stream.Stream[T] {
	if m == nil {
		return s
	}
	return s.Tap(func(T) {
		m.RecordRealized(ctx, sequence, 1)
	})
}
