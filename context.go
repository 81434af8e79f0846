package sourcesink

import "context"

// WithContext returns a source that produces the same elements as src, in order, for as long as
// ctx is not done. Once ctx is done, src is stopped on the next element it produces, and that
// element is dropped.
func WithContext[T any](ctx context.Context, src SourceFunc[T]) SourceFunc[T] {
	return func(sink SinkFunc[T]) bool {
		return src(func(elem T) bool {
			if contextDone(ctx) {
				return true
			}

			return sink(elem)
		})
	}
}

// contextDone returns true if ctx.Err() != nil.
func contextDone(ctx context.Context) bool {
	return ctx.Err() != nil
}
