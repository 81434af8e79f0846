package sourcesink

import "golang.org/x/exp/constraints"

// SinkFunc consumes element elem.
// It returns true if the source feeding it should stop producing elements.
type SinkFunc[T any] func(elem T) bool

// SourceFunc produces elements into sink, in order, until it is exhausted or sink returns true.
// It returns true if production was stopped by sink, and false if the source ran out of elements.
// Every call is a fresh, independent production pass.
type SourceFunc[T any] func(sink SinkFunc[T]) bool

// FromSlice returns a source that produces the elements of slice, in order.
// The slice is not copied.
func FromSlice[T any](slice []T) SourceFunc[T] {
	return func(sink SinkFunc[T]) bool {
		for _, elem := range slice {
			if sink(elem) {
				return true
			}
		}

		return false
	}
}

// Produce returns a source that produces the elements of the given slices, in order.
func Produce[T any](slices ...[]T) SourceFunc[T] {
	sources := make([]SourceFunc[T], len(slices))
	for i, slice := range slices {
		sources[i] = FromSlice(slice)
	}

	return Concat(sources...)
}

// FromChannel returns a source that produces the elements received through ch, in order,
// until ch is closed.
// Receiving happens on the caller's goroutine, so the source blocks while ch has no elements.
func FromChannel[T any](ch <-chan T) SourceFunc[T] {
	return func(sink SinkFunc[T]) bool {
		for elem := range ch {
			if sink(elem) {
				return true
			}
		}

		return false
	}
}

// Iota returns an unbounded source that produces 0, 1, 2, and so on.
// It only returns once its sink returns true.
func Iota() SourceFunc[int] {
	return IotaFrom(0)
}

// IotaFrom returns an unbounded source that produces start, start+1, start+2, and so on.
// It only returns once its sink returns true.
func IotaFrom[T constraints.Integer](start T) SourceFunc[T] {
	return func(sink SinkFunc[T]) bool {
		for i := start; ; i++ {
			if sink(i) {
				return true
			}
		}
	}
}

// Range returns a source that produces low, low+1, ..., high-1.
// If low >= high, it produces nothing.
func Range[T constraints.Integer](low T, high T) SourceFunc[T] {
	return func(sink SinkFunc[T]) bool {
		for i := low; i < high; i++ {
			if sink(i) {
				return true
			}
		}

		return false
	}
}

// Repeat returns an unbounded source that produces value over and over.
func Repeat[T any](value T) SourceFunc[T] {
	return func(sink SinkFunc[T]) bool {
		for {
			if sink(value) {
				return true
			}
		}
	}
}

// Single returns a source that produces exactly value.
func Single[T any](value T) SourceFunc[T] {
	return func(sink SinkFunc[T]) bool {
		return sink(value)
	}
}

// Empty returns a source that produces nothing.
// It is the neutral element of Concat.
func Empty[T any]() SourceFunc[T] {
	return func(SinkFunc[T]) bool {
		return false
	}
}

// Concat returns a source that produces the elements produced by the given sources, in order.
// Each source is exhausted before the next one is called. If a source is stopped early,
// the remaining sources are not called.
func Concat[T any](sources ...SourceFunc[T]) SourceFunc[T] {
	sources = append([]SourceFunc[T](nil), sources...)

	return func(sink SinkFunc[T]) bool {
		for _, src := range sources {
			if src(sink) {
				return true
			}
		}

		return false
	}
}
