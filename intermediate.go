package sourcesink

import "golang.org/x/exp/slices"

// MapperFunc maps element elem to type U.
type MapperFunc[T any, U any] func(elem T) U

// PredicateFunc returns true if elem matches a predicate.
type PredicateFunc[T any] func(elem T) bool

// LessFunc returns true if element a is "less" than element b.
type LessFunc[T any] func(a T, b T) bool

// Map returns a source that calls mapp for each element produced by src, mapping it to type U.
// Elements are mapped lazily, one at a time, as they are produced.
func Map[T any, U any](src SourceFunc[T], mapp MapperFunc[T, U]) SourceFunc[U] {
	return func(sink SinkFunc[U]) bool {
		return src(func(elem T) bool {
			return sink(mapp(elem))
		})
	}
}

// Filter returns a source that calls filter for each element produced by src, and only produces
// elements for which filter returns true.
func Filter[T any](src SourceFunc[T], filter PredicateFunc[T]) SourceFunc[T] {
	return func(sink SinkFunc[T]) bool {
		return src(func(elem T) bool {
			if !filter(elem) {
				return false
			}

			return sink(elem)
		})
	}
}

// Peek returns a source that calls peek for each element produced by src, in order, and produces
// the same elements.
func Peek[T any](src SourceFunc[T], peek ConsumerFunc[T]) SourceFunc[T] {
	return func(sink SinkFunc[T]) bool {
		return src(func(elem T) bool {
			peek(elem)
			return sink(elem)
		})
	}
}

// Take returns a source that produces the same elements as src, in order, up to num elements.
// Once num elements have been produced, src is stopped on the next element it produces, which
// makes Take safe to use with unbounded sources. A negative num is treated as zero.
//
// The countdown starts over every time the returned source is called.
func Take[T any](src SourceFunc[T], num int) SourceFunc[T] {
	return func(sink SinkFunc[T]) bool {
		left := num

		return src(func(elem T) bool {
			if left <= 0 {
				return true
			}

			left--

			return sink(elem)
		})
	}
}

// Skip returns a source that produces the same elements as src, in order, skipping the first num elements.
// A negative num is treated as zero.
//
// The countdown starts over every time the returned source is called.
func Skip[T any](src SourceFunc[T], num int) SourceFunc[T] {
	return func(sink SinkFunc[T]) bool {
		left := num

		return src(func(elem T) bool {
			if left > 0 {
				left--
				return false
			}

			return sink(elem)
		})
	}
}

// TakeWhile returns a source that produces the elements produced by src as long as pred returns true.
// src is stopped on the first element that does not match.
func TakeWhile[T any](src SourceFunc[T], pred PredicateFunc[T]) SourceFunc[T] {
	return func(sink SinkFunc[T]) bool {
		return src(func(elem T) bool {
			if !pred(elem) {
				return true
			}

			return sink(elem)
		})
	}
}

// SkipWhile returns a source that skips the elements produced by src as long as pred returns true,
// and produces every element after that.
func SkipWhile[T any](src SourceFunc[T], pred PredicateFunc[T]) SourceFunc[T] {
	return func(sink SinkFunc[T]) bool {
		skipping := true

		return src(func(elem T) bool {
			if skipping {
				if pred(elem) {
					return false
				}

				skipping = false
			}

			return sink(elem)
		})
	}
}

// Flatten returns a source that produces all elements produced by the sources produced by src, in order.
// If an inner source is stopped early, src is stopped as well.
func Flatten[T any](src SourceFunc[SourceFunc[T]]) SourceFunc[T] {
	return func(sink SinkFunc[T]) bool {
		return src(func(inner SourceFunc[T]) bool {
			return inner(sink)
		})
	}
}

// FlatMap returns a source that calls mapp for each element produced by src, mapping it to an
// intermediate source that produces elements of type U.
// The new source produces all elements produced by the intermediate sources, in order.
func FlatMap[T any, U any](src SourceFunc[T], mapp MapperFunc[T, SourceFunc[U]]) SourceFunc[U] {
	return Flatten(Map(src, mapp))
}

// Sort returns a source that consumes all elements from src, sorts them using less, and produces
// them in sorted order. Elements that are equal keep the order in which src produced them.
// src must be finite.
func Sort[T any](src SourceFunc[T], less LessFunc[T]) SourceFunc[T] {
	return func(sink SinkFunc[T]) bool {
		result := ToSlice(src)

		slices.SortStableFunc(result, less)

		return FromSlice(result)(sink)
	}
}

// Identity returns a mapper that returns the same element it receives.
func Identity[T any]() MapperFunc[T, T] {
	return func(elem T) T {
		return elem
	}
}
