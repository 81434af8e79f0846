package sourcesink

import "io"

// ConsumerFunc consumes element elem.
type ConsumerFunc[T any] func(elem T)

// AccumulatorFunc folds element elem into the accumulator acc, returning acc, or a new accumulator.
// Returning an error stops the source.
type AccumulatorFunc[T any, A any] func(elem T, acc A) (A, error)

// Reduce calls reduce for each element produced by src, folding it into accumulator acc, returning the final accumulator.
// If reduce returns an error, src is stopped, and Reduce returns the accumulator so far, and the error.
func Reduce[T any, A any](src SourceFunc[T], acc A, reduce AccumulatorFunc[T, A]) (A, error) {
	var err error

	src(func(elem T) bool {
		acc, err = reduce(elem, acc)
		return err != nil
	})

	return acc, err
}

// Each calls each for each element produced by src.
func Each[T any](src SourceFunc[T], each ConsumerFunc[T]) {
	src(func(elem T) bool {
		each(elem)
		return false
	})
}

// AnyMatch returns true as soon as pred returns true for an element produced by src, that is, an element matches.
// If an element matches, src is stopped.
func AnyMatch[T any](src SourceFunc[T], pred PredicateFunc[T]) bool {
	anyMatch := false

	src(func(elem T) bool {
		if pred(elem) {
			anyMatch = true
		}

		return anyMatch
	})

	return anyMatch
}

// AllMatch returns true if pred returns true for all elements produced by src, that is, all elements match.
// If any element does not match, src is stopped.
func AllMatch[T any](src SourceFunc[T], pred PredicateFunc[T]) bool {
	allMatch := true

	src(func(elem T) bool {
		if !pred(elem) {
			allMatch = false
		}

		return !allMatch
	})

	return allMatch
}

// First returns the first element produced by src, and stops src.
// If src produces nothing, it returns the zero value and false.
func First[T any](src SourceFunc[T]) (T, bool) {
	var first T

	found := false

	src(func(elem T) bool {
		first = elem
		found = true

		return true
	})

	return first, found
}

// Count returns the number of elements produced by src.
func Count[T any](src SourceFunc[T]) uint64 {
	count := uint64(0)

	Each(src, func(_ T) {
		count++
	})

	return count
}

// Print writes every element produced by src to w, one per line.
// If writing fails, src is stopped and the error is returned.
func Print[T any](w io.Writer, src SourceFunc[T]) error {
	var err error

	src(WriteTo[T](w, &err))

	return err
}
