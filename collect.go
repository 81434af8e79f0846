package sourcesink

// A DuplicateKeyError is returned by accumulators to indicate that
// a key could not be added to a map because it already exists.
type DuplicateKeyError[T any, K comparable] struct {
	// Element is the source's element that caused the error.
	Element T

	// Key is the key that was already in the map.
	Key K
}

// CollectInto drains src into a new collection of type S, and returns it.
// The returned collection is never nil, even if src produces nothing.
func CollectInto[S ~[]T, T any](src SourceFunc[T]) S {
	result := []T{}

	src(AppendTo(&result))

	return S(result)
}

// ToSlice drains src into a new slice, and returns it.
func ToSlice[T any](src SourceFunc[T]) []T {
	return CollectInto[[]T](src)
}

// CollectSlice returns an accumulator that collects elements into a slice.
func CollectSlice[T any]() AccumulatorFunc[T, []T] {
	return func(elem T, acc []T) ([]T, error) {
		return append(acc, elem), nil
	}
}

// CollectMap returns an accumulator that collects elements into a map.
// Elements are mapped using key and value, respectively.
// If a key is already in the map, the map entry will be overwritten.
func CollectMap[T any, K comparable, V any](key MapperFunc[T, K], value MapperFunc[T, V]) AccumulatorFunc[T, map[K]V] {
	return func(elem T, acc map[K]V) (map[K]V, error) {
		acc[key(elem)] = value(elem)
		return acc, nil
	}
}

// CollectMapNoDuplicateKeys returns an accumulator that collects elements into a map.
// Elements are mapped using key and value, respectively.
// If a key is already in the map, the accumulator fails with a DuplicateKeyError.
func CollectMapNoDuplicateKeys[T any, K comparable, V any](key MapperFunc[T, K], value MapperFunc[T, V]) AccumulatorFunc[T, map[K]V] {
	return func(elem T, acc map[K]V) (map[K]V, error) {
		key := key(elem)

		if _, ok := acc[key]; ok {
			return acc, &DuplicateKeyError[T, K]{
				Element: elem,
				Key:     key,
			}
		}

		acc[key] = value(elem)

		return acc, nil
	}
}

// CollectGroup returns an accumulator that collects elements into a group map.
// Elements will be grouped into slices according to key.
func CollectGroup[T any, K comparable, V any](key MapperFunc[T, K], value MapperFunc[T, V]) AccumulatorFunc[T, map[K][]V] {
	return func(elem T, acc map[K][]V) (map[K][]V, error) {
		key := key(elem)
		acc[key] = append(acc[key], value(elem))

		return acc, nil
	}
}

// CollectPartition returns an accumulator that collects elements into a partition map.
// Elements will be grouped into slices according to pred.
func CollectPartition[T any, V any](pred PredicateFunc[T], value MapperFunc[T, V]) AccumulatorFunc[T, map[bool][]V] {
	return CollectGroup(MapperFunc[T, bool](pred), value)
}

// Error implements error.
func (e *DuplicateKeyError[T, K]) Error() string {
	return "duplicate key"
}
