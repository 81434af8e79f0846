package sourcesink

import (
	"fmt"
	"os"
	"strconv"
)

func Example() {
	// construct an unbounded source of integers
	ints := Iota()

	// skip the first two, and keep only the odd ones
	ints = Filter(Skip(ints, 2), func(elem int) bool {
		return elem%2 == 1
	})

	// Take is what makes the pipeline finite
	ints = Take(ints, 3)

	// prepend a single element
	ints = Concat(Single(5), ints)

	// map elements by converting them to strings
	intStrs := Map(ints, strconv.Itoa)

	// nothing has been produced so far, draining the source runs the whole pipeline
	strs := ToSlice(intStrs)

	fmt.Printf("%+v\n", strs)
	// Output: [5 3 5 7]
}

func ExampleFlatMap() {
	pairs := FlatMap(Range(1, 4), func(elem int) SourceFunc[string] {
		return Map(Range(0, elem), func(i int) string {
			return fmt.Sprintf("%d/%d", elem, i)
		})
	})

	_ = Print(os.Stdout, pairs)
	// Output:
	// 1/0
	// 2/0
	// 2/1
	// 3/0
	// 3/1
	// 3/2
}
