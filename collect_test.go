package sourcesink

import (
	"errors"
	"strconv"
	"testing"

	"github.com/matryer/is"
)

type intList []int

func TestCollectInto(t *testing.T) {
	is := is.New(t)

	result := CollectInto[intList](Range(0, 3))

	is.Equal(result, intList{0, 1, 2})
}

func TestCollectInto_Empty(t *testing.T) {
	is := is.New(t)

	result := CollectInto[intList](Empty[int]())

	is.True(result != nil)
	is.Equal(len(result), 0)
}

func TestToSlice_RoundTrip(t *testing.T) {
	is := is.New(t)

	given := []string{"foo", "bar", "baz", "bar"}

	is.Equal(ToSlice(FromSlice(given)), given)
}

func TestCollectSlice(t *testing.T) {
	is := is.New(t)

	collect := CollectSlice[int]()

	ints := []int{}
	ints, _ = collect(1, ints)
	ints, _ = collect(2, ints)
	ints, _ = collect(3, ints)

	is.Equal(ints, []int{1, 2, 3})
}

func TestCollectMap(t *testing.T) {
	is := is.New(t)

	collect := CollectMap(Identity[int](), strconv.Itoa)

	mapp := map[int]string{}
	mapp, _ = collect(1, mapp)
	mapp, _ = collect(2, mapp)
	mapp, _ = collect(3, mapp)
	mapp, _ = collect(3, mapp)

	is.Equal(mapp, map[int]string{
		1: "1",
		2: "2",
		3: "3",
	})
}

func TestCollectMapNoDuplicateKeys(t *testing.T) {
	is := is.New(t)

	collect := CollectMapNoDuplicateKeys(strconv.Itoa, Identity[int]())

	mapp := map[string]int{}
	mapp, _ = collect(1, mapp)
	mapp, _ = collect(2, mapp)
	mapp, _ = collect(3, mapp)

	mapp, err := collect(3, mapp)

	is.Equal(mapp, map[string]int{
		"1": 1,
		"2": 2,
		"3": 3,
	})

	var dupErr *DuplicateKeyError[int, string]

	is.True(errors.As(err, &dupErr))

	is.Equal(dupErr.Element, 3)
	is.Equal(dupErr.Key, "3")
	is.Equal(dupErr.Error(), "duplicate key")
}

func TestCollectGroup(t *testing.T) {
	is := is.New(t)

	result, err := Reduce(Range(1, 6), map[string][]int{}, CollectGroup(evenOddStr, Identity[int]()))

	is.NoErr(err)
	is.Equal(result, map[string][]int{
		"odd":  {1, 3, 5},
		"even": {2, 4},
	})
}

func TestCollectPartition(t *testing.T) {
	is := is.New(t)

	result, err := Reduce(Range(1, 6), map[bool][]int{}, CollectPartition(even, Identity[int]()))

	is.NoErr(err)
	is.Equal(result, map[bool][]int{
		false: {1, 3, 5},
		true:  {2, 4},
	})
}

func evenOddStr(elem int) string {
	if elem%2 != 0 {
		return "odd"
	}

	return "even"
}
