package sequence

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIterator(t *testing.T) {
	it := From([]int{5, 2, 8, 1, 4})

	assert.Equal(t, []int{5, 2, 8, 1, 4}, it.Collect())
	assert.Equal(t, []int{1, 2, 4, 5, 8}, it.Sort(func(a, b int) bool { return a < b }).Collect())

	even, odd := it.Partition(func(v int) bool { return v%2 == 0 })
	assert.Equal(t, []int{2, 8, 4}, even)
	assert.Equal(t, []int{5, 1}, odd)

	groups := GroupBy(it, func(v int) bool { return v > 3 })
	assert.Equal(t, []int{5, 8, 4}, groups[true])
	assert.Equal(t, []int{2, 1}, groups[false])
}

func TestSortIsStable(t *testing.T) {
	type item struct {
		key  int
		name string
	}
	in := []item{{2, "a"}, {1, "b"}, {2, "c"}, {1, "d"}}
	out := From(in).Sort(func(a, b item) bool { return a.key < b.key }).Collect()
	assert.Equal(t, []item{{1, "b"}, {1, "d"}, {2, "a"}, {2, "c"}}, out)
}

func TestEmpty(t *testing.T) {
	assert.Nil(t, From([]int(nil)).Collect())
	matches, rest := From([]int{}).Partition(func(int) bool { return true })
	assert.Empty(t, matches)
	assert.Empty(t, rest)
}
