package natural

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSort(t *testing.T) {
	t.Parallel()

	want := []string{"file00.txt", "file1.txt", "file1B.txt", "file0002.txt", "file11.txt"}

	input := slices.Clone(want)
	slices.Reverse(input)

	Sort(input)

	assert.Equal(t, want, input)
	assert.True(t, IsSorted(input))
}

func TestSort_Corpus(t *testing.T) {
	t.Parallel()

	input := slices.Clone(orderingCorpus)
	slices.Reverse(input)

	Sort(input)

	require.True(t, IsSorted(input))
	assert.ElementsMatch(t, orderingCorpus, input)

	for i := 1; i < len(input); i++ {
		assert.Negative(t, Compare(input[i-1], input[i]),
			"adjacent duplicates or inversion at %q, %q", input[i-1], input[i])
	}
}

func TestSort_Degenerate(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() {
		Sort[string](nil)
	})

	single := []string{"only"}
	Sort(single)
	assert.Equal(t, []string{"only"}, single)
}

func TestSort_Bytes(t *testing.T) {
	t.Parallel()

	input := [][]byte{
		[]byte("img12"),
		[]byte("img2"),
		[]byte("img1"),
	}

	Sort(input)

	want := [][]byte{
		[]byte("img1"),
		[]byte("img2"),
		[]byte("img12"),
	}
	assert.Equal(t, want, input)
}

func TestSortFold(t *testing.T) {
	t.Parallel()

	input := []string{"Delta1", "alpha2", "ALPHA10", "beta3"}

	SortFold(input)

	assert.Equal(t, []string{"alpha2", "ALPHA10", "beta3", "Delta1"}, input)
	assert.True(t, IsSortedFold(input))
	assert.False(t, IsSorted(input))
}

func TestSortStable(t *testing.T) {
	t.Parallel()

	input := slices.Clone(orderingCorpus)
	slices.Reverse(input)

	SortStable(input)

	unstable := slices.Clone(orderingCorpus)
	slices.Reverse(unstable)
	Sort(unstable)

	assert.Equal(t, unstable, input)
}

func TestSortDesc(t *testing.T) {
	t.Parallel()

	input := []string{"app-2", "app-10", "app-1"}

	SortDesc(input)

	assert.Equal(t, []string{"app-10", "app-2", "app-1"}, input)
}

type artifact struct {
	Name string
	Size int
}

func TestSortBy(t *testing.T) {
	t.Parallel()

	items := []artifact{
		{Name: "app-10.tar.gz", Size: 3},
		{Name: "app-2.tar.gz", Size: 1},
		{Name: "app-1.tar.gz", Size: 7},
	}

	SortBy(items, func(a artifact) string { return a.Name })

	names := make([]string, len(items))
	for i, item := range items {
		names[i] = item.Name
	}

	assert.Equal(t, []string{"app-1.tar.gz", "app-2.tar.gz", "app-10.tar.gz"}, names)
}

func TestSortStableBy(t *testing.T) {
	t.Parallel()

	items := []artifact{
		{Name: "x1", Size: 1},
		{Name: "x1", Size: 2},
		{Name: "a5", Size: 3},
		{Name: "x1", Size: 4},
	}

	SortStableBy(items, func(a artifact) string { return a.Name })

	want := []artifact{
		{Name: "a5", Size: 3},
		{Name: "x1", Size: 1},
		{Name: "x1", Size: 2},
		{Name: "x1", Size: 4},
	}
	assert.Equal(t, want, items)
}

func TestSortByCached(t *testing.T) {
	t.Parallel()

	items := []artifact{
		{Name: "x1", Size: 1},
		{Name: "x1", Size: 2},
		{Name: "a5", Size: 3},
		{Name: "x1", Size: 4},
	}

	keyCalls := 0
	SortByCached(items, func(a artifact) string {
		keyCalls++

		return a.Name
	})

	want := []artifact{
		{Name: "a5", Size: 3},
		{Name: "x1", Size: 1},
		{Name: "x1", Size: 2},
		{Name: "x1", Size: 4},
	}
	assert.Equal(t, want, items)
	assert.Equal(t, len(items), keyCalls)
}

func TestIsSorted(t *testing.T) {
	t.Parallel()

	assert.True(t, IsSorted[string](nil))
	assert.True(t, IsSorted([]string{"solo"}))
	assert.True(t, IsSorted([]string{"a1", "a2", "a10"}))
	assert.False(t, IsSorted([]string{"a10", "a2"}))

	assert.True(t, IsSortedFold([]string{"A1", "a2", "A10"}))
	assert.False(t, IsSortedFold([]string{"a10", "A2"}))
}
