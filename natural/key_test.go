package natural

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringKey(t *testing.T) {
	t.Parallel()

	a, b := String("file2"), String("file11")

	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, b.Compare(a))
	assert.True(t, a.LessThan(b))
	assert.False(t, b.LessThan(a))
	assert.False(t, a.Equals(b))
	assert.True(t, a.Equals(String("file2")))
}

// The Compare method expression plugs straight into slices.SortFunc.
func TestStringKey_SortFunc(t *testing.T) {
	t.Parallel()

	keys := []String{"v1.10.0", "v1.2.0", "v0.9.9"}

	slices.SortFunc(keys, String.Compare)

	assert.Equal(t, []String{"v0.9.9", "v1.2.0", "v1.10.0"}, keys)
}

func TestFoldedStringKey(t *testing.T) {
	t.Parallel()

	assert.True(t, FoldedString("Host2").Equals(FoldedString("host2")))
	assert.False(t, FoldedString("Host2").Equals(FoldedString("host02")))
	assert.True(t, FoldedString("HOST2").LessThan(FoldedString("host11")))
	assert.Zero(t, FoldedString("AbC").Compare(FoldedString("aBc")))
}

func TestBytesKey(t *testing.T) {
	t.Parallel()

	a, b := Bytes("img2"), Bytes("img12")

	assert.Equal(t, -1, a.Compare(b))
	assert.True(t, a.LessThan(b))
	assert.True(t, a.Equals(Bytes("img2")))
	assert.False(t, a.Equals(b))
}

func TestFoldedBytesKey(t *testing.T) {
	t.Parallel()

	assert.True(t, FoldedBytes("IMG2").Equals(FoldedBytes("img2")))
	assert.True(t, FoldedBytes("img2").LessThan(FoldedBytes("IMG12")))
	assert.Equal(t, 1, FoldedBytes("img3").Compare(FoldedBytes("IMG2")))
}
