package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/amp-labs/natural-sort/natural"
)

func TestUTF8(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "valid string unchanged",
			input: "file-2.txt",
			want:  "file-2.txt",
		},
		{
			name:  "valid multibyte unchanged",
			input: "żółć10",
			want:  "żółć10",
		},
		{
			name:  "invalid byte replaced",
			input: "a\xffb",
			want:  "a�b",
		},
		{
			name:  "truncated rune replaced",
			input: "abc\xc3",
			want:  "abc�",
		},
		{
			name:  "empty",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, UTF8(tt.input))
		})
	}
}

func TestNFC(t *testing.T) {
	t.Parallel()

	t.Run("composes decomposed accents", func(t *testing.T) {
		t.Parallel()

		decomposed := "café-2"
		composed := "café-2"

		assert.NotEqual(t, composed, decomposed)
		assert.Equal(t, composed, NFC(decomposed))
	})

	t.Run("composed input unchanged", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "café-2", NFC("café-2"))
	})
}

func TestFold(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "host-11", Fold("HOST-11"))
	assert.Equal(t, "strasse", Fold("Straße"))
	assert.Equal(t, "file2", Fold("file2"))
}

func TestKey(t *testing.T) {
	t.Parallel()

	// Invalid bytes are scrubbed first, then accents composed.
	assert.Equal(t, "é�", Key("é\xff"))
	assert.Equal(t, "plain-7", Key("plain-7"))
}

func TestFoldedKey(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "müller-2", FoldedKey("MÜLLER-2"))
	assert.Equal(t, FoldedKey("Straße10"), FoldedKey("STRASSE10"))
}

// Normalized keys make byte-level natural order match reader expectations
// for text that plain ASCII folding cannot handle.
func TestKeys_FeedNaturalCompare(t *testing.T) {
	t.Parallel()

	t.Run("decomposed and composed spellings compare equal", func(t *testing.T) {
		t.Parallel()

		a := Key("café-2.txt")
		b := Key("café-2.txt")

		assert.Equal(t, 0, natural.Compare(a, b))
	})

	t.Run("full folding before numeric ordering", func(t *testing.T) {
		t.Parallel()

		a := FoldedKey("Straße2")
		b := FoldedKey("STRASSE10")

		assert.Equal(t, -1, natural.Compare(a, b))
	})
}
