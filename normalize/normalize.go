// Package normalize prepares arbitrary text for natural-order comparison.
//
// The comparators in the natural package operate on raw bytes, which is
// exactly right for ASCII and for well-formed UTF-8 in a single normal
// form. Real inputs are messier: mixed encodings, decomposed accents, and
// case differences beyond ASCII. This package brings such text into a
// canonical UTF-8 form first, so that byte-level natural order matches what
// a reader expects.
//
// Typical use:
//
//	a := normalize.Key(rawA)
//	b := normalize.Key(rawB)
//	ord := natural.Compare(a, b)
package normalize

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// UTF8 returns s with invalid byte sequences replaced by the Unicode
// replacement character. Valid strings are returned unchanged without
// allocating.
func UTF8(s string) string {
	if utf8.ValidString(s) {
		return s
	}

	return strings.ToValidUTF8(s, string(utf8.RuneError))
}

// NFC returns s in Unicode normalization form C, composing decomposed
// sequences so that equal-looking strings hold equal bytes: "e" followed by
// a combining acute accent becomes the single rune "é".
func NFC(s string) string {
	if norm.NFC.IsNormalString(s) {
		return s
	}

	return norm.NFC.String(s)
}

// Fold applies full Unicode case folding, mapping s to a caseless form:
// "Straße" becomes "strasse". Use it ahead of natural.Compare when the
// ASCII-only folding of natural.CompareFold is not enough.
func Fold(s string) string {
	return cases.Fold().String(s)
}

// Key chains UTF8 and NFC into a canonical comparison key.
func Key(s string) string {
	return NFC(UTF8(s))
}

// FoldedKey is Key followed by full case folding, for case-insensitive
// comparison across the whole of Unicode.
func FoldedKey(s string) string {
	return Fold(Key(s))
}
