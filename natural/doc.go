// Package natural implements natural sort order for strings and byte slices.
//
// # Overview
//
// Natural order is the ordering a person expects from names that embed
// numbers: runs of ASCII digits are compared by numeric value and everything
// else byte by byte, so "file2.txt" sorts before "file11.txt" where plain
// lexical order puts "file11.txt" first.
//
// [Compare] is the core three-way comparator. It works on any string or byte
// slice type, makes a single pass over its inputs, and never allocates.
// [CompareFold] additionally folds ASCII letter case. On top of the
// comparators the package provides sorting helpers ([Sort], [SortBy],
// [SortByCached]) and key types ([String], [FoldedString], [Bytes],
// [FoldedBytes]) that implement
// [github.com/amp-labs/natural-sort/sortable.Sortable] for use in ordered
// collections such as [github.com/amp-labs/natural-sort/set.Tree].
//
// # Ordering rules
//
// Comparing two values walks both in lockstep:
//
//   - When both cursors sit on an ASCII digit, the maximal digit runs are
//     compared as numbers. Leading zeros do not change the value, so "002"
//     and "2" name the same number. Run lengths rather than parsed values
//     decide magnitude, so runs longer than any machine integer are fine.
//   - Any other pair of positions is an ordinary byte comparison.
//   - If one input runs out, the strict prefix orders before its extension.
//
// Two spellings of the same number, such as "007" and "7", are ordered by
// their leading zeros: more zeros first. Distinct strings therefore never
// compare equal, and without folding [Equal] coincides with byte equality.
//
// Digit detection covers ASCII '0' through '9' only. Multi-byte encodings
// pass through as plain bytes, which stays well-behaved for UTF-8 because a
// multi-byte rune never contains ASCII bytes, though the numeric treatment
// applies only to ASCII digits. The normalize package brings arbitrary text
// into a comparable form first.
//
// # Choosing an entry point
//
//   - One-off comparisons: [Compare], [Less], [Equal] and their Fold
//     variants.
//   - Sorting slices of strings or bytes: [Sort], [SortFold], [SortDesc].
//   - Sorting other element types by a derived name: [SortBy],
//     [SortStableBy], [SortByCached].
//   - Ordered collections: the [String], [FoldedString], [Bytes] and
//     [FoldedBytes] key types.
//
// For sorting very large slices across CPUs, see the psort package.
package natural
