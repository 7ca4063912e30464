package natural

// Compare returns -1 when a orders before b in natural order, 0 when they
// are equal, and +1 when a orders after b.
//
// Natural order reads maximal runs of ASCII digits as whole numbers and
// compares them by magnitude, so "file2" orders before "file11". Everything
// outside digit runs is compared byte by byte. Numbers that are equal in
// value but spelled with different numbers of leading zeros are kept
// distinct: the spelling with more leading zeros orders first.
//
// The comparison makes a single pass over both inputs and does not allocate.
func Compare[S ~string | ~[]byte](a, b S) int {
	return cmp(a, b, false)
}

// CompareFold is Compare with ASCII letter case folded, so 'A' through 'Z'
// compare equal to 'a' through 'z'. Inputs differing only in ASCII case are
// reported as equal.
func CompareFold[S ~string | ~[]byte](a, b S) int {
	return cmp(a, b, true)
}

// Less reports whether a orders strictly before b in natural order.
func Less[S ~string | ~[]byte](a, b S) bool {
	return cmp(a, b, false) < 0
}

// LessFold reports whether a orders strictly before b in natural order with
// ASCII letter case folded.
func LessFold[S ~string | ~[]byte](a, b S) bool {
	return cmp(a, b, true) < 0
}

// Equal reports whether a and b are equal in natural order. Without folding
// this coincides with byte equality.
func Equal[S ~string | ~[]byte](a, b S) bool {
	return cmp(a, b, false) == 0
}

// EqualFold reports whether a and b are equal in natural order with ASCII
// letter case folded, so "Host2" equals "host2" but not "host02".
func EqualFold[S ~string | ~[]byte](a, b S) bool {
	return cmp(a, b, true) == 0
}

// cmp walks a and b with one cursor each. Digit runs facing digit runs are
// handed to compareDigits; any other pair of positions is an ordinary byte
// comparison. When one side runs out the shorter input orders first.
func cmp[S ~string | ~[]byte](a, b S, fold bool) int {
	i, j := 0, 0

	for i < len(a) && j < len(b) {
		ca, cb := a[i], b[j]

		if isDigit(ca) && isDigit(cb) {
			ord, nextA, nextB := compareDigits(a, b, i, j)
			if ord != 0 {
				return ord
			}

			i, j = nextA, nextB

			continue
		}

		if fold {
			ca, cb = foldByte(ca), foldByte(cb)
		}

		if ca != cb {
			if ca < cb {
				return -1
			}

			return 1
		}

		i++
		j++
	}

	switch {
	case i < len(a):
		return 1
	case j < len(b):
		return -1
	default:
		return 0
	}
}

// compareDigits compares the maximal digit runs starting at a[i] and b[j],
// both of which must begin on a digit. It returns the three-way ordering of
// the runs and the cursor positions just past them.
//
// After skipping leading zeros, a longer significant run is the larger
// number, and equally long runs are decided by their first differing digit.
// Only run lengths are counted, never parsed values, so arbitrarily long
// runs compare without overflow. Numerically equal runs fall back to the
// leading-zero count, where more zeros orders first.
func compareDigits[S ~string | ~[]byte](a, b S, i, j int) (ord, nextA, nextB int) {
	startA := i
	for i < len(a) && a[i] == '0' {
		i++
	}

	startB := j
	for j < len(b) && b[j] == '0' {
		j++
	}

	zerosA, zerosB := i-startA, j-startB

	sigA := i
	for i < len(a) && isDigit(a[i]) {
		i++
	}

	sigB := j
	for j < len(b) && isDigit(b[j]) {
		j++
	}

	// More significant digits means a larger number.
	if lenA, lenB := i-sigA, j-sigB; lenA != lenB {
		if lenA < lenB {
			return -1, i, j
		}

		return 1, i, j
	}

	// Same magnitude: the first differing digit decides.
	for k := 0; sigA+k < i; k++ {
		if da, db := a[sigA+k], b[sigB+k]; da != db {
			if da < db {
				return -1, i, j
			}

			return 1, i, j
		}
	}

	// Numerically equal, e.g. "007" and "7". More leading zeros orders
	// first, which keeps distinct spellings distinct.
	switch {
	case zerosA > zerosB:
		return -1, i, j
	case zerosA < zerosB:
		return 1, i, j
	default:
		return 0, i, j
	}
}

// isDigit reports whether c is an ASCII decimal digit.
func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// foldByte maps ASCII upper-case letters to lower case and leaves every
// other byte unchanged.
func foldByte(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}

	return c
}
