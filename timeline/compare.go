package timeline

import (
	"strings"
)

// Comparator orders two keys (group names or line labels). Returning 0 for
// keys that differ means "incomparable": the sort keeps their input order.
type Comparator func(a, b string) int

// AlphaNum compares strings treating embedded digit runs as numbers, so
// "item2" sorts before "item10". Non-digit runs compare bytewise.
func AlphaNum(a, b string) int {
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		ca, cb := a[i], b[j]
		if isDigit(ca) && isDigit(cb) {
			si := i
			for i < len(a) && isDigit(a[i]) {
				i++
			}
			sj := j
			for j < len(b) && isDigit(b[j]) {
				j++
			}
			if c := compareDigits(a[si:i], b[sj:j]); c != 0 {
				return c
			}
			continue
		}
		si := i
		for i < len(a) && !isDigit(a[i]) {
			i++
		}
		sj := j
		for j < len(b) && !isDigit(b[j]) {
			j++
		}
		if si == i || sj == j {
			// one side is a digit run, the other text: bytewise on the
			// current position decides
			if ca < cb {
				return -1
			}
			return 1
		}
		if c := strings.Compare(a[si:i], b[sj:j]); c != 0 {
			return c
		}
	}
	switch {
	case i < len(a):
		return 1
	case j < len(b):
		return -1
	}
	// numerically equal ("a01" vs "a1"): fall back to bytes for a total order
	return strings.Compare(a, b)
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func compareDigits(a, b string) int {
	a = strings.TrimLeft(a, "0")
	b = strings.TrimLeft(b, "0")
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	return strings.Compare(a, b)
}

// Alpha returns AlphaNum in the requested direction.
func Alpha(asc bool) Comparator {
	if asc {
		return AlphaNum
	}
	return func(a, b string) int { return AlphaNum(b, a) }
}
