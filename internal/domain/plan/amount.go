package plan

import (
	"math"
	"strconv"
	"strings"
	"unicode"
)

const minorUnitsPerMajor = 100

// MinorUnits converts a major-unit price ("19.99") into minor units (1900).
// Only the leading integer counts: the fraction is dropped, not rounded.
// Leading whitespace and a sign are accepted, trailing garbage is ignored.
// ok is false when the string does not start with an integer.
func MinorUnits(price string) (amount int64, ok bool, err error) {
	major, ok := leadingInt(price)
	if !ok {
		return 0, false, nil
	}

	n, err := strconv.ParseInt(major, 10, 64)
	if err != nil {
		return 0, true, ErrAmountOutOfRange
	}
	if n > math.MaxInt64/minorUnitsPerMajor || n < math.MinInt64/minorUnitsPerMajor {
		return 0, true, ErrAmountOutOfRange
	}

	return n * minorUnitsPerMajor, true, nil
}

func leadingInt(s string) (string, bool) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return "", false
	}

	return s[:end], true
}
