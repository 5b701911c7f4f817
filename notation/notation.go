// Package notation parses human-entered number notation such as "15K"
// or "1,500,000" into plain digit strings.
//
// Both commas and periods are grouping separators and are stripped
// before anything else. A period is not a decimal point: "1.5K" parses
// as "15" followed by the K zeros, giving "15000".
package notation

import (
	"strings"

	"github.com/zeebo/errs"

	"github.com/Artheriax/Gigantix-Plus/suffix"
)

var (
	Error = errs.Class("notation")

	// ErrInvalidFormat is returned when the input contains no digits.
	ErrInvalidFormat = Error.New("invalid format")
)

// Parse converts a notation string into a plain digit string. The first
// maximal run of digits is the numeric part; the first maximal run of
// letters, if it matches a known suffix (case insensitive), appends the
// suffix's implied zeros. An unknown or absent suffix appends nothing.
//
// Leading zeros in the input are preserved; canonicalization is the
// caller's concern.
func Parse(input string) (digits string, err error) {
	clean := strings.NewReplacer(",", "", ".", "").Replace(input)

	digits = firstRun(clean, isDigit)
	if digits == "" {
		return "", Error.Wrap(ErrInvalidFormat)
	}

	if zeros, ok := suffix.Zeros(firstRun(clean, isAlpha)); ok {
		digits += strings.Repeat("0", zeros)
	}

	return digits, nil
}

// firstRun returns the first maximal run of bytes matching the class.
func firstRun(s string, match func(byte) bool) string {
	start := -1

	for i := 0; i < len(s); i++ {
		switch {
		case match(s[i]):
			if start < 0 {
				start = i
			}
		case start >= 0:
			return s[start:i]
		}
	}

	if start < 0 {
		return ""
	}

	return s[start:]
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
