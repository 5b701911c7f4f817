package block

import (
	"strconv"
	"strings"

	"github.com/zeebo/errs"
)

var (
	Error = errs.Class("block")

	// ErrInvalidFormat is returned for an empty or non-digit string.
	ErrInvalidFormat = Error.New("invalid format")

	// ErrUnderflow is returned by Sub when the receiver is smaller
	// than the argument.
	ErrUnderflow = Error.New("underflow")
)

// Number is an unbounded non-negative integer stored as base-1000
// limbs, least significant first. Every limb is in [0, 999] and the
// most significant limb is non-zero, except that [0] is the canonical
// representation of zero.
type Number []int16

// Zero returns the canonical zero.
func Zero() Number {
	return Number{0}
}

// IsZero returns true when n represents zero.
func (n Number) IsZero() bool {
	for _, limb := range n {
		if limb != 0 {
			return false
		}
	}

	return true
}

// FromDigits converts a decimal digit string into limbs, grouping by
// three from the least significant end. The most significant group may
// have one or two digits. Leading zeros are not stripped: "0500"
// produces a non-canonical top limb of 0; use Trim where a canonical
// result is required.
func FromDigits(s string) (n Number, err error) {
	if s == "" {
		return nil, Error.Wrap(ErrInvalidFormat)
	}

	n = make(Number, 0, (len(s)+2)/3)

	for end := len(s); end > 0; end -= 3 {
		start := end - 3
		if start < 0 {
			start = 0
		}

		var limb int16
		for i := start; i < end; i++ {
			if s[i] < '0' || s[i] > '9' {
				return nil, Error.Wrap(ErrInvalidFormat)
			}

			limb = limb*10 + int16(s[i]-'0')
		}

		n = append(n, limb)
	}

	return n, nil
}

// Digits returns the decimal digit string: the most significant limb
// unpadded, every other limb zero padded to three digits. The result
// is canonical whenever n is.
func (n Number) Digits() string {
	// Note: an empty Number has no limbs to render, but we desire
	// zero to be an actual zero digit.
	if len(n) == 0 {
		return "0"
	}

	var b strings.Builder
	b.Grow(len(n) * 3)

	b.WriteString(strconv.Itoa(int(n[len(n)-1])))

	for i := len(n) - 2; i >= 0; i-- {
		limb := n[i]
		b.WriteByte('0' + byte(limb/100))
		b.WriteByte('0' + byte(limb/10%10))
		b.WriteByte('0' + byte(limb%10))
	}

	return b.String()
}

// Trim drops most-significant zero limbs, keeping at least one limb so
// that zero remains [0].
func (n Number) Trim() Number {
	end := len(n)
	for end > 1 && n[end-1] == 0 {
		end--
	}

	return n[:end]
}

// MarshalText implements encoding.TextMarshaler.
func (n Number) MarshalText() (data []byte, err error) {
	return []byte(n.Digits()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (n *Number) UnmarshalText(data []byte) (err error) {
	parsed, err := FromDigits(string(data))
	if err != nil {
		return err
	}

	*n = parsed

	return nil
}
