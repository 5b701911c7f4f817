package gigantix

import (
	"github.com/Artheriax/Gigantix-Plus/block"
	"github.com/Artheriax/Gigantix-Plus/notation"
)

// Parse converts a notation string such as "15K" or "1,500,000" into a
// canonical Number.
func Parse(input string) (n block.Number, err error) {
	digits, err := notation.Parse(input)
	if err != nil {
		return nil, err
	}

	n, err = block.FromDigits(digits)
	if err != nil {
		return nil, err
	}

	return n.Trim(), nil
}

// MustParse is Parse, panicking on error. Intended for package-level
// constants and tests.
func MustParse(input string) block.Number {
	n, err := Parse(input)
	if err != nil {
		panic(err)
	}

	return n
}

// Long returns the canonical decimal string for a notation input.
func Long(input string) (string, error) {
	n, err := Parse(input)
	if err != nil {
		return "", err
	}

	return n.Digits(), nil
}

// Short returns the abbreviated string for a notation input, or the
// saturation sentinel past the last magnitude tier.
func Short(input string) (string, error) {
	n, err := Parse(input)
	if err != nil {
		return "", err
	}

	return n.Short(), nil
}
