package suffix

import (
	"math/big"
	"strings"
)

// Infinity is the saturation sentinel returned for magnitudes past the
// last real tier. It has no numeric zero count and never matches a
// reverse lookup.
const Infinity = "∞"

// labels maps a 1-based tier index to its suffix: tier 1 = 10^0, tier 2
// = 10^3 ("K"), and so on in steps of 10^3. The final entry is the
// saturation sentinel.
var labels = []string{
	"", "K", "M", "B", "T", "Qa", "Qt", "Sx", "Sp", "Oc", "No",
	"De", "UDe", "DDe", "TDe", "QaDe", "QtDe", "SxDe", "SpDe", "OcDe", "NoDe",
	"Vg", "UVg", "DVg", "TVg", "QaVg", "QtVg", "SxVg", "SpVg", "OcVg", "NoVg",
	"Tg", "UTg", "DTg", "TTg", "QaTg", "QtTg", "SxTg", "SpTg", "OcTg", "NoTg",
	"Qd", "UQd", "DQd", "TQd", "QaQd", "QtQd", "SxQd", "SpQd", "OcQd", "NoQd",
	"Qi", "UQi", "DQi", "TQi", "QaQi", "QtQi", "SxQi", "SpQi", "OcQi", "NoQi",
	"Se", "USe", "DSe", "TSe", "QaSe", "QtSe", "SxSe", "SpSe", "OcSe", "NoSe",
	"St", "USt", "DSt", "TSt", "QaSt", "QtSt", "SxSt", "SpSt", "OcSt", "NoSt",
	"Og", "UOg", "DOg", "TOg", "QaOg", "QtOg", "SxOg", "SpOg", "OcOg", "NoOg",
	"Nn", "UNn", "DNn", "TNn", "QaNn", "QtNn", "SxNn", "SpNn", "OcNn", "NoNn",
	"Ce", "UCe", "DCe", "TCe", "QaCe", "QtCe", "SxCe", "SpCe", "OcCe", "NoCe",
	Infinity,
}

// Tiers is the number of real tiers (the sentinel excluded). The last
// real tier is 10^(3*(Tiers-1)).
var Tiers = len(labels) - 1

var (
	byText map[string]int
	powers []*big.Int
)

func init() {
	byText = make(map[string]int, Tiers)
	powers = make([]*big.Int, Tiers)

	ten := big.NewInt(10)
	for i, label := range labels[:Tiers] {
		if i > 0 {
			byText[strings.ToLower(label)] = 3 * i
		}

		powers[i] = new(big.Int).Exp(ten, big.NewInt(int64(3*i)), nil)
	}
}

// Label returns the suffix for tier t. The sentinel tier Tiers+1 is in
// range; anything else outside [1, Tiers+1] is not.
func Label(t int) (label string, ok bool) {
	if t < 1 || t > len(labels) {
		return "", false
	}

	return labels[t-1], true
}

// IsSaturated returns true when tier t is past the last real tier.
func IsSaturated(t int) bool {
	return t > Tiers
}

// Zeros returns the zero count implied by a suffix, looked up case
// insensitively: "k" and "K" both yield 3. The empty string and the
// sentinel never match.
func Zeros(text string) (zeros int, ok bool) {
	zeros, ok = byText[strings.ToLower(text)]

	return zeros, ok
}

// Power returns 10^(3*(t-1)), the lower magnitude boundary of tier t.
// The returned value is a copy and may be modified by the caller.
func Power(t int) (power *big.Int, ok bool) {
	if t < 1 || t > Tiers {
		return nil, false
	}

	return new(big.Int).Set(powers[t-1]), true
}
