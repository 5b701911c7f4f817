package block

import (
	"fmt"
	"strconv"

	"github.com/Artheriax/Gigantix-Plus/suffix"
)

// Short renders the abbreviated notation: the value divided down to
// its tier boundary, rounded half up to two fractional digits and
// truncated to one for display, followed by the tier suffix.
// Magnitudes past the last tier render as the saturation sentinel.
//
// The division never leaves integer space: dividing by 10^(3*(t-1))
// keeps the top limb as the whole part and the next limb as
// thousandths, and the rounding threshold sits at the third fractional
// digit, so two limbs fully determine the result at any magnitude.
func (n Number) Short() string {
	if len(n) == 0 {
		return "0"
	}

	t := len(n)
	if suffix.IsSaturated(t) {
		return suffix.Infinity
	}

	label, _ := suffix.Label(t)

	whole := int(n[len(n)-1])
	thousandths := 0
	if len(n) > 1 {
		thousandths = int(n[len(n)-2])
	}

	hundredths := ((whole*1000+thousandths)*100 + 500) / 1000
	tenths := hundredths / 10

	if tenths%10 == 0 {
		return strconv.Itoa(tenths/10) + label
	}

	return fmt.Sprintf("%d.%d%s", tenths/10, tenths%10, label)
}
