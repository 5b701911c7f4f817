package block

// Add returns n + m. Limbs are added pairwise with a base-1000 carry;
// a final carry becomes a new most significant limb. Neither operand
// is modified.
func (n Number) Add(m Number) Number {
	size := len(n)
	if len(m) > size {
		size = len(m)
	}

	sum := make(Number, size, size+1)

	var carry int16
	for i := 0; i < size; i++ {
		s := carry
		if i < len(n) {
			s += n[i]
		}
		if i < len(m) {
			s += m[i]
		}

		carry = 0
		if s >= 1000 {
			s -= 1000
			carry = 1
		}

		sum[i] = s
	}

	if carry > 0 {
		sum = append(sum, carry)
	}

	return sum
}

// Sub returns n - m, or ErrUnderflow when n < m. The result is
// trimmed to canonical form, so n - n is [0]. Neither operand is
// modified.
func (n Number) Sub(m Number) (_ Number, err error) {
	if !n.GreaterOrEqual(m) {
		return nil, Error.Wrap(ErrUnderflow)
	}

	diff := make(Number, len(n))

	var borrow int16
	for i := 0; i < len(n); i++ {
		d := n[i] - borrow
		if i < len(m) {
			d -= m[i]
		}

		borrow = 0
		if d < 0 {
			d += 1000
			borrow = 1
		}

		diff[i] = d
	}

	return diff.Trim(), nil
}

// Cmp returns -1, 0, or +1 as n is less than, equal to, or greater
// than m. Length decides first: both operands must be canonical, so a
// longer number is strictly greater.
func (n Number) Cmp(m Number) int {
	switch {
	case len(n) < len(m):
		return -1
	case len(n) > len(m):
		return 1
	}

	for i := len(n) - 1; i >= 0; i-- {
		switch {
		case n[i] < m[i]:
			return -1
		case n[i] > m[i]:
			return 1
		}
	}

	return 0
}

// GreaterOrEqual returns true iff n >= m.
func (n Number) GreaterOrEqual(m Number) bool {
	return n.Cmp(m) >= 0
}
