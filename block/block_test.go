package block

import (
	"fmt"
	"strings"
	"testing"

	"github.com/calebcase/oops"
	"github.com/stretchr/testify/require"
)

func TestFromDigits(t *testing.T) {
	type TC struct {
		name   string
		digits string
		limbs  Number
		err    error
		mark   error
	}

	tcs := []TC{
		{
			name:   "zero",
			digits: "0",
			limbs:  Number{0},
			mark:   oops.New("unexpected"),
		},
		{
			name:   "single digit",
			digits: "7",
			limbs:  Number{7},
			mark:   oops.New("unexpected"),
		},
		{
			name:   "full limb",
			digits: "999",
			limbs:  Number{999},
			mark:   oops.New("unexpected"),
		},
		{
			name:   "limb boundary",
			digits: "1000",
			limbs:  Number{0, 1},
			mark:   oops.New("unexpected"),
		},
		{
			name:   "short top group",
			digits: "1500",
			limbs:  Number{500, 1},
			mark:   oops.New("unexpected"),
		},
		{
			name:   "three limbs",
			digits: "123456789",
			limbs:  Number{789, 456, 123},
			mark:   oops.New("unexpected"),
		},
		{
			name:   "leading zeros kept",
			digits: "0500",
			limbs:  Number{500, 0},
			mark:   oops.New("unexpected"),
		},
		{
			name: "empty",
			err:  ErrInvalidFormat,
			mark: oops.New("unexpected"),
		},
		{
			name:   "stray letter",
			digits: "12a4",
			err:    ErrInvalidFormat,
			mark:   oops.New("unexpected"),
		},
		{
			name:   "decimal point",
			digits: "1.5",
			err:    ErrInvalidFormat,
			mark:   oops.New("unexpected"),
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			n, err := FromDigits(tc.digits)

			if tc.err != nil {
				require.ErrorIs(t, err, tc.err, tc.mark)

				return
			}

			require.NoError(t, err, tc.mark)
			require.Equal(t, tc.limbs, n, tc.mark)

			t.Run("round trip", func(t *testing.T) {
				require.Equal(t, tc.digits, n.Digits(), tc.mark)
			})
		})
	}
}

func TestDigitsRoundTrip(t *testing.T) {
	// Any canonical digit string must survive the limb conversion
	// unchanged, including ones far past every defined tier.
	inputs := []string{
		"1",
		"10",
		"100",
		"1000",
		"12345678901234567890123456789012345678901",
		"1" + strings.Repeat("0", 330),
		"9" + strings.Repeat("87654321", 50),
	}

	for _, s := range inputs {
		n, err := FromDigits(s)
		require.NoError(t, err, s)
		require.Equal(t, s, n.Digits(), s)
	}
}

func TestDigitsEmpty(t *testing.T) {
	require.Equal(t, "0", Number{}.Digits())
}

func TestTrim(t *testing.T) {
	require.Equal(t, Number{500}, Number{500, 0}.Trim())
	require.Equal(t, Number{500, 1}, Number{500, 1}.Trim())
	require.Equal(t, Number{0}, Number{0, 0, 0}.Trim())
	require.Equal(t, Number{0}, Number{0}.Trim())
}

func TestZero(t *testing.T) {
	require.Equal(t, Number{0}, Zero())
	require.True(t, Zero().IsZero())
	require.True(t, Number{0, 0}.IsZero())
	require.False(t, Number{1}.IsZero())
	require.False(t, Number{0, 1}.IsZero())
}

func TestTextMarshaling(t *testing.T) {
	n, err := FromDigits("1500")
	require.NoError(t, err)

	data, err := n.MarshalText()
	require.NoError(t, err)
	require.Equal(t, []byte("1500"), data)

	var back Number
	require.NoError(t, back.UnmarshalText(data))
	require.Equal(t, n, back)

	require.Error(t, back.UnmarshalText([]byte("15x")))
}

func BenchmarkFromDigits(b *testing.B) {
	s := "9" + strings.Repeat("123", 37)

	for n := 0; n < b.N; n++ {
		_, err := FromDigits(s)
		if err != nil {
			b.Fatalf("%+v", err)
		}
	}
}

func BenchmarkDigits(b *testing.B) {
	n, err := FromDigits("9" + strings.Repeat("123", 37))
	if err != nil {
		b.Fatalf("%+v", err)
	}

	for i := 0; i < b.N; i++ {
		_ = n.Digits()
	}
}
