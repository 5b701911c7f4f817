// Package block provides the base-1000 limb representation and its
// exact arithmetic.
//
// A Number is an ordered sequence of limbs, least significant first,
// each holding three decimal digits:
//
//	"15000" -> [0, 15]       (000 | 15)
//	"1500"  -> [500, 1]      (500 | 1)
//	"999"   -> [999]
//	"0"     -> [0]
//
// A sequence of length n spans 3(n-1)+1 to 3n decimal digits, so the
// limb count alone determines the magnitude tier. The most significant
// limb is non-zero in canonical form, with [0] as the one canonical
// zero.
//
// Numbers are value types: no operation mutates an operand, results
// are freely copied and shared. Addition, subtraction, and comparison
// are exact at any magnitude; only Short's display rounding discards
// information, and it does so in integer arithmetic.
package block
