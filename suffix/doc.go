// Package suffix provides the magnitude tier table.
//
// A tier is a step of 10^3. Tier indexes are 1-based: tier 1 covers
// values below 1000 and has the empty suffix, tier 2 is "K", tier 3 is
// "M", and so on up to tier 111 ("NoCe", 10^330). The final table entry
// is the saturation sentinel "∞" for magnitudes past the last real
// tier.
//
//	| Tier | Power  | Suffix |
//	|------|--------|--------|
//	|    1 | 10^0   |        |
//	|    2 | 10^3   | K      |
//	|    3 | 10^6   | M      |
//	|    4 | 10^9   | B      |
//	|    5 | 10^12  | T      |
//	|    6 | 10^15  | Qa     |
//	|  ... | ...    | ...    |
//	|  111 | 10^330 | NoCe   |
//	|  112 | -      | ∞      |
//
// Tiers 12 and up follow the short scale: each decade root (De, Vg, Tg,
// Qd, Qi, Se, St, Og, Nn, Ce) is modified by the unit prefixes U, D, T,
// Qa, Qt, Sx, Sp, Oc, No for the nine tiers above it.
//
// All lookup structures are built once at package initialization and
// never mutated, so they are safe for unsynchronized concurrent reads.
package suffix
