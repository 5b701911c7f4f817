// Package gigantix represents and manipulates unbounded non-negative
// integers, typically progress counters that outgrow native numeric
// precision.
//
// Values are stored as base-1000 limb sequences (package block) and
// convert between three textual forms: human notation with magnitude
// suffixes ("15K", parsed by package notation), the canonical decimal
// string ("15000"), and the abbreviated short notation ("15K" again,
// or "∞" past the last defined tier in package suffix).
//
// Addition, subtraction, and comparison are exact at any magnitude.
// Multiplication, division, negative values, and fractions are out of
// scope, as is any storage format: callers own persistence and
// display.
package gigantix
