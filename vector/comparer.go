// SPDX-License-Identifier: MIT

package vector

import "math"

// DefaultTolerance is the ranged tolerance used when none is configured.
const DefaultTolerance = 1.0e-6

// NumericComparer compares floats within a tolerance. The zero value compares
// exactly; use NewRangeComparer or NewRelativeComparer.
type NumericComparer struct {
	tolerance float64
	relative  bool
}

// NewRangeComparer treats a and b as equal when |a-b| <= tolerance.
// Panics on a negative or non-finite tolerance (programmer error).
func NewRangeComparer(tolerance float64) NumericComparer {
	mustTolerance(tolerance)

	return NumericComparer{tolerance: tolerance}
}

// NewRelativeComparer treats a and b as equal when
// |a-b| <= tolerance*max(|a|,|b|).
// Panics on a negative or non-finite tolerance (programmer error).
func NewRelativeComparer(tolerance float64) NumericComparer {
	mustTolerance(tolerance)

	return NumericComparer{tolerance: tolerance, relative: true}
}

// Tolerance returns the configured tolerance.
func (c NumericComparer) Tolerance() float64 { return c.tolerance }

// Compare returns 0 if a and b are equal within tolerance, -1 if a < b, 1 otherwise.
func (c NumericComparer) Compare(a, b float64) int {
	if c.Equal(a, b) {
		return 0
	}
	if a < b {
		return -1
	}

	return 1
}

// Equal reports whether a and b are equal within tolerance.
func (c NumericComparer) Equal(a, b float64) bool {
	diff := math.Abs(a - b)
	if c.relative {
		return diff <= c.tolerance*math.Max(math.Abs(a), math.Abs(b))
	}

	return diff <= c.tolerance
}

// CompareFractional orders two fractional vectors lexicographically (A, B, C).
func (c NumericComparer) CompareFractional(a, b Fractional3D) int {
	if r := c.Compare(a.A, b.A); r != 0 {
		return r
	}
	if r := c.Compare(a.B, b.B); r != 0 {
		return r
	}

	return c.Compare(a.C, b.C)
}

// EqualFractional reports component-wise equality within tolerance.
func (c NumericComparer) EqualFractional(a, b Fractional3D) bool {
	return c.Equal(a.A, b.A) && c.Equal(a.B, b.B) && c.Equal(a.C, b.C)
}

// EqualCartesian reports component-wise equality within tolerance.
func (c NumericComparer) EqualCartesian(a, b Cartesian3D) bool {
	return c.Equal(a.X, b.X) && c.Equal(a.Y, b.Y) && c.Equal(a.Z, b.Z)
}

// EqualSequence reports positional equality of two fractional sequences.
func (c NumericComparer) EqualSequence(a, b []Fractional3D) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !c.EqualFractional(a[i], b[i]) {
			return false
		}
	}

	return true
}

// IndexOf returns the first index of v in seq or -1.
func (c NumericComparer) IndexOf(seq []Fractional3D, v Fractional3D) int {
	for i := range seq {
		if c.EqualFractional(seq[i], v) {
			return i
		}
	}

	return -1
}

func mustTolerance(tolerance float64) {
	if tolerance < 0 || !isFinite(tolerance) {
		panic(panicToleranceInvalid)
	}
}
