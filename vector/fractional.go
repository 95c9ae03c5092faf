// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"
	"math"
)

// Fractional3D is a position in lattice coordinates.
type Fractional3D struct {
	A, B, C float64
}

// NewFractional3D is a shorthand constructor.
func NewFractional3D(a, b, c float64) Fractional3D {
	return Fractional3D{A: a, B: b, C: c}
}

// Add returns v + o.
func (v Fractional3D) Add(o Fractional3D) Fractional3D {
	return Fractional3D{A: v.A + o.A, B: v.B + o.B, C: v.C + o.C}
}

// Sub returns v - o.
func (v Fractional3D) Sub(o Fractional3D) Fractional3D {
	return Fractional3D{A: v.A - o.A, B: v.B - o.B, C: v.C - o.C}
}

// Scale returns v * f.
func (v Fractional3D) Scale(f float64) Fractional3D {
	return Fractional3D{A: v.A * f, B: v.B * f, C: v.C * f}
}

// Coordinates returns the components as an array.
func (v Fractional3D) Coordinates() [3]float64 {
	return [3]float64{v.A, v.B, v.C}
}

// TrimToUnitCell wraps every coordinate into [0,1) using tolerance.
func (v Fractional3D) TrimToUnitCell(tolerance float64) Fractional3D {
	return Fractional3D{
		A: PeriodicTrim(v.A, 0, 1, tolerance),
		B: PeriodicTrim(v.B, 0, 1, tolerance),
		C: PeriodicTrim(v.C, 0, 1, tolerance),
	}
}

// IsFinite reports whether no component is NaN or ±Inf.
func (v Fractional3D) IsFinite() bool {
	return isFinite(v.A) && isFinite(v.B) && isFinite(v.C)
}

// String implements fmt.Stringer.
func (v Fractional3D) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v.A, v.B, v.C)
}

// PeriodicTrim wraps value into [lower, upper) in steps of (upper-lower).
// Results within tolerance of either bound are returned as lower. A range
// narrower than tolerance returns upper unchanged.
func PeriodicTrim(value, lower, upper, tolerance float64) float64 {
	span := upper - lower
	if math.Abs(span) <= tolerance {
		return upper
	}
	value = math.Mod(value-lower, span)
	if value < 0 {
		value += span
	}
	value += lower
	if math.Abs(value-upper) <= tolerance || math.Abs(value-lower) <= tolerance {
		return lower
	}

	return value
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
