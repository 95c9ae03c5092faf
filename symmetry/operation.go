// SPDX-License-Identifier: MIT

package symmetry

import (
	"fmt"
	"math"

	"github.com/seb-eis/Mocassin-sub007/vector"
)

// DefaultTrimTolerance absorbs coordinates extremely close to a cell boundary
// into the 0 boundary when trimming into the unit cell.
const DefaultTrimTolerance = 1.0e-10

// Operation is an immutable affine symmetry operation on fractional
// coordinates. The coefficients are stored row wise as
//
//	| m0 m1  m2  m3  |
//	| m4 m5  m6  m7  |
//	| m8 m9 m10 m11 |
//
// and applied as M·(a,b,c,1).
type Operation struct {
	literal       string
	core          [12]float64
	trimTolerance float64
}

// NewOperation builds an operation from exactly 12 finite coefficients.
func NewOperation(coefficients []float64) (Operation, error) {
	if len(coefficients) != 12 {
		return Operation{}, fmt.Errorf("got %d: %w", len(coefficients), ErrOperationSize)
	}
	var op Operation
	for i, v := range coefficients {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Operation{}, fmt.Errorf("coefficient %d: %w", i, ErrNonFinite)
		}
		op.core[i] = v
	}
	op.trimTolerance = DefaultTrimTolerance
	op.literal = formatLiteral(op.core)

	return op, nil
}

// Identity returns the x,y,z operation.
func Identity() Operation {
	op, _ := NewOperation([]float64{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0})
	return op
}

// Literal returns the coordinate-triplet description.
func (o Operation) Literal() string { return o.literal }

// String implements fmt.Stringer.
func (o Operation) String() string { return o.literal }

// Coefficients returns a copy of the 12 matrix entries.
func (o Operation) Coefficients() [12]float64 { return o.core }

// TrimTolerance returns the tolerance used by ApplyTrimmed.
func (o Operation) TrimTolerance() float64 { return o.trimTolerance }

// WithTrimTolerance returns a copy using a different trim tolerance.
// Panics on a negative or non-finite tolerance (programmer error).
func (o Operation) WithTrimTolerance(tolerance float64) Operation {
	if tolerance < 0 || math.IsNaN(tolerance) || math.IsInf(tolerance, 0) {
		panic(panicTrimToleranceInvalid)
	}
	o.trimTolerance = tolerance

	return o
}

// ApplyUntrimmed applies the operation without wrapping into the unit cell.
func (o Operation) ApplyUntrimmed(v vector.Fractional3D) vector.Fractional3D {
	m := &o.core
	return vector.Fractional3D{
		A: v.A*m[0] + v.B*m[1] + v.C*m[2] + m[3],
		B: v.A*m[4] + v.B*m[5] + v.C*m[6] + m[7],
		C: v.A*m[8] + v.B*m[9] + v.C*m[10] + m[11],
	}
}

// ApplyTrimmed applies the operation and wraps the result into [0,1).
func (o Operation) ApplyTrimmed(v vector.Fractional3D) vector.Fractional3D {
	return o.ApplyUntrimmed(v).TrimToUnitCell(o.trimTolerance)
}

// ApplyTrimmedWithShift is ApplyTrimmed that also returns the lattice shift
// trimmed - untrimmed that was applied.
func (o Operation) ApplyTrimmedWithShift(v vector.Fractional3D) (trimmed, shift vector.Fractional3D) {
	untrimmed := o.ApplyUntrimmed(v)
	trimmed = untrimmed.TrimToUnitCell(o.trimTolerance)

	return trimmed, trimmed.Sub(untrimmed)
}

// ApplySequence applies the operation untrimmed to every point of seq.
func (o Operation) ApplySequence(seq []vector.Fractional3D) []vector.Fractional3D {
	out := make([]vector.Fractional3D, len(seq))
	for i, v := range seq {
		out[i] = o.ApplyUntrimmed(v)
	}

	return out
}

// Shifted returns the operation with offset added to its translation part.
func (o Operation) Shifted(offset vector.Fractional3D) Operation {
	o.core[3] += offset.A
	o.core[7] += offset.B
	o.core[11] += offset.C
	o.literal = formatLiteral(o.core)

	return o
}

// Equal reports whether all 12 coefficients are equal under comparer.
func (o Operation) Equal(other Operation, comparer vector.NumericComparer) bool {
	for i := range o.core {
		if !comparer.Equal(o.core[i], other.core[i]) {
			return false
		}
	}

	return true
}

// IsIdentity reports whether the operation equals x,y,z under comparer.
func (o Operation) IsIdentity(comparer vector.NumericComparer) bool {
	return o.Equal(Identity(), comparer)
}
