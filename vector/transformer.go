// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// CellParameters are the six lattice constants. Lengths in Ångström, angles
// in degrees.
type CellParameters struct {
	A     float64 `yaml:"a"`
	B     float64 `yaml:"b"`
	C     float64 `yaml:"c"`
	Alpha float64 `yaml:"alpha"`
	Beta  float64 `yaml:"beta"`
	Gamma float64 `yaml:"gamma"`
}

// Cubic returns cell parameters for a cubic lattice of edge length a.
func Cubic(a float64) CellParameters {
	return CellParameters{A: a, B: a, C: a, Alpha: 90, Beta: 90, Gamma: 90}
}

// Transformer converts between fractional and Cartesian coordinates.
// The a axis lies on x, b lies in the xy plane. Safe for concurrent use.
type Transformer struct {
	params  CellParameters
	toCart  *mat.Dense
	toFract *mat.Dense
}

// NewTransformer builds the metric for params.
// Returns ErrInvalidLattice or ErrSingularLattice.
func NewTransformer(params CellParameters) (*Transformer, error) {
	for _, l := range []float64{params.A, params.B, params.C} {
		if !(l > 0) || !isFinite(l) {
			return nil, fmt.Errorf("length %g: %w", l, ErrInvalidLattice)
		}
	}
	for _, deg := range []float64{params.Alpha, params.Beta, params.Gamma} {
		if !(deg > 0 && deg < 180) {
			return nil, fmt.Errorf("angle %g: %w", deg, ErrInvalidLattice)
		}
	}

	alpha, beta, gamma := radians(params.Alpha), radians(params.Beta), radians(params.Gamma)
	cx := params.C * math.Cos(beta)
	cy := params.C * (math.Cos(alpha) - math.Cos(beta)*math.Cos(gamma)) / math.Sin(gamma)
	czSquared := params.C*params.C - cx*cx - cy*cy
	if czSquared <= 0 {
		return nil, fmt.Errorf("angles (%g, %g, %g): %w", params.Alpha, params.Beta, params.Gamma, ErrInvalidLattice)
	}

	// columns are the a, b, c basis vectors
	toCart := mat.NewDense(3, 3, []float64{
		params.A, params.B * math.Cos(gamma), cx,
		0, params.B * math.Sin(gamma), cy,
		0, 0, math.Sqrt(czSquared),
	})
	var toFract mat.Dense
	if err := toFract.Inverse(toCart); err != nil {
		return nil, fmt.Errorf("%v: %w", err, ErrSingularLattice)
	}

	return &Transformer{
		params:  params,
		toCart:  toCart,
		toFract: &toFract,
	}, nil
}

// Parameters returns the lattice constants the transformer was built from.
func (t *Transformer) Parameters() CellParameters { return t.params }

// ToCartesian converts a fractional vector.
func (t *Transformer) ToCartesian(v Fractional3D) Cartesian3D {
	var out mat.VecDense
	out.MulVec(t.toCart, mat.NewVecDense(3, []float64{v.A, v.B, v.C}))

	return Cartesian3D{X: out.AtVec(0), Y: out.AtVec(1), Z: out.AtVec(2)}
}

// ToFractional converts a Cartesian vector.
func (t *Transformer) ToFractional(v Cartesian3D) Fractional3D {
	var out mat.VecDense
	out.MulVec(t.toFract, mat.NewVecDense(3, []float64{v.X, v.Y, v.Z}))

	return Fractional3D{A: out.AtVec(0), B: out.AtVec(1), C: out.AtVec(2)}
}

// Distance returns the Cartesian length of the fractional difference b - a.
func (t *Transformer) Distance(a, b Fractional3D) float64 {
	return t.ToCartesian(b.Sub(a)).Length()
}

// Volume returns the cell volume.
func (t *Transformer) Volume() float64 {
	return math.Abs(mat.Det(t.toCart))
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }
