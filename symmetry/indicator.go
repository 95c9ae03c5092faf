// SPDX-License-Identifier: MIT

package symmetry

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/seb-eis/Mocassin-sub007/vector"
)

// MassPoint is a weighted Cartesian point.
type MassPoint struct {
	Mass     float64
	Position vector.Cartesian3D
}

// Indicator is a two value fingerprint of a mass-point arrangement.
// Arrangements related by a rotation, reflection or translation have equal
// indicators; the converse does not hold, so equal indicators only mark
// candidates for a full comparison.
type Indicator struct {
	// First is the length of the principal inertia moment vector around the
	// mass center.
	First float64
	// Second is point count × total mass × Σ mass·distance to the mass center.
	Second float64
}

// String implements fmt.Stringer.
func (i Indicator) String() string {
	return fmt.Sprintf("(%g, %g)", i.First, i.Second)
}

// NewIndicator computes the indicator of points.
func NewIndicator(points []MassPoint) (Indicator, error) {
	if len(points) == 0 {
		return Indicator{}, ErrTooFewPoints
	}
	masses := make([]float64, len(points))
	for i, p := range points {
		if p.Mass <= 0 || math.IsNaN(p.Mass) || math.IsInf(p.Mass, 0) {
			return Indicator{}, fmt.Errorf("point %d mass %g: %w", i, p.Mass, ErrInvalidMass)
		}
		masses[i] = p.Mass
	}
	total := floats.Sum(masses)

	var center vector.Cartesian3D
	for _, p := range points {
		center = center.Add(p.Position.Scale(p.Mass))
	}
	center = center.Scale(1 / total)

	var (
		tensor    = mat.NewSymDense(3, nil)
		distances = make([]float64, len(points))
	)
	for i, p := range points {
		r := p.Position.Sub(center)
		distances[i] = r.Length()
		addInertia(tensor, p.Mass, r)
	}

	var es mat.EigenSym
	if ok := es.Factorize(tensor, false); !ok {
		return Indicator{}, ErrDecompositionFailed
	}
	moments := es.Values(nil)

	return Indicator{
		First:  floats.Norm(moments, 2),
		Second: float64(len(points)) * total * floats.Dot(masses, distances),
	}, nil
}

// addInertia adds the contribution m·(|r|²·δ - r⊗r) to the upper triangle.
func addInertia(t *mat.SymDense, m float64, r vector.Cartesian3D) {
	c := [3]float64{r.X, r.Y, r.Z}
	sq := r.Dot(r)
	for i := 0; i < 3; i++ {
		for j := i; j < 3; j++ {
			v := -c[i] * c[j]
			if i == j {
				v += sq
			}
			t.SetSym(i, j, t.At(i, j)+m*v)
		}
	}
}

// IndicatorComparer orders and matches indicators with a numeric tolerance.
type IndicatorComparer struct {
	comparer vector.NumericComparer
}

// NewIndicatorComparer wraps comparer. Geometry indicators grow with the
// cell size, so a relative comparer is the usual choice.
func NewIndicatorComparer(comparer vector.NumericComparer) IndicatorComparer {
	return IndicatorComparer{comparer: comparer}
}

// Compare orders by First, then by Second.
func (c IndicatorComparer) Compare(a, b Indicator) int {
	if r := c.comparer.Compare(a.First, b.First); r != 0 {
		return r
	}

	return c.comparer.Compare(a.Second, b.Second)
}

// Equal reports whether both values match within tolerance.
func (c IndicatorComparer) Equal(a, b Indicator) bool { return c.Compare(a, b) == 0 }

// MassPointsFromFractional converts a fractional point path into unit-mass
// Cartesian points.
func MassPointsFromFractional(t *vector.Transformer, path []vector.Fractional3D) []MassPoint {
	out := make([]MassPoint, len(path))
	for i, v := range path {
		out[i] = MassPoint{Mass: 1, Position: t.ToCartesian(v)}
	}

	return out
}

// QuickFilterGeometries returns the indices of the candidates whose unit-mass
// indicator matches the indicator of reference. It is a pre-filter: the
// survivors still need a full symmetry comparison.
func QuickFilterGeometries(t *vector.Transformer, comparer IndicatorComparer,
	reference []vector.Fractional3D, candidates [][]vector.Fractional3D) ([]int, error) {
	ref, err := NewIndicator(MassPointsFromFractional(t, reference))
	if err != nil {
		return nil, fmt.Errorf("reference: %w", err)
	}
	var out []int
	for i, cand := range candidates {
		if len(cand) != len(reference) {
			continue
		}
		ind, err := NewIndicator(MassPointsFromFractional(t, cand))
		if err != nil {
			return nil, fmt.Errorf("candidate %d: %w", i, err)
		}
		if comparer.Equal(ref, ind) {
			out = append(out, i)
		}
	}

	return out, nil
}
