package symmetry_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seb-eis/Mocassin-sub007/symmetry"
	"github.com/seb-eis/Mocassin-sub007/vector"
)

func unitPoints(coords ...vector.Cartesian3D) []symmetry.MassPoint {
	out := make([]symmetry.MassPoint, len(coords))
	for i, c := range coords {
		out[i] = symmetry.MassPoint{Mass: 1, Position: c}
	}

	return out
}

func TestNewIndicator_Dumbbell(t *testing.T) {
	ind, err := symmetry.NewIndicator(unitPoints(vector.Cartesian3D{X: 1}, vector.Cartesian3D{X: -1}))
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(8), ind.First, 1e-12)
	assert.InDelta(t, 8, ind.Second, 1e-12)
}

func TestNewIndicator_RigidMotionInvariant(t *testing.T) {
	square := unitPoints(
		vector.Cartesian3D{X: 0, Y: 0}, vector.Cartesian3D{X: 1, Y: 0},
		vector.Cartesian3D{X: 1, Y: 1}, vector.Cartesian3D{X: 0, Y: 1},
	)
	// rotated by 45° around z and moved
	h := math.Sqrt2 / 2
	moved := unitPoints(
		vector.Cartesian3D{X: 5, Y: 5, Z: 2}, vector.Cartesian3D{X: 5 + h, Y: 5 + h, Z: 2},
		vector.Cartesian3D{X: 5, Y: 5 + 2*h, Z: 2}, vector.Cartesian3D{X: 5 - h, Y: 5 + h, Z: 2},
	)
	rectangle := unitPoints(
		vector.Cartesian3D{X: 0, Y: 0}, vector.Cartesian3D{X: 2, Y: 0},
		vector.Cartesian3D{X: 2, Y: 0.5}, vector.Cartesian3D{X: 0, Y: 0.5},
	)

	a, err := symmetry.NewIndicator(square)
	require.NoError(t, err)
	b, err := symmetry.NewIndicator(moved)
	require.NoError(t, err)
	c, err := symmetry.NewIndicator(rectangle)
	require.NoError(t, err)

	cmp := symmetry.NewIndicatorComparer(vector.NewRelativeComparer(1e-9))
	assert.True(t, cmp.Equal(a, b), "%v vs %v", a, b)
	assert.False(t, cmp.Equal(a, c), "%v vs %v", a, c)
	assert.Equal(t, -cmp.Compare(a, c), cmp.Compare(c, a))
}

func TestNewIndicator_Errors(t *testing.T) {
	_, err := symmetry.NewIndicator(nil)
	assert.ErrorIs(t, err, symmetry.ErrTooFewPoints)

	_, err = symmetry.NewIndicator([]symmetry.MassPoint{{Mass: 0}})
	assert.ErrorIs(t, err, symmetry.ErrInvalidMass)
	_, err = symmetry.NewIndicator([]symmetry.MassPoint{{Mass: math.Inf(1)}})
	assert.ErrorIs(t, err, symmetry.ErrInvalidMass)
}

func TestQuickFilterGeometries(t *testing.T) {
	tr, err := vector.NewTransformer(vector.Cubic(4))
	require.NoError(t, err)

	reference := []vector.Fractional3D{{}, {A: 0.5}}
	candidates := [][]vector.Fractional3D{
		{{}, {B: 0.5}},
		{{}, {A: 0.5, B: 0.5}},
		{{}},
		{{C: 1}, {C: 0.5}},
	}
	got, err := symmetry.QuickFilterGeometries(tr, symmetry.NewIndicatorComparer(vector.NewRelativeComparer(1e-9)),
		reference, candidates)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 3}, got)

	_, err = symmetry.QuickFilterGeometries(tr, symmetry.IndicatorComparer{}, nil, candidates)
	assert.ErrorIs(t, err, symmetry.ErrTooFewPoints)
}
