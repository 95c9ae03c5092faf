package symmetry_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seb-eis/Mocassin-sub007/symmetry"
	"github.com/seb-eis/Mocassin-sub007/vector"
)

var cmpTight = vector.NewRangeComparer(1e-9)

func assertFractional(t *testing.T, want, got vector.Fractional3D) {
	t.Helper()
	assert.True(t, cmpTight.EqualFractional(want, got), "want %v, got %v", want, got)
}

func TestParseOperation(t *testing.T) {
	op, err := symmetry.ParseOperation("-y+1/2, x, z")
	require.NoError(t, err)
	assert.Equal(t, "-y+1/2,x,z", op.Literal())
	assert.Equal(t, [12]float64{0, -1, 0, 0.5, 1, 0, 0, 0, 0, 0, 1, 0}, op.Coefficients())

	p := vector.NewFractional3D(0.1, 0.2, 0.3)
	assertFractional(t, vector.NewFractional3D(0.3, 0.1, 0.3), op.ApplyUntrimmed(p))
}

func TestParseOperation_FactorsAndDecimals(t *testing.T) {
	op, err := symmetry.ParseOperation("2x-y,0.25+z,-1/4-x")
	require.NoError(t, err)
	assert.Equal(t, [12]float64{2, -1, 0, 0, 0, 0, 1, 0.25, -1, 0, 0, -0.25}, op.Coefficients())
}

func TestParseOperation_Invalid(t *testing.T) {
	for _, literal := range []string{"x,y", "x,y,q", "x,y,1/0", "x,,z", "x,y,z,x"} {
		_, err := symmetry.ParseOperation(literal)
		assert.ErrorIs(t, err, symmetry.ErrInvalidLiteral, literal)
	}
}

func TestParseCoefficients(t *testing.T) {
	op, err := symmetry.ParseCoefficients("1 0 0 0; 0 1 0 0; 0 0 1 0")
	require.NoError(t, err)
	assert.True(t, op.IsIdentity(cmpTight))
	assert.Equal(t, "x,y,z", op.Literal())

	_, err = symmetry.ParseCoefficients("1 2 3")
	assert.ErrorIs(t, err, symmetry.ErrOperationSize)

	_, err = symmetry.ParseCoefficients("1 0 0 0 0 1 0 0 0 0 1 abc")
	assert.ErrorIs(t, err, symmetry.ErrInvalidLiteral)
}

func TestNewOperation_Errors(t *testing.T) {
	_, err := symmetry.NewOperation(make([]float64, 11))
	assert.ErrorIs(t, err, symmetry.ErrOperationSize)

	values := []float64{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, math.NaN()}
	_, err = symmetry.NewOperation(values)
	assert.ErrorIs(t, err, symmetry.ErrNonFinite)
}

func TestOperation_ApplyTrimmed(t *testing.T) {
	op := symmetry.MustParseOperation("-x,-y,-z")
	p := vector.NewFractional3D(0.25, 0, 1)

	assertFractional(t, vector.NewFractional3D(-0.25, 0, -1), op.ApplyUntrimmed(p))
	assertFractional(t, vector.NewFractional3D(0.75, 0, 0), op.ApplyTrimmed(p))

	trimmed, shift := op.ApplyTrimmedWithShift(p)
	assertFractional(t, vector.NewFractional3D(0.75, 0, 0), trimmed)
	assertFractional(t, vector.NewFractional3D(1, 0, 1), shift)
}

func TestOperation_TrimToleranceAbsorbsBoundary(t *testing.T) {
	op := symmetry.Identity()
	near := vector.NewFractional3D(1-1e-12, 0.5, 0)
	assertFractional(t, vector.NewFractional3D(0, 0.5, 0), op.ApplyTrimmed(near))

	strict := op.WithTrimTolerance(0)
	assert.InDelta(t, 1-1e-12, strict.ApplyTrimmed(near).A, 1e-15)

	assert.Panics(t, func() { op.WithTrimTolerance(-1) })
}

func TestOperation_ShiftedAndEqual(t *testing.T) {
	op := symmetry.MustParseOperation("-x,y,z")
	shifted := op.Shifted(vector.NewFractional3D(1, 0, -0.5))
	assert.Equal(t, "-x+1,y,z-1/2", shifted.Literal())
	assert.False(t, op.Equal(shifted, cmpTight))
	assert.True(t, shifted.Equal(symmetry.MustParseOperation("1-x,y,z-0.5"), cmpTight))

	// the receiver is a value and stays unchanged
	assert.Equal(t, "-x,y,z", op.Literal())
	assert.False(t, op.IsIdentity(cmpTight))
}

func TestOperation_ApplySequence(t *testing.T) {
	op := symmetry.MustParseOperation("y,x,-z")
	seq := []vector.Fractional3D{{A: 1}, {B: 2}, {C: 3}}
	got := op.ApplySequence(seq)
	require.Len(t, got, 3)
	assertFractional(t, vector.NewFractional3D(0, 1, 0), got[0])
	assertFractional(t, vector.NewFractional3D(2, 0, 0), got[1])
	assertFractional(t, vector.NewFractional3D(0, 0, -3), got[2])
}
