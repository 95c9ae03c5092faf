package structure_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seb-eis/Mocassin-sub007/particles"
	"github.com/seb-eis/Mocassin-sub007/structure"
	"github.com/seb-eis/Mocassin-sub007/symmetry"
	"github.com/seb-eis/Mocassin-sub007/vector"
)

func perovskite(t *testing.T) *structure.UnitCell {
	t.Helper()
	c, err := symmetry.DefaultCatalogue()
	require.NoError(t, err)
	g, err := c.Find(221, "")
	require.NoError(t, err)
	s, err := symmetry.NewService(g)
	require.NoError(t, err)
	tr, err := vector.NewTransformer(vector.Cubic(3.9))
	require.NoError(t, err)

	sr, _ := particles.NewSet(1, particles.Particle{Index: 1, Symbol: "Sr"})
	ti, _ := particles.NewSet(2, particles.Particle{Index: 2, Symbol: "Ti"})
	o, _ := particles.NewSet(3, particles.Particle{Index: 3, Symbol: "O"}, particles.Void())

	cell, err := structure.NewUnitCell(tr, s, []structure.ReferencePosition{
		{Vector: vector.NewFractional3D(0, 0, 0), Occupation: sr},
		{Vector: vector.NewFractional3D(0.5, 0.5, 0.5), Occupation: ti},
		{Vector: vector.NewFractional3D(0.5, 0.5, 0), Occupation: o},
	}, vector.NewRangeComparer(1e-6))
	require.NoError(t, err)

	return cell
}

func TestNewUnitCell_Expands(t *testing.T) {
	cell := perovskite(t)
	require.Equal(t, 5, cell.Len())

	positions := cell.Positions()
	for i, p := range positions {
		assert.Equal(t, i, p.Index)
	}
	assert.Equal(t, 2, positions[4].Reference)
	assert.True(t, positions[4].Occupation.IsVacancyCapable())
	assert.InDelta(t, 3.9*3.9*3.9, cell.Transformer().Volume(), 1e-9)
}

func TestUnitCell_GetEntryValueAt(t *testing.T) {
	cell := perovskite(t)

	p, err := cell.GetEntryValueAt(vector.NewFractional3D(1.5, -0.5, 2))
	require.NoError(t, err)
	assert.Equal(t, "{Vc,O}", p.Occupation.String())

	p, err = cell.GetEntryValueAt(vector.NewFractional3D(-1+1e-9, 1, 3))
	require.NoError(t, err)
	assert.Equal(t, 0, p.Index)

	_, err = cell.GetEntryValueAt(vector.NewFractional3D(0.25, 0, 0))
	assert.ErrorIs(t, err, structure.ErrPositionNotFound)
}

type fixedExpander []vector.Fractional3D

func (f fixedExpander) WyckoffPositions(vector.Fractional3D) []vector.Fractional3D { return f }

func TestNewUnitCell_Errors(t *testing.T) {
	tr, err := vector.NewTransformer(vector.Cubic(1))
	require.NoError(t, err)
	c := vector.NewRangeComparer(1e-6)
	ref := []structure.ReferencePosition{{}}

	_, err = structure.NewUnitCell(nil, fixedExpander{{}}, ref, c)
	assert.ErrorIs(t, err, structure.ErrNilTransformer)
	_, err = structure.NewUnitCell(tr, nil, ref, c)
	assert.ErrorIs(t, err, structure.ErrNilExpander)
	_, err = structure.NewUnitCell(tr, fixedExpander{{}}, nil, c)
	assert.ErrorIs(t, err, structure.ErrNoPositions)
	_, err = structure.NewUnitCell(tr, fixedExpander{{}}, []structure.ReferencePosition{{}, {}}, c)
	assert.ErrorIs(t, err, structure.ErrOverlappingPositions)
}
