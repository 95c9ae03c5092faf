// SPDX-License-Identifier: MIT

package structure

import (
	"fmt"
	"slices"

	"github.com/seb-eis/Mocassin-sub007/particles"
	"github.com/seb-eis/Mocassin-sub007/vector"
)

// WyckoffExpander yields the symmetry-equivalent positions of a reference
// vector inside the unit cell.
type WyckoffExpander interface {
	WyckoffPositions(ref vector.Fractional3D) []vector.Fractional3D
}

// ReferencePosition is an asymmetric-unit position with its occupation.
type ReferencePosition struct {
	Vector     vector.Fractional3D
	Occupation particles.Set
}

// Position is a resolved site of the unit cell.
type Position struct {
	// Index is the position index within the cell.
	Index int
	// Reference is the index of the reference position it was expanded from.
	Reference  int
	Vector     vector.Fractional3D
	Occupation particles.Set
}

// UnitCell is the full set of positions of one cell.
type UnitCell struct {
	transformer   *vector.Transformer
	comparer      vector.NumericComparer
	trimTolerance float64
	positions     []Position
}

// NewUnitCell expands refs with expander into a full cell. Positions are
// indexed reference by reference, each block in expander order.
func NewUnitCell(t *vector.Transformer, expander WyckoffExpander, refs []ReferencePosition,
	comparer vector.NumericComparer) (*UnitCell, error) {
	switch {
	case t == nil:
		return nil, ErrNilTransformer
	case expander == nil:
		return nil, ErrNilExpander
	case len(refs) == 0:
		return nil, ErrNoPositions
	}

	c := &UnitCell{
		transformer:   t,
		comparer:      comparer,
		trimTolerance: comparer.Tolerance(),
	}
	for r, ref := range refs {
		for _, v := range expander.WyckoffPositions(ref.Vector) {
			if p, err := c.GetEntryValueAt(v); err == nil {
				return nil, fmt.Errorf("reference %d at %v hits position %d: %w", r, v, p.Index, ErrOverlappingPositions)
			}
			c.positions = append(c.positions, Position{
				Index:      len(c.positions),
				Reference:  r,
				Vector:     v,
				Occupation: ref.Occupation,
			})
		}
	}

	return c, nil
}

// Transformer returns the lattice transformer of the cell.
func (c *UnitCell) Transformer() *vector.Transformer { return c.transformer }

// Len returns the number of positions.
func (c *UnitCell) Len() int { return len(c.positions) }

// Positions returns a copy of all positions.
func (c *UnitCell) Positions() []Position { return slices.Clone(c.positions) }

// GetEntryValueAt returns the cell position that v points to in any unit cell
// of the lattice.
func (c *UnitCell) GetEntryValueAt(v vector.Fractional3D) (Position, error) {
	trimmed := v.TrimToUnitCell(c.trimTolerance)
	for _, p := range c.positions {
		if c.comparer.EqualFractional(p.Vector, trimmed) {
			return p, nil
		}
	}

	return Position{}, fmt.Errorf("%v: %w", v, ErrPositionNotFound)
}
