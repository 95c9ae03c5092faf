// SPDX-License-Identifier: MIT

package energies

import (
	"fmt"
	"maps"
	"slices"

	"github.com/seb-eis/Mocassin-sub007/particles"
	"github.com/seb-eis/Mocassin-sub007/structure"
	"github.com/seb-eis/Mocassin-sub007/symmetry"
	"github.com/seb-eis/Mocassin-sub007/vector"
)

// ExtendedPositionGroup is a group interaction resolved against the unit cell
// and the space group. Groups of deprecated interactions only carry the
// interaction and, if it resolved, the center; IsComplete reports false for
// them.
//
// Everything but the energy table is read-only after construction. The table
// is not synchronized: set energies from one goroutine per group.
type ExtendedPositionGroup struct {
	interaction GroupInteraction
	center      structure.Position
	positions   []structure.Position
	pointGroup  *symmetry.PointOperationGroup
	states      []OccupationState
	energies    map[int]map[StateKey]float64
}

// Interaction returns the source interaction.
func (g *ExtendedPositionGroup) Interaction() GroupInteraction { return g.interaction.Clone() }

// Center returns the resolved center position.
func (g *ExtendedPositionGroup) Center() structure.Position { return g.center }

// Positions returns the resolved neighbor positions in geometry order.
func (g *ExtendedPositionGroup) Positions() []structure.Position { return slices.Clone(g.positions) }

// PointOperationGroup returns the point operation group, nil for incomplete groups.
func (g *ExtendedPositionGroup) PointOperationGroup() *symmetry.PointOperationGroup { return g.pointGroup }

// OccupationStates returns the symmetry-unique neighbor occupations.
func (g *ExtendedPositionGroup) OccupationStates() []OccupationState { return slices.Clone(g.states) }

// IsComplete reports whether the symmetry reduction was performed.
func (g *ExtendedPositionGroup) IsComplete() bool { return g.pointGroup != nil }

// UniquePointSequences returns the geometrically distinct images of the
// neighbor geometry, nil for incomplete groups.
func (g *ExtendedPositionGroup) UniquePointSequences() [][]vector.Fractional3D {
	if g.pointGroup == nil {
		return nil
	}

	return g.pointGroup.UniquePointSequences()
}

// Energy returns the energy of state with center occupied by p.
func (g *ExtendedPositionGroup) Energy(p particles.Particle, state OccupationState) (float64, bool) {
	e, ok := g.energies[p.Index][state.Key()]
	return e, ok
}

// SetEnergy sets the energy of an existing table entry.
func (g *ExtendedPositionGroup) SetEnergy(p particles.Particle, state OccupationState, value float64) error {
	if !g.IsComplete() {
		return ErrIncompleteGroup
	}
	inner, ok := g.energies[p.Index]
	if !ok {
		return fmt.Errorf("%s: %w", p, ErrUnknownCenterParticle)
	}
	if _, ok := inner[state.Key()]; !ok {
		return fmt.Errorf("%s: %w", state, ErrUnknownState)
	}
	inner[state.Key()] = value

	return nil
}

// EnergyTable returns a deep copy of the table: center particle index →
// state key → energy.
func (g *ExtendedPositionGroup) EnergyTable() map[int]map[StateKey]float64 {
	if g.energies == nil {
		return nil
	}
	out := make(map[int]map[StateKey]float64, len(g.energies))
	for k, inner := range g.energies {
		out[k] = maps.Clone(inner)
	}

	return out
}

// newEnergyTable maps every particle allowed at the center to a zero entry
// per state.
func newEnergyTable(center particles.Set, states []OccupationState) map[int]map[StateKey]float64 {
	table := make(map[int]map[StateKey]float64, center.Len())
	for _, p := range center.Particles() {
		inner := make(map[StateKey]float64, len(states))
		for _, s := range states {
			inner[s.Key()] = 0
		}
		table[p.Index] = inner
	}

	return table
}
