// SPDX-License-Identifier: MIT

// Package energies prepares the energy tables of group interactions.
//
// What:
//
//	A GeometryGroupAnalyzer turns a GroupInteraction (center vector plus an
//	ordered neighbor geometry) into an ExtendedPositionGroup: the resolved
//	cell positions, the point operation group of the center, every
//	symmetry-distinct OccupationState of the neighbors and a zero energy
//	table keyed by center particle and state.
//
// Collaborators:
//
//   - UnitCellProvider resolves fractional vectors to cell positions
//     (normally *structure.UnitCell).
//   - SymmetryService builds point operation groups
//     (normally *symmetry.Service).
//   - InteractionFilter decides whether a center/neighbor pair at a distance
//     takes part in an interaction (RangeFilter is the stock one).
//
// Determinism:
//
//	Occupation states come out in lexicographic particle-index order of the
//	neighbor slots, one representative per symmetry class; the first
//	enumerated tuple of a class is the representative. Batch results keep
//	input order regardless of completion order.
//
// Errors:
//
//   - ErrNilUnitCellProvider, ErrNilSymmetryService  analyzer construction
//   - ErrEmptyGeometry                               interaction without neighbors
//   - *ResolutionError                               a vector resolves to no position
//   - ErrUnknownState, ErrUnknownCenterParticle      energy table access
package energies
