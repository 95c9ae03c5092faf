// SPDX-License-Identifier: MIT

package energies

import (
	"github.com/seb-eis/Mocassin-sub007/structure"
	"github.com/seb-eis/Mocassin-sub007/symmetry"
	"github.com/seb-eis/Mocassin-sub007/vector"
)

// UnitCellProvider resolves fractional vectors to unit cell positions.
type UnitCellProvider interface {
	GetEntryValueAt(v vector.Fractional3D) (structure.Position, error)
	Transformer() *vector.Transformer
}

// SymmetryService builds the point operation group of an origin and a
// neighbor geometry. Implementations must be safe for concurrent use.
type SymmetryService interface {
	GetPointOperationGroup(origin vector.Fractional3D, geometry []vector.Fractional3D) (*symmetry.PointOperationGroup, error)
}

// InteractionFilter decides whether a center/neighbor pair at a Cartesian
// distance takes part in an interaction.
type InteractionFilter interface {
	IsApplicable(distance float64, center, neighbor structure.Position) bool
}
