// SPDX-License-Identifier: MIT

package energies

import (
	"slices"

	"github.com/seb-eis/Mocassin-sub007/vector"
)

// GroupInteraction is a center position plus an ordered neighbor geometry
// whose joint occupation contributes an energy term. Geometry vectors are
// absolute fractional coordinates, not offsets from Center.
type GroupInteraction struct {
	ID         string
	Center     vector.Fractional3D
	Geometry   []vector.Fractional3D
	Deprecated bool
}

// Offsets returns the neighbor vectors relative to the center.
func (gi GroupInteraction) Offsets() []vector.Fractional3D {
	out := make([]vector.Fractional3D, len(gi.Geometry))
	for i, v := range gi.Geometry {
		out[i] = v.Sub(gi.Center)
	}

	return out
}

// Clone returns a copy that shares no slice with gi.
func (gi GroupInteraction) Clone() GroupInteraction {
	gi.Geometry = slices.Clone(gi.Geometry)
	return gi
}
