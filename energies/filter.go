// SPDX-License-Identifier: MIT

package energies

import (
	"slices"

	"github.com/seb-eis/Mocassin-sub007/structure"
)

// RangeFilter accepts pairs whose distance lies in [Min, Max]. Non-empty
// CenterSets or NeighborSets further restrict the occupation set index of
// the respective position.
type RangeFilter struct {
	Min          float64 `yaml:"min"`
	Max          float64 `yaml:"max"`
	CenterSets   []int   `yaml:"center_sets"`
	NeighborSets []int   `yaml:"neighbor_sets"`
}

// IsApplicable implements InteractionFilter.
func (f RangeFilter) IsApplicable(distance float64, center, neighbor structure.Position) bool {
	if distance < f.Min || distance > f.Max {
		return false
	}
	if len(f.CenterSets) > 0 && !slices.Contains(f.CenterSets, center.Occupation.Index()) {
		return false
	}

	return len(f.NeighborSets) == 0 || slices.Contains(f.NeighborSets, neighbor.Occupation.Index())
}
