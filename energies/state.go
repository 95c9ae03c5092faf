// SPDX-License-Identifier: MIT

package energies

import (
	"slices"
	"strconv"
	"strings"

	"github.com/seb-eis/Mocassin-sub007/particles"
)

// StateKey is the comparable identity of an OccupationState: the ordered
// particle indices joined by dots, e.g. "1.0.2".
type StateKey string

// OccupationState is an immutable assignment of particles to the neighbor
// positions of a group, center excluded.
type OccupationState struct {
	particles []particles.Particle
	key       StateKey
}

// NewOccupationState copies ps into a new state.
func NewOccupationState(ps []particles.Particle) OccupationState {
	var sb strings.Builder
	for i, p := range ps {
		if i > 0 {
			sb.WriteByte('.')
		}
		sb.WriteString(strconv.Itoa(p.Index))
	}

	return OccupationState{particles: slices.Clone(ps), key: StateKey(sb.String())}
}

// Key returns the structural key.
func (s OccupationState) Key() StateKey { return s.key }

// Len returns the number of occupied neighbor slots.
func (s OccupationState) Len() int { return len(s.particles) }

// Particles returns a copy of the particle sequence.
func (s OccupationState) Particles() []particles.Particle { return slices.Clone(s.particles) }

// Equal reports whether both states hold the same particle indices in order.
func (s OccupationState) Equal(o OccupationState) bool { return s.key == o.key }

// String renders the particle symbols, e.g. "[O Vc O]".
func (s OccupationState) String() string {
	names := make([]string, len(s.particles))
	for i, p := range s.particles {
		names[i] = p.String()
	}

	return "[" + strings.Join(names, " ") + "]"
}
