// SPDX-License-Identifier: MIT

package particles

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"
)

// VoidIndex is the index of the vacancy placeholder particle.
const VoidIndex = 0

// ErrNegativeIndex is returned for particles or sets with a negative index.
var ErrNegativeIndex = errors.New("particles: negative index")

// Particle is an atomic species placeholder. The struct is comparable and may
// be used as a map key.
type Particle struct {
	Index  int     `yaml:"index"`
	Name   string  `yaml:"name"`
	Symbol string  `yaml:"symbol"`
	Charge float64 `yaml:"charge"`
}

// Void returns the vacancy particle.
func Void() Particle {
	return Particle{Index: VoidIndex, Name: "Void", Symbol: "Vc"}
}

// IsVoid reports whether p is the vacancy placeholder.
func (p Particle) IsVoid() bool { return p.Index == VoidIndex }

// String returns the symbol, or the name when no symbol is set.
func (p Particle) String() string {
	if p.Symbol != "" {
		return p.Symbol
	}
	if p.Name != "" {
		return p.Name
	}

	return fmt.Sprintf("#%d", p.Index)
}

// Compare orders particles by index.
func Compare(a, b Particle) int { return cmp.Compare(a.Index, b.Index) }

// Equal reports index identity.
func Equal(a, b Particle) bool { return a.Index == b.Index }

// Set is an ordered, index-deduplicated collection of particles that can
// occupy a position.
type Set struct {
	index     int
	particles []Particle
}

// NewSet sorts and deduplicates particles by index; the first particle seen
// for an index wins.
func NewSet(index int, members ...Particle) (Set, error) {
	if index < 0 {
		return Set{}, fmt.Errorf("set %d: %w", index, ErrNegativeIndex)
	}
	out := make([]Particle, 0, len(members))
	for _, p := range members {
		if p.Index < 0 {
			return Set{}, fmt.Errorf("particle %q: %w", p.Name, ErrNegativeIndex)
		}
		if slices.ContainsFunc(out, func(q Particle) bool { return q.Index == p.Index }) {
			continue
		}
		out = append(out, p)
	}
	slices.SortFunc(out, Compare)

	return Set{index: index, particles: out}, nil
}

// Index returns the set index.
func (s Set) Index() int { return s.index }

// Len returns the number of particles.
func (s Set) Len() int { return len(s.particles) }

// Particles returns a copy of the sorted members.
func (s Set) Particles() []Particle { return slices.Clone(s.particles) }

// Contains reports whether a particle with p.Index is a member.
func (s Set) Contains(p Particle) bool {
	_, ok := slices.BinarySearchFunc(s.particles, p, Compare)
	return ok
}

// IsVacancyCapable reports whether the void particle is a member.
func (s Set) IsVacancyCapable() bool { return s.Contains(Void()) }

// String lists the member symbols.
func (s Set) String() string {
	names := make([]string, len(s.particles))
	for i, p := range s.particles {
		names[i] = p.String()
	}

	return "{" + strings.Join(names, ",") + "}"
}

// SymPair is an unordered particle pair. Construct with NewSymPair so that
// equal pairs are equal structs.
type SymPair struct {
	First  Particle
	Second Particle
}

// NewSymPair orders the two particles by index.
func NewSymPair(a, b Particle) SymPair {
	if b.Index < a.Index {
		a, b = b, a
	}

	return SymPair{First: a, Second: b}
}

// ComparePairs orders pairs by (First.Index, Second.Index).
func ComparePairs(a, b SymPair) int {
	if c := Compare(a.First, b.First); c != 0 {
		return c
	}

	return Compare(a.Second, b.Second)
}

// String implements fmt.Stringer.
func (p SymPair) String() string {
	return p.First.String() + "-" + p.Second.String()
}
