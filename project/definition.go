// SPDX-License-Identifier: MIT

package project

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/seb-eis/Mocassin-sub007/energies"
	"github.com/seb-eis/Mocassin-sub007/particles"
	"github.com/seb-eis/Mocassin-sub007/vector"
)

// ErrInvalidModel is returned for definitions that fail validation.
var ErrInvalidModel = errors.New("project: invalid model definition")

// Vector is a fractional vector written as a three element YAML sequence.
type Vector [3]float64

// Fractional converts v.
func (v Vector) Fractional() vector.Fractional3D { return vector.NewFractional3D(v[0], v[1], v[2]) }

// SpaceGroupRef selects a catalogue entry. An empty specifier selects the
// first setting of the index.
type SpaceGroupRef struct {
	Index     int    `yaml:"index"`
	Specifier string `yaml:"specifier"`
}

// ParticleSetDef lists the particle indices of an occupation set.
type ParticleSetDef struct {
	Index     int   `yaml:"index"`
	Particles []int `yaml:"particles"`
}

// PositionDef is a reference position and its occupation set index.
type PositionDef struct {
	Vector Vector `yaml:"vector"`
	Set    int    `yaml:"set"`
}

// InteractionDef is a group interaction.
type InteractionDef struct {
	Name       string   `yaml:"name"`
	Center     Vector   `yaml:"center"`
	Geometry   []Vector `yaml:"geometry"`
	Deprecated bool     `yaml:"deprecated"`
}

// Definition is the YAML model document.
type Definition struct {
	Name         string                 `yaml:"name"`
	Lattice      vector.CellParameters  `yaml:"lattice"`
	SpaceGroup   SpaceGroupRef          `yaml:"space_group"`
	Particles    []particles.Particle   `yaml:"particles"`
	ParticleSets []ParticleSetDef       `yaml:"particle_sets"`
	Positions    []PositionDef          `yaml:"positions"`
	Interactions []InteractionDef       `yaml:"interactions"`
	Filters      []energies.RangeFilter `yaml:"filters"`
}

// Decode reads a definition and validates it. Unknown fields are errors.
func Decode(r io.Reader) (*Definition, error) {
	var d Definition
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&d); err != nil {
		return nil, fmt.Errorf("project: decoding: %w", err)
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}

	return &d, nil
}

// LoadFile decodes the definition stored at path.
func LoadFile(path string) (*Definition, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("project: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// Validate checks cross references between particles, sets and positions.
func (d *Definition) Validate() error {
	if d.SpaceGroup.Index <= 0 {
		return fmt.Errorf("space group index %d: %w", d.SpaceGroup.Index, ErrInvalidModel)
	}
	known := map[int]bool{particles.VoidIndex: true}
	for _, p := range d.Particles {
		if p.Index <= particles.VoidIndex {
			return fmt.Errorf("particle %q: index %d is reserved or negative: %w", p.Name, p.Index, ErrInvalidModel)
		}
		if known[p.Index] {
			return fmt.Errorf("particle index %d declared twice: %w", p.Index, ErrInvalidModel)
		}
		known[p.Index] = true
	}

	sets := make(map[int]bool, len(d.ParticleSets))
	for _, s := range d.ParticleSets {
		if sets[s.Index] {
			return fmt.Errorf("particle set %d declared twice: %w", s.Index, ErrInvalidModel)
		}
		if len(s.Particles) == 0 {
			return fmt.Errorf("particle set %d is empty: %w", s.Index, ErrInvalidModel)
		}
		for _, i := range s.Particles {
			if !known[i] {
				return fmt.Errorf("particle set %d: unknown particle %d: %w", s.Index, i, ErrInvalidModel)
			}
		}
		sets[s.Index] = true
	}

	if len(d.Positions) == 0 {
		return fmt.Errorf("no positions: %w", ErrInvalidModel)
	}
	for i, p := range d.Positions {
		if !sets[p.Set] {
			return fmt.Errorf("position %d: unknown particle set %d: %w", i, p.Set, ErrInvalidModel)
		}
	}
	for i, gi := range d.Interactions {
		if len(gi.Geometry) == 0 && !gi.Deprecated {
			return fmt.Errorf("interaction %d %q: empty geometry: %w", i, gi.Name, ErrInvalidModel)
		}
	}
	for i, f := range d.Filters {
		if f.Min < 0 || f.Max < f.Min {
			return fmt.Errorf("filter %d: range [%g, %g]: %w", i, f.Min, f.Max, ErrInvalidModel)
		}
	}

	return nil
}
