// SPDX-License-Identifier: MIT

package project

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/seb-eis/Mocassin-sub007/energies"
	"github.com/seb-eis/Mocassin-sub007/particles"
	"github.com/seb-eis/Mocassin-sub007/structure"
	"github.com/seb-eis/Mocassin-sub007/symmetry"
	"github.com/seb-eis/Mocassin-sub007/vector"
)

// Model is a built definition.
type Model struct {
	Name         string
	Service      *symmetry.Service
	Cell         *structure.UnitCell
	Particles    map[int]particles.Particle
	Interactions []energies.GroupInteraction
	Filters      []energies.RangeFilter
}

// Build resolves d against the catalogue. comparer is used for the unit cell
// position matching; opts configure the symmetry service.
func Build(d *Definition, c *symmetry.Catalogue, comparer vector.NumericComparer,
	opts ...symmetry.ServiceOption) (*Model, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	group, err := c.Find(d.SpaceGroup.Index, d.SpaceGroup.Specifier)
	if err != nil {
		return nil, fmt.Errorf("project %q: %w", d.Name, err)
	}
	service, err := symmetry.NewService(group, opts...)
	if err != nil {
		return nil, fmt.Errorf("project %q: %w", d.Name, err)
	}
	transformer, err := vector.NewTransformer(d.Lattice)
	if err != nil {
		return nil, fmt.Errorf("project %q: %w", d.Name, err)
	}

	m := &Model{
		Name:      d.Name,
		Service:   service,
		Particles: map[int]particles.Particle{particles.VoidIndex: particles.Void()},
		Filters:   d.Filters,
	}
	for _, p := range d.Particles {
		m.Particles[p.Index] = p
	}

	sets := make(map[int]particles.Set, len(d.ParticleSets))
	for _, s := range d.ParticleSets {
		members := make([]particles.Particle, len(s.Particles))
		for i, idx := range s.Particles {
			members[i] = m.Particles[idx]
		}
		if sets[s.Index], err = particles.NewSet(s.Index, members...); err != nil {
			return nil, fmt.Errorf("project %q: %w", d.Name, err)
		}
	}

	refs := make([]structure.ReferencePosition, len(d.Positions))
	for i, p := range d.Positions {
		refs[i] = structure.ReferencePosition{Vector: p.Vector.Fractional(), Occupation: sets[p.Set]}
	}
	if m.Cell, err = structure.NewUnitCell(transformer, service, refs, comparer); err != nil {
		return nil, fmt.Errorf("project %q: %w", d.Name, err)
	}

	m.Interactions = make([]energies.GroupInteraction, len(d.Interactions))
	for i, def := range d.Interactions {
		gi := energies.GroupInteraction{
			ID:         def.Name,
			Center:     def.Center.Fractional(),
			Geometry:   make([]vector.Fractional3D, len(def.Geometry)),
			Deprecated: def.Deprecated,
		}
		if gi.ID == "" {
			gi.ID = uuid.NewString()
		}
		for k, v := range def.Geometry {
			gi.Geometry[k] = v.Fractional()
		}
		m.Interactions[i] = gi
	}

	return m, nil
}

// Analyzer returns a geometry group analyzer over the model's cell and service.
func (m *Model) Analyzer(opts ...energies.Option) (*energies.GeometryGroupAnalyzer, error) {
	return energies.NewGeometryGroupAnalyzer(m.Cell, m.Service, opts...)
}

// InteractionFilters returns the filters as energies.InteractionFilter values.
func (m *Model) InteractionFilters() []energies.InteractionFilter {
	out := make([]energies.InteractionFilter, len(m.Filters))
	for i, f := range m.Filters {
		out[i] = f
	}

	return out
}

// ActiveInteractions drops the interactions that contain a pair matched by
// one of the model's filters.
func (m *Model) ActiveInteractions(a *energies.GeometryGroupAnalyzer, logger *zap.Logger) ([]energies.GroupInteraction, error) {
	filters := m.InteractionFilters()
	out := make([]energies.GroupInteraction, 0, len(m.Interactions))
	for _, gi := range m.Interactions {
		filtered, err := a.GroupContainsFilteredPairs(gi, filters...)
		if err != nil {
			return nil, err
		}
		if filtered {
			logger.Debug("group interaction filtered", zap.String("interaction", gi.ID))
			continue
		}
		out = append(out, gi)
	}

	return out, nil
}
