// SPDX-License-Identifier: MIT

package energies

import (
	"context"
	"fmt"
	"slices"
	"time"

	"go.uber.org/zap"

	"github.com/seb-eis/Mocassin-sub007/parallel"
	"github.com/seb-eis/Mocassin-sub007/particles"
	"github.com/seb-eis/Mocassin-sub007/permutation"
	"github.com/seb-eis/Mocassin-sub007/structure"
	"github.com/seb-eis/Mocassin-sub007/symmetry"
	"github.com/seb-eis/Mocassin-sub007/vector"
)

// GeometryGroupAnalyzer builds extended position groups from group
// interactions. It holds no mutable state and is safe for concurrent use as
// long as its collaborators are.
type GeometryGroupAnalyzer struct {
	cells    UnitCellProvider
	symmetry SymmetryService
	logger   *zap.Logger
	workers  int
}

// NewGeometryGroupAnalyzer wires the analyzer to its collaborators.
func NewGeometryGroupAnalyzer(cells UnitCellProvider, sym SymmetryService, opts ...Option) (*GeometryGroupAnalyzer, error) {
	if cells == nil {
		return nil, ErrNilUnitCellProvider
	}
	if sym == nil {
		return nil, ErrNilSymmetryService
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &GeometryGroupAnalyzer{cells: cells, symmetry: sym, logger: o.logger, workers: o.workers}, nil
}

// CreateExtendedPositionGroup resolves gi and computes its unique occupation
// states and zero energy table.
//
// A deprecated interaction never fails: it yields an incomplete group that
// carries the interaction and, when it resolves, the center position (the
// zero Position otherwise). Its neighbors are not resolved and the symmetry
// service is not consulted.
//
// For any other interaction every vector must resolve; the first that does
// not is reported as a *ResolutionError.
func (a *GeometryGroupAnalyzer) CreateExtendedPositionGroup(gi GroupInteraction) (*ExtendedPositionGroup, error) {
	if gi.Deprecated {
		group := &ExtendedPositionGroup{interaction: gi.Clone()}
		if center, err := a.resolve(gi, gi.Center); err == nil {
			group.center = center
		}
		a.logger.Debug("deprecated group interaction skipped", zap.String("interaction", gi.ID))
		return group, nil
	}
	center, err := a.resolve(gi, gi.Center)
	if err != nil {
		return nil, err
	}
	group := &ExtendedPositionGroup{interaction: gi.Clone(), center: center}
	if len(gi.Geometry) == 0 {
		return nil, fmt.Errorf("interaction %q: %w", gi.ID, ErrEmptyGeometry)
	}

	// neighbors resolve in geometry order; state tuples follow that order
	if group.positions, err = a.GetGroupPositions(gi); err != nil {
		return nil, err
	}
	if group.pointGroup, err = a.symmetry.GetPointOperationGroup(gi.Center, gi.Geometry); err != nil {
		return nil, fmt.Errorf("interaction %q: %w", gi.ID, err)
	}
	// raw states are the product of the neighbor occupation sets, reduced by
	// the self projection orders of the point group
	permuter, err := statePermuter(group.positions)
	if err != nil {
		return nil, fmt.Errorf("interaction %q: %w", gi.ID, err)
	}
	tuples, err := symmetry.UniquePermutations(group.pointGroup, permuter, particles.Equal, particleHash)
	if err != nil {
		return nil, fmt.Errorf("interaction %q: %w", gi.ID, err)
	}

	group.states = make([]OccupationState, len(tuples))
	for i, t := range tuples {
		group.states[i] = NewOccupationState(t)
	}
	// one zero row per particle the center can hold
	group.energies = newEnergyTable(center.Occupation, group.states)

	a.logger.Debug("position group created",
		zap.String("interaction", gi.ID),
		zap.Int64("rawStates", permuter.Count()),
		zap.Int("uniqueStates", len(group.states)),
		zap.Int("orders", len(group.pointGroup.UniqueSelfProjectionOrders())))

	return group, nil
}

// CreateExtendedPositionGroups runs CreateExtendedPositionGroup for every
// interaction on a bounded worker pool. Results keep input order; the first
// failure cancels the units that have not started yet and is returned.
func (a *GeometryGroupAnalyzer) CreateExtendedPositionGroups(ctx context.Context, gis []GroupInteraction) ([]*ExtendedPositionGroup, error) {
	start := time.Now()
	out, err := parallel.Map(ctx, gis, func(_ context.Context, gi GroupInteraction) (*ExtendedPositionGroup, error) {
		return a.CreateExtendedPositionGroup(gi)
	}, parallel.WithLimit(a.workers))
	if err != nil {
		return nil, err
	}
	a.logger.Info("position groups created",
		zap.Int("groups", len(out)),
		zap.Int("workers", a.workers),
		zap.Duration("elapsed", time.Since(start)))

	return out, nil
}

// GetGroupPositions resolves the neighbor geometry of gi in order.
func (a *GeometryGroupAnalyzer) GetGroupPositions(gi GroupInteraction) ([]structure.Position, error) {
	out := make([]structure.Position, len(gi.Geometry))
	for i, v := range gi.Geometry {
		p, err := a.resolve(gi, v)
		if err != nil {
			return nil, err
		}
		out[i] = p
	}

	return out, nil
}

// GetGroupStatePermuter returns a slot machine over the occupation sets of
// the neighbor positions of gi.
func (a *GeometryGroupAnalyzer) GetGroupStatePermuter(gi GroupInteraction) (*permutation.SlotMachine[particles.Particle], error) {
	positions, err := a.GetGroupPositions(gi)
	if err != nil {
		return nil, err
	}

	return statePermuter(positions)
}

// GetAllGroupPairs returns every unordered particle pair of a center
// particle with a particle of any neighbor, sorted by index.
func (a *GeometryGroupAnalyzer) GetAllGroupPairs(gi GroupInteraction) ([]particles.SymPair, error) {
	center, err := a.resolve(gi, gi.Center)
	if err != nil {
		return nil, err
	}
	positions, err := a.GetGroupPositions(gi)
	if err != nil {
		return nil, err
	}

	seen := make(map[particles.SymPair]struct{})
	for _, c := range center.Occupation.Particles() {
		for _, pos := range positions {
			for _, n := range pos.Occupation.Particles() {
				seen[particles.NewSymPair(c, n)] = struct{}{}
			}
		}
	}
	out := make([]particles.SymPair, 0, len(seen))
	for pair := range seen {
		out = append(out, pair)
	}
	slices.SortFunc(out, particles.ComparePairs)

	return out, nil
}

// GroupContainsFilteredPairs reports whether any neighbor of gi, at its
// Cartesian distance from the center, satisfies at least one filter.
func (a *GeometryGroupAnalyzer) GroupContainsFilteredPairs(gi GroupInteraction, filters ...InteractionFilter) (bool, error) {
	if len(filters) == 0 {
		return false, nil
	}
	center, err := a.resolve(gi, gi.Center)
	if err != nil {
		return false, err
	}
	positions, err := a.GetGroupPositions(gi)
	if err != nil {
		return false, err
	}

	t := a.cells.Transformer()
	for i, offset := range gi.Offsets() {
		distance := t.ToCartesian(offset).Length()
		for _, f := range filters {
			if f.IsApplicable(distance, center, positions[i]) {
				return true, nil
			}
		}
	}

	return false, nil
}

// GroupSymmetryIndicator returns the unit-mass indicator of the center and
// its neighbors.
func (a *GeometryGroupAnalyzer) GroupSymmetryIndicator(gi GroupInteraction) (symmetry.Indicator, error) {
	path := append(slices.Clone(gi.Geometry), gi.Center)
	return symmetry.NewIndicator(symmetry.MassPointsFromFractional(a.cells.Transformer(), path))
}

func (a *GeometryGroupAnalyzer) resolve(gi GroupInteraction, v vector.Fractional3D) (structure.Position, error) {
	p, err := a.cells.GetEntryValueAt(v)
	if err != nil {
		return structure.Position{}, &ResolutionError{InteractionID: gi.ID, Vector: v, Err: err}
	}

	return p, nil
}

func statePermuter(positions []structure.Position) (*permutation.SlotMachine[particles.Particle], error) {
	domains := make([][]particles.Particle, len(positions))
	for i, p := range positions {
		domains[i] = p.Occupation.Particles()
	}

	return permutation.NewSlotMachine(particles.Compare, domains...)
}

// particleHash is the order invariant bucket key summand of a particle.
func particleHash(p particles.Particle) uint64 { return 1 << (uint(p.Index) % 64) }
