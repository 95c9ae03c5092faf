// SPDX-License-Identifier: MIT

package symmetry

import (
	"slices"
	"sync"

	"go.uber.org/zap"

	"github.com/seb-eis/Mocassin-sub007/vector"
)

// Service answers symmetry queries for one space group. All methods are safe
// for concurrent use; the group and its operations are never mutated.
type Service struct {
	group    SpaceGroup
	comparer vector.NumericComparer
	logger   *zap.Logger

	cacheLimit int
	mu         sync.RWMutex
	cache      []*PointOperationGroup
}

// NewService creates a service for group.
func NewService(group SpaceGroup, opts ...ServiceOption) (*Service, error) {
	if len(group.Operations) == 0 {
		return nil, ErrNoOperations
	}
	o := defaultServiceOptions()
	for _, opt := range opts {
		opt(&o)
	}

	ops := make([]Operation, len(group.Operations))
	for i, op := range group.Operations {
		ops[i] = op.WithTrimTolerance(o.trimTolerance)
	}
	group.Operations = ops

	return &Service{
		group:      group,
		comparer:   o.comparer,
		logger:     o.logger.With(zap.Stringer("spaceGroup", group.Entry)),
		cacheLimit: o.cacheLimit,
	}, nil
}

// Entry returns the loaded space group entry.
func (s *Service) Entry() Entry { return s.group.Entry }

// Operations returns a copy of the full operation list.
func (s *Service) Operations() []Operation { return slices.Clone(s.group.Operations) }

// Comparer returns the geometric comparer.
func (s *Service) Comparer() vector.NumericComparer { return s.comparer }

// GetPointOperationGroup returns the point operation group for origin and the
// neighbor geometry, reusing a cached result for an equal request.
func (s *Service) GetPointOperationGroup(origin vector.Fractional3D, geometry []vector.Fractional3D) (*PointOperationGroup, error) {
	if g := s.lookup(origin, geometry); g != nil {
		return g, nil
	}

	g, err := NewPointOperationGroup(s.group.Entry, s.group.Operations, origin, geometry, s.comparer)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("point operation group computed",
		zap.Stringer("origin", origin),
		zap.Int("sequenceLength", len(geometry)),
		zap.Int("siteOperations", len(g.pointOperations)),
		zap.Int("uniqueOrders", len(g.uniqueOrders)))

	return s.store(g), nil
}

// MultiplicityOperations returns the site-symmetry operations of origin,
// optionally translation corrected so that their untrimmed image of origin
// is origin itself.
func (s *Service) MultiplicityOperations(origin vector.Fractional3D, shiftCorrection bool) []Operation {
	return siteSymmetryOperations(s.group.Operations, origin, shiftCorrection, s.comparer)
}

// WyckoffPositions returns the sorted, unique trimmed images of ref.
func (s *Service) WyckoffPositions(ref vector.Fractional3D) []vector.Fractional3D {
	out := make([]vector.Fractional3D, 0, len(s.group.Operations))
	for _, op := range s.group.Operations {
		v := op.ApplyTrimmed(ref)
		if s.comparer.IndexOf(out, v) < 0 {
			out = append(out, v)
		}
	}
	slices.SortFunc(out, s.comparer.CompareFractional)

	return out
}

// OperationToTarget returns the first operation (in catalogue order) that
// maps source onto target modulo lattice translations, with its translation
// corrected so that the untrimmed image of source is target exactly.
func (s *Service) OperationToTarget(source, target vector.Fractional3D) (Operation, bool) {
	for _, op := range s.group.Operations {
		image := op.ApplyUntrimmed(source)
		if periodicEqual(image, target, s.comparer) {
			return op.Shifted(target.Sub(image)), true
		}
	}

	return Operation{}, false
}

// ShiftFirstToOrigin translates seq so that its first point lies inside the
// origin unit cell.
func (s *Service) ShiftFirstToOrigin(seq []vector.Fractional3D) []vector.Fractional3D {
	if len(seq) == 0 {
		return nil
	}
	shift := seq[0].TrimToUnitCell(DefaultTrimTolerance).Sub(seq[0])
	out := make([]vector.Fractional3D, len(seq))
	for i, v := range seq {
		out[i] = v.Add(shift)
	}

	return out
}

func (s *Service) lookup(origin vector.Fractional3D, geometry []vector.Fractional3D) *PointOperationGroup {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.cached(origin, geometry)
}

// cached scans the cache; the caller holds s.mu.
func (s *Service) cached(origin vector.Fractional3D, geometry []vector.Fractional3D) *PointOperationGroup {
	for _, g := range s.cache {
		if s.comparer.EqualFractional(g.origin, origin) && s.comparer.EqualSequence(g.sequence, geometry) {
			return g
		}
	}

	return nil
}

// store caches g and returns the group callers should use: an equal group
// stored by a concurrent miss wins over g.
func (s *Service) store(g *PointOperationGroup) *PointOperationGroup {
	if s.cacheLimit == 0 {
		return g
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if prev := s.cached(g.origin, g.sequence); prev != nil {
		return prev
	}
	if len(s.cache) >= s.cacheLimit {
		// oldest entry goes first
		s.cache = s.cache[1:]
	}
	s.cache = append(s.cache, g)

	return g
}
