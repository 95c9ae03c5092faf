// SPDX-License-Identifier: MIT

package symmetry

import (
	"fmt"
	"math"
	"slices"

	"github.com/seb-eis/Mocassin-sub007/vector"
)

// PointOperationGroup is the site-symmetry group of an origin point together
// with the operation subsets derived from an ordered neighbor sequence.
// It is immutable after construction and safe for concurrent reads.
type PointOperationGroup struct {
	entry    Entry
	origin   vector.Fractional3D
	sequence []vector.Fractional3D

	pointOperations          []Operation
	uniqueSequenceOperations []Operation
	selfProjectionOperations []Operation
	uniqueOrders             [][]int
}

// NewPointOperationGroup computes the point operation group of origin and
// sequence from the full operation list of a space group.
//
// Steps:
//  1. site symmetry: operations whose trimmed image of origin is origin,
//     translation corrected so that the untrimmed image is origin itself;
//  2. unique sequence operations: first-seen representatives of distinct
//     untrimmed sequence images (positional equality);
//  3. self projection operations: unique sequence operations whose image is a
//     bijective reordering of sequence;
//  4. unique self projection orders: distinct index orders o with
//     image[i] == sequence[o[i]], identity first.
//
// Complexity: O(|ops| * n^2) comparisons for n sequence points. The order
// search takes the first unused match per image point and assumes pairwise
// distinct sequence points.
func NewPointOperationGroup(entry Entry, operations []Operation, origin vector.Fractional3D,
	sequence []vector.Fractional3D, comparer vector.NumericComparer) (*PointOperationGroup, error) {
	// 1. Validate input
	if len(sequence) == 0 {
		return nil, ErrEmptySequence
	}
	if !origin.IsFinite() {
		return nil, fmt.Errorf("origin %v: %w", origin, ErrNonFinite)
	}
	for i, v := range sequence {
		if !v.IsFinite() {
			return nil, fmt.Errorf("sequence[%d] %v: %w", i, v, ErrNonFinite)
		}
	}

	// 2. Site symmetry of the origin, shift corrected so that the untrimmed
	// sequence images stay around the origin instead of jumping cells
	site := siteSymmetryOperations(operations, origin, true, comparer)
	if len(site) == 0 {
		return nil, fmt.Errorf("origin %v in %s: %w", origin, entry.Specifier, ErrNoSiteSymmetry)
	}

	// 3. Untrimmed images; neighbors outside the cell must keep their offsets
	images := make([][]vector.Fractional3D, len(site))
	for i, op := range site {
		images[i] = op.ApplySequence(sequence)
	}
	uniqueIdx := stableUnique(images, comparer.EqualSequence)

	g := &PointOperationGroup{
		entry:                    entry,
		origin:                   origin,
		sequence:                 slices.Clone(sequence),
		pointOperations:          site,
		uniqueSequenceOperations: make([]Operation, 0, len(uniqueIdx)),
	}

	// 4. Self projections and their orders
	orders := make([][]int, 0, len(uniqueIdx))
	for _, i := range uniqueIdx {
		g.uniqueSequenceOperations = append(g.uniqueSequenceOperations, site[i])
		if order, ok := projectionOrder(sequence, images[i], comparer); ok {
			g.selfProjectionOperations = append(g.selfProjectionOperations, site[i])
			orders = append(orders, order)
		}
	}

	// 5. Identity first, then first-seen distinct orders
	identity := identityOrder(len(sequence))
	if !slices.ContainsFunc(orders, func(o []int) bool { return slices.Equal(o, identity) }) {
		orders = append([][]int{identity}, orders...)
	}
	for _, i := range stableUnique(orders, func(a, b []int) bool { return slices.Equal(a, b) }) {
		g.uniqueOrders = append(g.uniqueOrders, orders[i])
	}

	return g, nil
}

// Entry returns the space group the group was computed for.
func (g *PointOperationGroup) Entry() Entry { return g.entry }

// Origin returns the origin point.
func (g *PointOperationGroup) Origin() vector.Fractional3D { return g.origin }

// Sequence returns a copy of the neighbor sequence (base geometry).
func (g *PointOperationGroup) Sequence() []vector.Fractional3D { return slices.Clone(g.sequence) }

// PointOperations returns the site-symmetry operations of the origin.
func (g *PointOperationGroup) PointOperations() []Operation {
	return slices.Clone(g.pointOperations)
}

// UniqueSequenceOperations returns the operations yielding geometrically
// distinct images of the full sequence.
func (g *PointOperationGroup) UniqueSequenceOperations() []Operation {
	return slices.Clone(g.uniqueSequenceOperations)
}

// SelfProjectionOperations returns the operations mapping the sequence onto
// a reordering of itself.
func (g *PointOperationGroup) SelfProjectionOperations() []Operation {
	return slices.Clone(g.selfProjectionOperations)
}

// UniqueSelfProjectionOrders returns a deep copy of the distinct index orders.
func (g *PointOperationGroup) UniqueSelfProjectionOrders() [][]int {
	out := make([][]int, len(g.uniqueOrders))
	for i, o := range g.uniqueOrders {
		out[i] = slices.Clone(o)
	}

	return out
}

// HasPermutationMultiplicity reports whether any non-identity order exists.
func (g *PointOperationGroup) HasPermutationMultiplicity() bool {
	return len(g.uniqueOrders) > 1
}

// UniquePointSequences returns the images of the sequence under every unique
// sequence operation.
func (g *PointOperationGroup) UniquePointSequences() [][]vector.Fractional3D {
	out := make([][]vector.Fractional3D, len(g.uniqueSequenceOperations))
	for i, op := range g.uniqueSequenceOperations {
		out[i] = op.ApplySequence(g.sequence)
	}

	return out
}

// siteSymmetryOperations filters operations that map origin onto itself
// modulo lattice translations. With shiftCorrection the kept operations get
// the translation that makes their untrimmed image of origin exactly origin.
func siteSymmetryOperations(operations []Operation, origin vector.Fractional3D, shiftCorrection bool,
	comparer vector.NumericComparer) []Operation {
	out := make([]Operation, 0, len(operations))
	for _, op := range operations {
		untrimmed := op.ApplyUntrimmed(origin)
		if !periodicEqual(untrimmed, origin, comparer) {
			continue
		}
		if shiftCorrection {
			op = op.Shifted(origin.Sub(untrimmed))
		}
		out = append(out, op)
	}

	return out
}

// periodicEqual reports whether a and b describe the same site modulo
// integer lattice translations. Each difference is compared against its
// nearest integer rather than against zero.
func periodicEqual(a, b vector.Fractional3D, comparer vector.NumericComparer) bool {
	d := a.Sub(b)
	for _, x := range d.Coordinates() {
		if !comparer.Equal(x, math.Round(x)) {
			return false
		}
	}

	return true
}

// projectionOrder finds o with image[i] == sequence[o[i]] using every
// sequence index at most once.
func projectionOrder(sequence, image []vector.Fractional3D, comparer vector.NumericComparer) ([]int, bool) {
	var (
		order = make([]int, len(image))
		used  = make([]bool, len(sequence))
	)
	for i, v := range image {
		found := -1
		for j, w := range sequence {
			if !used[j] && comparer.EqualFractional(v, w) {
				found = j
				break
			}
		}
		if found < 0 {
			return nil, false
		}
		used[found] = true
		order[i] = found
	}

	return order, true
}

func identityOrder(n int) []int {
	o := make([]int, n)
	for i := range o {
		o[i] = i
	}

	return o
}
