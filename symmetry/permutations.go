// SPDX-License-Identifier: MIT

package symmetry

import (
	"fmt"

	"github.com/seb-eis/Mocassin-sub007/permutation"
)

// Equivalent reports whether tuples a and b describe the same occupation of
// the group's sequence, i.e. some unique self-projection order o satisfies
// a[i] == b[o[i]] for every i.
func Equivalent[T any](g *PointOperationGroup, a, b []T, equal func(x, y T) bool) bool {
	if len(a) != len(b) || len(a) != len(g.sequence) {
		return false
	}
	for _, order := range g.uniqueOrders {
		if matchesOrder(a, b, order, equal) {
			return true
		}
	}

	return false
}

// UniquePermutations enumerates source and keeps one representative per
// equivalence class under the group's unique self-projection orders. The
// first tuple of a class in lexicographic source order is the representative,
// and representatives keep that order.
//
// hash must be invariant under reordering of a tuple (for particles the sum of
// 1 << index); it only buckets candidates before the full equivalence test.
// Without permutation multiplicity all raw tuples are returned.
func UniquePermutations[T any](g *PointOperationGroup, source *permutation.SlotMachine[T],
	equal func(x, y T) bool, hash func(T) uint64) ([][]T, error) {
	if source.Len() != len(g.sequence) {
		return nil, fmt.Errorf("source %d, sequence %d: %w", source.Len(), len(g.sequence), ErrLengthMismatch)
	}
	if !g.HasPermutationMultiplicity() {
		return source.Collect(), nil
	}

	var (
		unique  = make([][]T, 0)
		buckets = make(map[uint64][]int)
	)
	for tuple := range source.All() {
		var key uint64
		for _, v := range tuple {
			key += hash(v)
		}
		duplicate := false
		for _, k := range buckets[key] {
			if Equivalent(g, unique[k], tuple, equal) {
				duplicate = true
				break
			}
		}
		if duplicate {
			continue
		}
		buckets[key] = append(buckets[key], len(unique))
		unique = append(unique, tuple)
	}

	return unique, nil
}

func matchesOrder[T any](a, b []T, order []int, equal func(x, y T) bool) bool {
	for i, j := range order {
		if !equal(a[i], b[j]) {
			return false
		}
	}

	return true
}
