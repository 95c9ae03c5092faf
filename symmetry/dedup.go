// SPDX-License-Identifier: MIT

package symmetry

// stableUnique returns the indices of the first-seen representatives of items
// under equal, in input order. An item is dropped if any earlier kept item is
// equal to it.
func stableUnique[T any](items []T, equal func(a, b T) bool) []int {
	kept := make([]int, 0, len(items))
	for i := range items {
		duplicate := false
		for _, k := range kept {
			if equal(items[k], items[i]) {
				duplicate = true
				break
			}
		}
		if !duplicate {
			kept = append(kept, i)
		}
	}

	return kept
}
