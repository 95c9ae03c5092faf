// SPDX-License-Identifier: MIT

// Package permutation implements the periodic slot machine: a lexicographic,
// restartable enumerator over the Cartesian product of per-slot value domains.
//
// What:
//
//   - SlotMachine[T]: one sorted domain per slot; a cursor that steps like a
//     fixed-radix odometer where the LAST slot turns fastest.
//   - Next / Previous report a full wraparound of the most significant slot.
//   - All() always resets first and yields exactly Count() tuples.
//   - At(i) decodes the i-th tuple by mixed-radix decomposition without
//     touching the cursor, so disjoint index ranges can be processed in
//     parallel.
//
// Concurrency:
//
//	A SlotMachine carries mutable cursor state and must not be iterated by
//	several goroutines at once. Use Clone for independent consumers. At and
//	Count are read-only.
//
// Complexity:
//
//   - Next/Previous: amortised O(1), worst case O(k) for k slots
//   - All:           O(k * Π n_i)
//   - At:            O(k)
//
// Errors:
//
//   - ErrNoSlots        no slot domains were supplied
//   - ErrEmptySlot      a slot domain has no values
//   - ErrCountOverflow  Π n_i does not fit into int64
//   - ErrIndexOutOfRange At() index outside [0, Count())
package permutation
