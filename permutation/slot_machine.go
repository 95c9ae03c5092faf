// SPDX-License-Identifier: MIT

package permutation

import (
	"fmt"
	"iter"
	"math"
	"slices"
)

// SlotMachine enumerates the Cartesian product of its slot domains in
// lexicographic order.
//
// The machine is an odometer: cursor[i] indexes slots[i], the last slot turns
// fastest and a carry moves one slot to the left. Stepping is O(1) amortized,
// At is O(len(slots)) and independent of the cursor.
//
// A machine is not safe for concurrent use; Clone gives each goroutine its
// own cursor over the shared, read-only domains.
type SlotMachine[T any] struct {
	slots  [][]T
	cursor []int
	value  []T
	count  int64
}

// NewSlotMachine copies every domain, sorts it stably with compare and builds
// a machine positioned before the first tuple. A nil compare keeps the given
// domain order.
func NewSlotMachine[T any](compare func(a, b T) int, domains ...[]T) (*SlotMachine[T], error) {
	if len(domains) == 0 {
		return nil, ErrNoSlots
	}

	var (
		slots = make([][]T, len(domains))
		count = int64(1)
	)
	for i, domain := range domains {
		if len(domain) == 0 {
			return nil, fmt.Errorf("slot %d: %w", i, ErrEmptySlot)
		}
		slot := slices.Clone(domain)
		if compare != nil {
			slices.SortStableFunc(slot, compare)
		}
		slots[i] = slot
		if count > math.MaxInt64/int64(len(slot)) {
			return nil, ErrCountOverflow
		}
		count *= int64(len(slot))
	}

	m := &SlotMachine[T]{
		slots:  slots,
		cursor: make([]int, len(slots)),
		value:  make([]T, len(slots)),
		count:  count,
	}
	m.Reset()

	return m, nil
}

// Count returns the total number of tuples (Π of the domain sizes).
func (m *SlotMachine[T]) Count() int64 { return m.count }

// Len returns the number of slots, which is also the tuple length.
func (m *SlotMachine[T]) Len() int { return len(m.slots) }

// Domain returns a copy of the sorted domain of slot i.
func (m *SlotMachine[T]) Domain(i int) []T { return slices.Clone(m.slots[i]) }

// Value returns a copy of the current tuple.
func (m *SlotMachine[T]) Value() []T { return slices.Clone(m.value) }

// Next advances the cursor by one tuple. It returns true when the most
// significant slot wrapped around, i.e. the machine restarted at the first
// tuple.
func (m *SlotMachine[T]) Next() bool {
	// increment the last slot and carry leftwards
	for i := len(m.slots) - 1; i >= 0; i-- {
		m.cursor[i]++
		if m.cursor[i] < len(m.slots[i]) {
			m.value[i] = m.slots[i][m.cursor[i]]
			return false
		}
		m.cursor[i] = 0
		m.value[i] = m.slots[i][0]
	}

	return true
}

// Previous moves the cursor back by one tuple. It returns true when the most
// significant slot wrapped around backwards onto the last tuple.
func (m *SlotMachine[T]) Previous() bool {
	for i := len(m.slots) - 1; i >= 0; i-- {
		m.cursor[i]--
		if m.cursor[i] >= 0 {
			m.value[i] = m.slots[i][m.cursor[i]]
			return false
		}
		m.cursor[i] = len(m.slots[i]) - 1
		m.value[i] = m.slots[i][m.cursor[i]]
	}

	return true
}

// Reset positions the cursor immediately before the first tuple, so that the
// next call to Next yields the lexicographically first tuple.
func (m *SlotMachine[T]) Reset() {
	for i := range m.slots {
		m.cursor[i] = 0
		m.value[i] = m.slots[i][0]
	}
	// one step back from the first tuple lands on the last one
	m.Previous()
}

// All resets the machine and yields every tuple in lexicographic order. Each
// yielded slice is a fresh copy owned by the caller.
func (m *SlotMachine[T]) All() iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		m.Reset()
		for n := int64(0); n < m.count; n++ {
			m.Next()
			if !yield(slices.Clone(m.value)) {
				return
			}
		}
	}
}

// Collect returns all tuples of All as a slice.
func (m *SlotMachine[T]) Collect() [][]T {
	out := make([][]T, 0, m.count)
	for tuple := range m.All() {
		out = append(out, tuple)
	}

	return out
}

// DistinctSlotPermutations resets the machine and yields only the tuples in
// which no two slots sit on the same domain index.
func (m *SlotMachine[T]) DistinctSlotPermutations() iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		m.Reset()
		for n := int64(0); n < m.count; n++ {
			m.Next()
			if !distinctIndices(m.cursor) {
				continue
			}
			if !yield(slices.Clone(m.value)) {
				return
			}
		}
	}
}

// At returns the tuple with lexicographic rank index without moving the
// cursor.
func (m *SlotMachine[T]) At(index int64) ([]T, error) {
	if index < 0 || index >= m.count {
		return nil, fmt.Errorf("index %d of %d: %w", index, m.count, ErrIndexOutOfRange)
	}
	out := make([]T, len(m.slots))
	for i := len(m.slots) - 1; i >= 0; i-- {
		radix := int64(len(m.slots[i]))
		out[i] = m.slots[i][index%radix]
		index /= radix
	}

	return out, nil
}

// Clone returns an independent machine sharing the immutable domains and
// carrying a copy of the cursor.
func (m *SlotMachine[T]) Clone() *SlotMachine[T] {
	return &SlotMachine[T]{
		slots:  m.slots,
		cursor: slices.Clone(m.cursor),
		value:  slices.Clone(m.value),
		count:  m.count,
	}
}

func distinctIndices(cursor []int) bool {
	for i := 0; i < len(cursor)-1; i++ {
		for j := i + 1; j < len(cursor); j++ {
			if cursor[i] == cursor[j] {
				return false
			}
		}
	}

	return true
}
