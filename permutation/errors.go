// SPDX-License-Identifier: MIT

package permutation

import "errors"

var (
	// ErrNoSlots is returned when a slot machine is built without any domain.
	ErrNoSlots = errors.New("permutation: no slots")

	// ErrEmptySlot is returned when one of the slot domains is empty.
	ErrEmptySlot = errors.New("permutation: empty slot domain")

	// ErrCountOverflow is returned when the permutation count exceeds int64.
	ErrCountOverflow = errors.New("permutation: permutation count overflows int64")

	// ErrIndexOutOfRange is returned by At for indices outside [0, Count()).
	ErrIndexOutOfRange = errors.New("permutation: index out of range")
)
