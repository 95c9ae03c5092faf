// SPDX-License-Identifier: MIT

package vector

import "errors"

var (
	// ErrInvalidLattice is returned when a lattice length is non-positive or an
	// angle lies outside (0°, 180°), or the angle triple has no volume.
	ErrInvalidLattice = errors.New("vector: invalid lattice parameters")

	// ErrSingularLattice is returned when the fractional-to-Cartesian matrix
	// cannot be inverted.
	ErrSingularLattice = errors.New("vector: singular lattice matrix")
)

const panicToleranceInvalid = "vector: tolerance must be finite and non-negative"
