// SPDX-License-Identifier: MIT

// Package vector provides the coordinate primitives used by the symmetry and
// occupation-state engines.
//
// What:
//
//   - Fractional3D: immutable lattice (fractional) coordinate triple (a,b,c).
//   - Cartesian3D:  immutable physical coordinate triple (x,y,z).
//   - NumericComparer: tolerance based float comparison (ranged or relative).
//     Coordinates are never compared with exact float equality.
//   - Transformer: fractional <-> Cartesian conversion built from the six
//     lattice parameters (a, b, c, alpha, beta, gamma).
//
// Periodic trim:
//
//	PeriodicTrim wraps a value into [lower, upper). Values within the trim
//	tolerance of either bound collapse onto the lower bound, so 0.9999999999999
//	becomes 0 and not ~1.
//
// Errors:
//
//   - ErrInvalidLattice  lattice parameters do not describe a cell
//   - ErrSingularLattice metric matrix could not be inverted
package vector
