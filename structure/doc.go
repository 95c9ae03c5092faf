// SPDX-License-Identifier: MIT

// Package structure holds the resolved positions of a unit cell and answers
// position lookups for arbitrary fractional vectors by periodic trimming.
//
// A UnitCell is built once from reference positions and a Wyckoff expander
// (normally a *symmetry.Service); it is immutable and safe for concurrent
// reads afterwards.
package structure
