// SPDX-License-Identifier: MIT

// Package particles defines particle species and the occupation sets that can
// be assigned to lattice positions. Particle identity is the Index; index 0 is
// reserved for the void particle that makes a position vacancy capable.
package particles
