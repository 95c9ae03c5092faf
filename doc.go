// SPDX-License-Identifier: MIT

// Package mocassin prepares the energy models of kinetic Monte Carlo
// simulations of crystals: for every group interaction (a center lattice
// position and an ordered set of neighbor positions) it finds the
// occupations of the neighbors that are distinct under the point symmetry of
// the center, and sets up an energy table for them.
//
// Packages:
//
//	vector/       fractional and Cartesian coordinates, tolerance comparers, lattice metric
//	particles/    particles, occupation sets, symmetric particle pairs
//	permutation/  slot machine enumeration of occupation tuples
//	symmetry/     symmetry operations, point operation groups, space group service,
//	              catalogue, inertia based symmetry indicator
//	structure/    unit cell positions and lattice lookups
//	energies/     geometry group analyzer, occupation states, energy tables
//	parallel/     bounded order-preserving batch map
//	project/      YAML model definitions
//	config/       settings (viper)
//	logging/      zap logger construction
//
// Commands:
//
//	cmd/groupstates   states, pairs and site symmetry of a model file
//
// Quick example (two opposite neighbors of a cubic site, particles A and B):
//
//	AA  AB  BA  BB   ->   AA  AB  BB
//
// AB and BA are related by the inversion through the center and collapse
// into one state.
package mocassin
