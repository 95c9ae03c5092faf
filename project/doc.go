// SPDX-License-Identifier: MIT

// Package project reads YAML model definitions and builds the objects the
// energy engine works on: the lattice transformer, the symmetry service, the
// unit cell and the group interactions.
//
// A definition looks like
//
//	name: perovskite
//	lattice: {a: 3.9, b: 3.9, c: 3.9, alpha: 90, beta: 90, gamma: 90}
//	space_group: {index: 221, specifier: Pm-3m}
//	particles:
//	  - {index: 1, symbol: Sr}
//	  - {index: 2, symbol: Ti}
//	  - {index: 3, symbol: O, charge: -2}
//	particle_sets:
//	  - {index: 1, particles: [1]}
//	  - {index: 2, particles: [2]}
//	  - {index: 3, particles: [0, 3]}
//	positions:
//	  - {vector: [0, 0, 0], set: 1}
//	  - {vector: [0.5, 0.5, 0.5], set: 2}
//	  - {vector: [0.5, 0.5, 0], set: 3}
//	interactions:
//	  - name: O-O-O
//	    center: [0.5, 0.5, 0]
//	    geometry: [[0.5, 0, 0.5], [0, 0.5, 0.5]]
//
// Particle index 0 is the void particle and needs no declaration. Group
// interactions without a name get a random UUID.
package project
