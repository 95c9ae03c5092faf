// SPDX-License-Identifier: MIT

// Package symmetry implements crystallographic symmetry operations, the point
// operation group of a site with an ordered neighbor sequence, the space
// group service and catalogue, and the inertia based symmetry indicator.
//
// What:
//
//   - Operation: 3×4 affine operator on fractional coordinates, parsed from
//     coordinate-triplet literals ("-y+1/2,x,z") or 12 numeric tokens.
//   - PointOperationGroup: the site-symmetry operations of an origin together
//     with the operations that produce unique images of a neighbor sequence,
//     the self-projection operations and their index orders.
//   - UniquePermutations: collapses particle assignment tuples that are
//     equivalent under the unique self-projection orders.
//   - Service: read-only symmetry service for one space group, with a
//     concurrency-safe point operation group cache.
//   - Catalogue: YAML space group catalogue with an embedded default set.
//   - Indicator: two scalar fingerprint of a mass-point arrangement.
//
// Determinism:
//
//	Operation discovery is a stable first-seen pass over the catalogue order.
//	The first operation that yields a given image wins, and the unique orders
//	keep the order in which they were first induced.
//
// Complexity (n operations, k neighbors):
//
//   - NewPointOperationGroup: O(n² k) for the positional dedup, O(n k²) for orders
//   - UniquePermutations:     O(P · b · m · k), P raw tuples, b bucket size, m orders
//
// Errors:
//
//   - ErrOperationSize, ErrNonFinite, ErrInvalidLiteral  operation construction
//   - ErrEmptySequence, ErrNoSiteSymmetry               point group construction
//   - ErrLengthMismatch                                 tuple length ≠ sequence length
//   - ErrGroupNotFound, ErrInvalidCatalogue             catalogue lookup / parsing
//   - ErrTooFewPoints, ErrInvalidMass                   indicator input
//   - ErrDecompositionFailed                            inertia eigen solve
package symmetry
