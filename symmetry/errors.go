// SPDX-License-Identifier: MIT

package symmetry

import "errors"

var (
	// ErrOperationSize is returned when an operation is not built from exactly 12 coefficients.
	ErrOperationSize = errors.New("symmetry: operation requires 12 coefficients")

	// ErrNonFinite is returned when a coefficient or coordinate is NaN or ±Inf.
	ErrNonFinite = errors.New("symmetry: NaN or Inf encountered")

	// ErrInvalidLiteral is returned when an operation literal cannot be parsed.
	ErrInvalidLiteral = errors.New("symmetry: invalid operation literal")

	// ErrEmptySequence is returned when a point operation group is requested
	// for an empty neighbor sequence.
	ErrEmptySequence = errors.New("symmetry: empty point sequence")

	// ErrNoSiteSymmetry is returned when no operation maps the origin onto
	// itself, which means the operation list lacks the identity.
	ErrNoSiteSymmetry = errors.New("symmetry: no site symmetry operation for origin")

	// ErrLengthMismatch is returned when a permutation source does not match
	// the point sequence length.
	ErrLengthMismatch = errors.New("symmetry: permutation length does not match point sequence")

	// ErrNoOperations is returned when a service is built for a group without operations.
	ErrNoOperations = errors.New("symmetry: space group has no operations")

	// ErrGroupNotFound is returned by catalogue lookups without a match.
	ErrGroupNotFound = errors.New("symmetry: space group not found")

	// ErrInvalidCatalogue is returned for malformed catalogue documents.
	ErrInvalidCatalogue = errors.New("symmetry: invalid catalogue")

	// ErrTooFewPoints is returned when an indicator is requested for no points.
	ErrTooFewPoints = errors.New("symmetry: indicator requires at least one point")

	// ErrInvalidMass is returned for non-positive or non-finite point masses.
	ErrInvalidMass = errors.New("symmetry: point mass must be positive and finite")

	// ErrDecompositionFailed is returned when the inertia tensor eigen
	// decomposition does not succeed.
	ErrDecompositionFailed = errors.New("symmetry: inertia tensor decomposition failed")
)

const (
	panicTrimToleranceInvalid = "symmetry: WithTrimTolerance: tolerance must be finite and non-negative"
	panicCacheLimitInvalid    = "symmetry: WithCacheLimit: limit must be non-negative"
	panicLoggerNil            = "symmetry: WithLogger: logger must not be nil"
)
