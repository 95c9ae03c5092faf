// SPDX-License-Identifier: MIT

package structure

import "errors"

var (
	// ErrPositionNotFound is returned when no cell position matches a vector.
	ErrPositionNotFound = errors.New("structure: no position at vector")

	// ErrNilTransformer is returned when a cell is built without a transformer.
	ErrNilTransformer = errors.New("structure: transformer is nil")

	// ErrNilExpander is returned when a cell is built without a Wyckoff expander.
	ErrNilExpander = errors.New("structure: wyckoff expander is nil")

	// ErrNoPositions is returned when a cell is built from no reference positions.
	ErrNoPositions = errors.New("structure: no reference positions")

	// ErrOverlappingPositions is returned when two reference positions expand
	// onto the same site.
	ErrOverlappingPositions = errors.New("structure: reference positions overlap")
)
