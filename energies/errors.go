// SPDX-License-Identifier: MIT

package energies

import (
	"errors"
	"fmt"

	"github.com/seb-eis/Mocassin-sub007/vector"
)

var (
	// ErrNilUnitCellProvider is returned when an analyzer is built without a unit cell provider.
	ErrNilUnitCellProvider = errors.New("energies: unit cell provider is nil")

	// ErrNilSymmetryService is returned when an analyzer is built without a symmetry service.
	ErrNilSymmetryService = errors.New("energies: symmetry service is nil")

	// ErrEmptyGeometry is returned for a non-deprecated interaction without neighbors.
	ErrEmptyGeometry = errors.New("energies: group interaction has no geometry")

	// ErrUnknownState is returned when an energy is set for a state that is not
	// one of the group's unique occupation states.
	ErrUnknownState = errors.New("energies: unknown occupation state")

	// ErrUnknownCenterParticle is returned when an energy is set for a particle
	// the center position cannot hold.
	ErrUnknownCenterParticle = errors.New("energies: particle not allowed at center")

	// ErrIncompleteGroup is returned when energies are set on a deprecated group.
	ErrIncompleteGroup = errors.New("energies: position group is incomplete")
)

const (
	panicLoggerNil      = "energies: WithLogger: logger must not be nil"
	panicWorkersInvalid = "energies: WithWorkers: workers must be positive"
)

// ResolutionError reports a vector of a group interaction that does not
// resolve to a unit cell position.
type ResolutionError struct {
	InteractionID string
	Vector        vector.Fractional3D
	Err           error
}

// Error implements error.
func (e *ResolutionError) Error() string {
	return fmt.Sprintf("energies: interaction %q: vector %v: %v", e.InteractionID, e.Vector, e.Err)
}

// Unwrap returns the provider error.
func (e *ResolutionError) Unwrap() error { return e.Err }
