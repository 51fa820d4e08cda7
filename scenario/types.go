// Package scenario defines sentinel errors for input parsing.
package scenario

import "errors"

// Sentinel errors for the three input formats.
var (
	// ErrBadLand indicates a malformed land file.
	ErrBadLand = errors.New("scenario: malformed land file")

	// ErrBadTravel indicates a malformed travel file.
	ErrBadTravel = errors.New("scenario: malformed travel file")

	// ErrBadMissions indicates a malformed mission file.
	ErrBadMissions = errors.New("scenario: malformed mission file")
)
