package model

import "errors"

// Domain errors.
// These are matched with errors.Is by the CLI to report invalid input.
var (
	// ErrMethodOutOfRange is returned when a numeric dating method code is not 1, 2, or 3.
	ErrMethodOutOfRange = errors.New("dating method out of range: must be 1, 2, or 3")

	// ErrUnknownMethod is returned when a dating method name is not recognized.
	ErrUnknownMethod = errors.New("unknown dating method: use julian, orthodox, or western")

	// ErrYearOutOfRange is returned when a year is outside [FirstEasterYear, LastValidGregorianYear].
	ErrYearOutOfRange = errors.New("year out of range: must be between 326 and 4099")

	// ErrInvalidRange is returned when a year range starts after it finishes.
	ErrInvalidRange = errors.New("invalid year range: start year is after finish year")
)
