package palette

import "errors"

var (
	// ErrInvalidVBox is returned when a box with no population has to be
	// split. Outside of inputs where every pixel was skipped during
	// sampling, it indicates a broken histogram/box invariant.
	ErrInvalidVBox = errors.New("palette: invalid vbox")

	// ErrVBoxCutFailed is returned when no coordinate along the widest
	// axis holds more than half of the box population.
	ErrVBoxCutFailed = errors.New("palette: failed to cut vbox")
)
