package gradient

import "errors"

var (
	// ErrInvalidDimension reports a width or height outside 1..MaxExtent.
	ErrInvalidDimension = errors.New("invalid dimension")

	// ErrInvalidCount reports an interpolation step count below 1.
	ErrInvalidCount = errors.New("invalid interpolation count")

	// ErrSampleRange reports interpolation bounds outside ±MaxSample.
	ErrSampleRange = errors.New("interpolation bound out of range")
)
