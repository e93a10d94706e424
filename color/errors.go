package color

import (
	"errors"
)

var (
	// ErrInvalidInput is returned when an argument or enumerated tag falls
	// outside its domain.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedIlluminant is returned when a known illuminant has no
	// entry in a table the operation needs (e.g. no sRGB matrix).
	ErrUnsupportedIlluminant = errors.New("unsupported illuminant")
)
