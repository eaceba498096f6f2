package node

import "errors"

var (
	ErrMalformedDescription = errors.New("malformed description")
	ErrOutOfRangeSteps      = errors.New("steps out of range")
)
