package workload

import (
	"github.com/pkg/errors"
)

var (
	// ErrKeySpaceExhausted is returned when no more keys absent from the
	// existing key set can be drawn within the bounds.
	ErrKeySpaceExhausted = errors.New("key space exhausted")
	// ErrNotEnoughKeys is returned when more existing keys are requested
	// than the input holds.
	ErrNotEnoughKeys       = errors.New("not enough keys")
	ErrUnknownDistribution = errors.New("unknown distribution")
	ErrBadRecord           = errors.New("bad record")
)
