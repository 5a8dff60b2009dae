package life

import "github.com/pkg/errors"

var (
	// ErrOutOfRange is returned for direct lookups outside the board.
	ErrOutOfRange = errors.New("point out of range")
	// ErrInvalidSpan is returned when a board is requested with span <= 0.
	ErrInvalidSpan = errors.New("invalid board span")
)
