package model

import "github.com/pkg/errors"

var (
	// ErrInvalidDimensions is returned when a grid is requested with a non-positive height or width.
	ErrInvalidDimensions = errors.New("invalid grid dimensions")
	// ErrIndexOutOfBounds is returned when a row or column lies outside the grid.
	ErrIndexOutOfBounds = errors.New("index out of bounds")
)
