package minesweeper

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidConfiguration = errors.New("invalid board configuration")
	ErrOutOfBounds          = errors.New("coordinate out of bounds")
)

type ConfigError struct {
	Size  int
	Bombs int
}

func (e *ConfigError) Error() string {
	switch {
	case e.Size <= 0:
		return fmt.Sprintf("cannot create a board with size: %d", e.Size)
	case e.Bombs < 0:
		return fmt.Sprintf("cannot create a board with negative amount of bombs: %d", e.Bombs)
	case e.Bombs > e.Size*e.Size:
		return fmt.Sprintf("not enough space for %d bombs (%d > %d * %d)", e.Bombs, e.Bombs, e.Size, e.Size)
	default:
		return "cannot construct board: unknown error"
	}
}

func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfiguration
}

type BoundsError struct {
	Coord Coord
	Size  int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("move out of range - %s - board %dx%d", e.Coord, e.Size, e.Size)
}

func (e *BoundsError) Unwrap() error {
	return ErrOutOfBounds
}

func validateConfig(size, bombs int) error {
	if size <= 0 || bombs < 0 || bombs > size*size {
		return &ConfigError{Size: size, Bombs: bombs}
	}
	return nil
}
