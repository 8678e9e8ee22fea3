package game

import (
	"errors"
	"fmt"
)

// ErrInvalidViewport is returned for a viewport with a non-positive dimension.
var ErrInvalidViewport = errors.New("invalid viewport")

// Viewport is the visible play area in simulation units.
type Viewport struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// NewViewport validates the dimensions reported by the host.
func NewViewport(width, height float64) (Viewport, error) {
	if !(width > 0) || !(height > 0) {
		return Viewport{}, fmt.Errorf("%w: %gx%g", ErrInvalidViewport, width, height)
	}
	return Viewport{Width: width, Height: height}, nil
}
