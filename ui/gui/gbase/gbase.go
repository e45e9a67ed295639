package gbase

import (
	"errors"
	"math"
)

// ---- Exit Call ----

var ErrExit = errors.New("exit request")

// --- UI constants ---

const (
	WindowTitle = "Chessboard"
	// BoardMargin surrounds the drawing area on every side.
	BoardMargin = 8
	// TPS of the ebiten loop; the board has no animation.
	TPS = 30
)

// WindowSize returns the window that fits a board of the given extent.
func WindowSize(extent float64) (int, int) {
	side := int(math.Ceil(extent)) + 2*BoardMargin
	return side, side
}

// BoardOrigin is the window pixel of the drawing area's top-left corner.
func BoardOrigin() (float64, float64) {
	return BoardMargin, BoardMargin
}
