package board

import (
	"math"

	"chessboard/src/base"
)

// Rect is an axis-aligned rectangle in board pixels, origin at the top-left
// of the drawing area.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// CellSize is the single constant every other length derives from.
func CellSize(size float64) float64 {
	return size * (1.0 / 8)
}

// Extent is the side of the drawing area: eight cells plus a half-cell
// margin on each side for the coordinate labels.
func Extent(size float64) float64 {
	return CellSize(size) * 9
}

// PixelToSquare maps a pointer position to a logical square. Positions
// outside the 8x8 grid report false; they are never clamped.
func PixelToSquare(x, y, size float64, o base.Orientation) (base.Square, bool) {
	col, row, ok := pixelToCell(x, y, size)
	if !ok {
		return base.Square{}, false
	}
	return cellToSquare(col, row, o), true
}

// SquareToPixel returns the center of the square's cell.
func SquareToPixel(sq base.Square, size float64, o base.Orientation) (float64, float64) {
	col, row := squareToCell(sq, o)
	cell := CellSize(size)
	return cell * (float64(col) + 1), cell * (float64(row) + 1)
}

// ClampPixel pins a pointer position to the drawn grid. It is only for
// placing the dragged sprite and must not feed PixelToSquare.
func ClampPixel(x, y, size float64) (float64, float64) {
	cell := CellSize(size)
	lo, hi := cell*0.5, cell*8.5
	return clamp(x, lo, hi), clamp(y, lo, hi)
}

// squareRect is the on-screen cell occupied by sq.
func squareRect(sq base.Square, size float64, o base.Orientation) Rect {
	col, row := squareToCell(sq, o)
	return cellRect(col, row, size)
}

func cellRect(col, row int, size float64) Rect {
	cell := CellSize(size)
	return Rect{
		X: cell * (float64(col) + 0.5),
		Y: cell * (float64(row) + 0.5),
		W: cell,
		H: cell,
	}
}

// pixelToCell works in visual columns and rows; cell centers sit on whole
// multiples of the cell size, hence the half-cell shift.
func pixelToCell(x, y, size float64) (int, int, bool) {
	if !(size > 0) || math.IsInf(size, 0) {
		return 0, 0, false
	}
	cell := CellSize(size)
	col := math.Floor((x - 0.5*cell) / cell)
	row := math.Floor((y - 0.5*cell) / cell)
	// written so that NaN fails too
	if !(col >= 0 && col <= 7 && row >= 0 && row <= 7) {
		return 0, 0, false
	}
	return int(col), int(row), true
}

func cellToSquare(col, row int, o base.Orientation) base.Square {
	if o == base.Reversed {
		return base.Square{File: 7 - col, Rank: row}
	}
	return base.Square{File: col, Rank: 7 - row}
}

func squareToCell(sq base.Square, o base.Orientation) (int, int) {
	if o == base.Reversed {
		return 7 - sq.File, sq.Rank
	}
	return sq.File, 7 - sq.Rank
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Max(lo, math.Min(hi, v))
}
