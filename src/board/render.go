package board

import (
	"image/color"

	"chessboard/src/base"
)

// Canvas receives the primitives of the static layer.
type Canvas interface {
	FillRect(r Rect, c color.Color)
	DrawText(l Label, c color.Color)
}

// Renderer is implemented once per drawing backend. Board.Draw calls it in
// z-order: static layer, highlights, turn indicator, resting pieces, then
// the dragged piece.
type Renderer interface {
	// DrawStatic may keep whatever it rasterizes from layer for as long as
	// layer.Version and pal stay the same.
	DrawStatic(layer *StaticLayer, pal Palette)
	FillRect(r Rect, c color.Color)
	FillCircle(cx, cy, radius float64, c color.Color)
	DrawPiece(p base.Piece, r Rect)
}

// Paint replays the layer, background first, then cells, then labels.
func (l *StaticLayer) Paint(c Canvas, pal Palette) {
	c.FillRect(l.Background, pal.Background)
	for _, cell := range l.Cells {
		col := pal.DarkCell
		if cell.Light {
			col = pal.LightCell
		}
		c.FillRect(cell.Rect, col)
	}
	for _, lb := range l.Labels {
		c.DrawText(lb, pal.Label)
	}
}
