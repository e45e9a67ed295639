package ginput

import (
	"fmt"

	"chessboard/src/base"
	"chessboard/src/board"
	"chessboard/ui/gui/gbase"
)

// Title follows the side to move, whatever changed it: a drag, a paste or
// an opened file.
type Title struct {
	side  base.Side
	known bool
}

// Next returns the title to show and whether it differs from the last one.
func (t *Title) Next(b *board.Board) (string, bool) {
	side := b.SideToMove()
	changed := !t.known || side != t.side
	t.side, t.known = side, true
	return fmt.Sprintf("%s - %v to move", gbase.WindowTitle, side), changed
}
