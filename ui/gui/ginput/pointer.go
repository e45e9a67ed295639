package ginput

import "chessboard/src/board"

// PointerState is one tick of mouse input in window pixels.
type PointerState struct {
	X, Y         int
	JustPressed  bool
	JustReleased bool
}

// Pointer turns per-tick mouse polling into board pointer events. Window
// pixels are shifted by the board origin first.
type Pointer struct {
	originX, originY float64
	lastX, lastY     int
	seen             bool
}

func NewPointer(originX, originY float64) *Pointer {
	return &Pointer{originX: originX, originY: originY}
}

// Feed reports a move when the cursor changed, then the button edges. The
// result is the last outcome that was not a no-op.
func (p *Pointer) Feed(st PointerState, b *board.Board) board.Outcome {
	x := float64(st.X) - p.originX
	y := float64(st.Y) - p.originY
	out := board.NoOp
	keep := func(o board.Outcome) {
		if o != board.NoOp {
			out = o
		}
	}
	if !p.seen || st.X != p.lastX || st.Y != p.lastY {
		keep(b.Move(x, y))
		p.lastX, p.lastY, p.seen = st.X, st.Y, true
	}
	if st.JustPressed {
		keep(b.Press(x, y))
	}
	if st.JustReleased {
		keep(b.Release(x, y))
	}
	return out
}
