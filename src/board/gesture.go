package board

import "chessboard/src/base"

type GestureState uint8

const (
	Idle GestureState = iota
	Dragging
)

func (s GestureState) String() string {
	if s == Dragging {
		return "dragging"
	}
	return "idle"
}

// Gesture is the drag in progress. Start and Piece are captured at press
// time; Piece is never re-read from the position while dragging.
type Gesture struct {
	State GestureState
	Start base.Square
	Piece base.Piece
	X, Y  float64
}

type Outcome uint8

const (
	NoOp Outcome = iota
	GestureUpdated
	MoveAttempted
)

func (o Outcome) String() string {
	switch o {
	case GestureUpdated:
		return "gesture updated"
	case MoveAttempted:
		return "move attempt"
	default:
		return "no-op"
	}
}

// Attempt is what a release hands to the resolver. HasEnd is false when the
// pointer was released off the board.
type Attempt struct {
	Start  base.Square
	End    base.Square
	HasEnd bool
}

type gestureMachine struct {
	g Gesture
}

func (m *gestureMachine) current() Gesture {
	return m.g
}

func (m *gestureMachine) press(x, y, size float64, o base.Orientation, pieceAt func(base.Square) base.Piece) Outcome {
	if m.g.State != Idle {
		return NoOp
	}
	sq, ok := PixelToSquare(x, y, size, o)
	if !ok {
		return NoOp
	}
	piece := pieceAt(sq)
	if piece.IsEmpty() {
		return NoOp
	}
	m.g = Gesture{State: Dragging, Start: sq, Piece: piece, X: x, Y: y}
	return GestureUpdated
}

func (m *gestureMachine) move(x, y float64) Outcome {
	if m.g.State != Dragging {
		return NoOp
	}
	m.g.X, m.g.Y = x, y
	return GestureUpdated
}

// release always ends the gesture, whatever the resolver later decides.
func (m *gestureMachine) release(x, y, size float64, o base.Orientation) (Attempt, Outcome) {
	if m.g.State != Dragging {
		return Attempt{}, NoOp
	}
	end, ok := PixelToSquare(x, y, size, o)
	a := Attempt{Start: m.g.Start, End: end, HasEnd: ok}
	m.g = Gesture{}
	return a, MoveAttempted
}
