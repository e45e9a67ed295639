// Package board is the interactive chessboard component: it turns pointer
// gestures into legal moves and plans what each draw request paints.
//
// A Board is owned by one UI goroutine and is not safe for concurrent use.
package board

import (
	"errors"
	"fmt"
	"math"

	"chessboard/src/base"
	"chessboard/src/logx"
	"chessboard/src/rules"

	"github.com/google/uuid"
)

var (
	ErrInvalidSize     = errors.New("invalid board size")
	ErrInvalidPosition = errors.New("invalid position")
)

const DefaultSize = 400

// PositionChanged is emitted once per gesture that ends in a legal move.
type PositionChanged struct {
	ID         uuid.UUID
	FEN        string
	Move       string
	SideToMove base.Side
}

type EventKind uint8

const (
	PointerMoved EventKind = iota
	PointerPressed
	PointerReleased
)

// PointerEvent coordinates are relative to the top-left of the drawing area.
type PointerEvent struct {
	Kind EventKind
	X, Y float64
}

type Option func(*Board)

func WithSize(size float64) Option {
	return func(b *Board) { b.size = size }
}

func WithOrientation(o base.Orientation) Option {
	return func(b *Board) { b.orientation = o }
}

// WithFEN sets the initial position; the default is the standard start.
func WithFEN(fen string) Option {
	return func(b *Board) { b.startFEN = fen }
}

func WithPalette(p Palette) Option {
	return func(b *Board) { b.palette = p }
}

func WithLogger(l logx.Logger) Option {
	return func(b *Board) { b.logger = l }
}

func WithPromotionChooser(c PromotionChooser) Option {
	return func(b *Board) { b.resolver.choose = c }
}

func WithListener(fn func(PositionChanged)) Option {
	return func(b *Board) { b.listeners = append(b.listeners, fn) }
}

type Board struct {
	engine      rules.Engine
	pos         rules.Position
	startFEN    string
	size        float64
	orientation base.Orientation
	palette     Palette

	gesture  gestureMachine
	resolver resolver
	planner  planner

	// last known pointer position, +Inf until the first move event
	pointerX, pointerY float64

	listeners []func(PositionChanged)
	logger    logx.Logger
}

func New(engine rules.Engine, opts ...Option) (*Board, error) {
	b := &Board{
		engine:   engine,
		startFEN: base.FEN_START_GAME,
		size:     DefaultSize,
		palette:  ClassicPalette,
		resolver: resolver{choose: QueenFirst},
		pointerX: math.Inf(1),
		pointerY: math.Inf(1),
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.logger == nil {
		b.logger = logx.NewNop()
	}
	b.resolver.logger = b.logger
	b.planner.logger = b.logger

	if err := validSize(b.size); err != nil {
		return nil, err
	}
	pos, err := engine.Decode(b.startFEN)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPosition, err)
	}
	b.pos = pos
	b.logger.Debugf("board ready: engine=%s size=%v orientation=%v", engine.Name(), b.size, b.orientation)
	return b, nil
}

func validSize(size float64) error {
	if !(size > 0) || math.IsInf(size, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidSize, size)
	}
	return nil
}

// ---- widget contract ----

// SizeRequest is the fixed square the board asks its container for.
func (b *Board) SizeRequest() (float64, float64) {
	return b.size, b.size
}

// Extent is the side of the area Draw paints into, labels included.
func (b *Board) Extent() float64 {
	return Extent(b.size)
}

func (b *Board) OnPositionChanged(fn func(PositionChanged)) {
	b.listeners = append(b.listeners, fn)
}

func (b *Board) HandleEvent(ev PointerEvent) Outcome {
	switch ev.Kind {
	case PointerMoved:
		return b.Move(ev.X, ev.Y)
	case PointerPressed:
		return b.Press(ev.X, ev.Y)
	case PointerReleased:
		return b.Release(ev.X, ev.Y)
	default:
		return NoOp
	}
}

func (b *Board) Press(x, y float64) Outcome {
	b.pointerX, b.pointerY = x, y
	out := b.gesture.press(x, y, b.size, b.orientation, b.pos.PieceAt)
	if out == GestureUpdated {
		g := b.gesture.current()
		b.logger.Debugf("drag start %v %v", g.Start, g.Piece)
	}
	return out
}

func (b *Board) Move(x, y float64) Outcome {
	b.pointerX, b.pointerY = x, y
	return b.gesture.move(x, y)
}

// Release ends any drag. Position listeners fire only if the drag resolved
// to a legal move.
func (b *Board) Release(x, y float64) Outcome {
	b.pointerX, b.pointerY = x, y
	attempt, out := b.gesture.release(x, y, b.size, b.orientation)
	if out != MoveAttempted {
		return out
	}
	next, played, ok := b.resolver.resolve(b.pos, attempt)
	if !ok {
		return out
	}
	b.pos = next
	ev := PositionChanged{
		ID:         uuid.New(),
		FEN:        next.FEN(),
		Move:       played.String(),
		SideToMove: next.SideToMove(),
	}
	b.logger.Infof("move %s, fen %s", ev.Move, ev.FEN)
	for _, fn := range b.listeners {
		fn(ev)
	}
	return out
}

// PressAtPointer and ReleaseAtPointer serve backends whose button events
// carry no coordinates.
func (b *Board) PressAtPointer() Outcome {
	return b.Press(b.pointerX, b.pointerY)
}

func (b *Board) ReleaseAtPointer() Outcome {
	return b.Release(b.pointerX, b.pointerY)
}

func (b *Board) Frame() Frame {
	return b.planner.plan(b.size, b.orientation, b.palette, b.pos, b.gesture.current())
}

func (b *Board) Draw(r Renderer) {
	f := b.Frame()
	r.DrawStatic(f.Static, f.Palette)
	for _, h := range f.Highlights {
		c := b.palette.DragStart
		if h.Target {
			c = b.palette.DragTarget
		}
		r.FillRect(h.Rect, c)
	}
	turn := b.palette.WhiteTurn
	if f.Turn.Side == base.Black {
		turn = b.palette.BlackTurn
	}
	r.FillCircle(f.Turn.X, f.Turn.Y, f.Turn.Radius, turn)
	for _, s := range f.Pieces {
		r.DrawPiece(s.Piece, s.Rect)
	}
	if f.Dragged != nil {
		r.DrawPiece(f.Dragged.Piece, f.Dragged.Rect)
	}
}

// ---- external commands ----

// ToggleOrientation affects later conversions only; a drag in progress keeps
// its logical start square.
func (b *Board) ToggleOrientation() {
	b.orientation = b.orientation.Toggle()
	b.logger.Debugf("orientation %v", b.orientation)
}

func (b *Board) SetOrientation(o base.Orientation) {
	b.orientation = o
}

func (b *Board) SetSize(size float64) error {
	if err := validSize(size); err != nil {
		return err
	}
	b.size = size
	return nil
}

func (b *Board) SetPalette(p Palette) {
	b.palette = p
}

// SetPosition replaces the position from FEN. On error nothing changes.
func (b *Board) SetPosition(fen string) error {
	pos, err := b.engine.Decode(fen)
	if err != nil {
		b.logger.Warnf("rejected position %q: %v", fen, err)
		return fmt.Errorf("%w: %v", ErrInvalidPosition, err)
	}
	b.pos = pos
	b.logger.Infof("position set: %s", pos.FEN())
	return nil
}

// ---- accessors ----

func (b *Board) FEN() string {
	return b.pos.FEN()
}

func (b *Board) SideToMove() base.Side {
	return b.pos.SideToMove()
}

func (b *Board) PieceAt(sq base.Square) base.Piece {
	return b.pos.PieceAt(sq)
}

func (b *Board) Size() float64 {
	return b.size
}

func (b *Board) Palette() Palette {
	return b.palette
}

func (b *Board) Orientation() base.Orientation {
	return b.orientation
}

func (b *Board) Gesture() Gesture {
	return b.gesture.current()
}

// StaticRebuilds counts static layer rebuilds so far.
func (b *Board) StaticRebuilds() uint64 {
	return b.planner.rebuilds
}

func (b *Board) Engine() rules.Engine {
	return b.engine
}
