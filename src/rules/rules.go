// Package rules declares what the board needs from a chess rules engine.
// Implementations live in subpackages, one per backing library.
package rules

import (
	"errors"

	"chessboard/src/base"
)

var ErrUnknownEngine = errors.New("unknown rules engine")

// Move is an engine-native move. The board matches moves only by From and To.
type Move interface {
	From() base.Square
	To() base.Square
	// Promotion is base.NoKind for non-promoting moves.
	Promotion() base.Kind
	String() string
}

// Position is an immutable snapshot; Apply returns a new Position.
type Position interface {
	LegalMoves() []Move
	Apply(m Move) (Position, error)
	PieceAt(sq base.Square) base.Piece
	SideToMove() base.Side
	FEN() string
}

type Engine interface {
	Name() string
	// Decode parses FEN. The error is non-nil for any malformed input.
	Decode(fen string) (Position, error)
}
