// Package notnilchess adapts github.com/notnil/chess to rules.Engine.
package notnilchess

import (
	"fmt"

	"chessboard/src/base"
	"chessboard/src/rules"

	"github.com/notnil/chess"
)

const Name = "notnil"

type Engine struct{}

func New() *Engine {
	return &Engine{}
}

func (e *Engine) Name() string {
	return Name
}

// Decode runs the shared validation first: notnil/chess loads positions
// without kings and castling rights its placement cannot honor.
func (e *Engine) Decode(fen string) (rules.Position, error) {
	if err := rules.ValidateFEN(fen); err != nil {
		return nil, fmt.Errorf("decode FEN: %w", err)
	}
	opt, err := chess.FEN(fen)
	if err != nil {
		return nil, fmt.Errorf("decode FEN: %w", err)
	}
	g := chess.NewGame(opt)
	return &position{pos: g.Position()}, nil
}

type position struct {
	pos *chess.Position
}

type move struct {
	m *chess.Move
}

func (m move) From() base.Square {
	return fromSquare(m.m.S1())
}

func (m move) To() base.Square {
	return fromSquare(m.m.S2())
}

func (m move) Promotion() base.Kind {
	return fromPieceType(m.m.Promo())
}

func (m move) String() string {
	return m.m.String()
}

func (p *position) LegalMoves() []rules.Move {
	valid := p.pos.ValidMoves()
	moves := make([]rules.Move, 0, len(valid))
	for _, m := range valid {
		moves = append(moves, move{m: m})
	}
	return moves
}

func (p *position) Apply(m rules.Move) (rules.Position, error) {
	mv, ok := m.(move)
	if !ok {
		return nil, fmt.Errorf("move %v does not belong to engine %s", m, Name)
	}
	next := p.pos.Update(mv.m)
	if next == nil {
		return nil, fmt.Errorf("engine refused move %v", m)
	}
	return &position{pos: next}, nil
}

func (p *position) PieceAt(sq base.Square) base.Piece {
	if !sq.Valid() {
		return base.EmptyPiece
	}
	pc := p.pos.Board().Piece(chess.NewSquare(chess.File(sq.File), chess.Rank(sq.Rank)))
	if pc == chess.NoPiece {
		return base.EmptyPiece
	}
	side := base.White
	if pc.Color() == chess.Black {
		side = base.Black
	}
	return base.Piece{Kind: fromPieceType(pc.Type()), Side: side}
}

func (p *position) SideToMove() base.Side {
	if p.pos.Turn() == chess.Black {
		return base.Black
	}
	return base.White
}

func (p *position) FEN() string {
	return p.pos.String()
}

func fromSquare(sq chess.Square) base.Square {
	return base.Square{File: int(sq.File()), Rank: int(sq.Rank())}
}

func fromPieceType(pt chess.PieceType) base.Kind {
	switch pt {
	case chess.Pawn:
		return base.Pawn
	case chess.Knight:
		return base.Knight
	case chess.Bishop:
		return base.Bishop
	case chess.Rook:
		return base.Rook
	case chess.Queen:
		return base.Queen
	case chess.King:
		return base.King
	default:
		return base.NoKind
	}
}
