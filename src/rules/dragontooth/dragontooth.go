// Package dragontooth adapts github.com/dylhunn/dragontoothmg to rules.Engine.
package dragontooth

import (
	"fmt"

	"chessboard/src/base"
	"chessboard/src/rules"

	"github.com/dylhunn/dragontoothmg"
)

const Name = "dragontooth"

type Engine struct{}

func New() *Engine {
	return &Engine{}
}

func (e *Engine) Name() string {
	return Name
}

// Decode validates the FEN before handing it to dragontoothmg, whose parser
// indexes fields without bounds checks and trusts castling rights.
func (e *Engine) Decode(fen string) (p rules.Position, err error) {
	if err := rules.ValidateFEN(fen); err != nil {
		return nil, fmt.Errorf("decode FEN: %w", err)
	}
	defer func() {
		if r := recover(); r != nil {
			p, err = nil, fmt.Errorf("decode FEN: parser panic: %v", r)
		}
	}()
	b := dragontoothmg.ParseFen(fen)
	return &position{b: b}, nil
}

// position holds the board by value; dragontoothmg.Board has no pointers
// so a copy is a full snapshot.
type position struct {
	b dragontoothmg.Board
}

type move struct {
	m dragontoothmg.Move
}

func (m move) From() base.Square {
	return base.SquareFromIndex(int(m.m.From()))
}

func (m move) To() base.Square {
	return base.SquareFromIndex(int(m.m.To()))
}

func (m move) Promotion() base.Kind {
	return fromPiece(m.m.Promote())
}

func (m move) String() string {
	return m.m.String()
}

func (p *position) LegalMoves() []rules.Move {
	b := p.b
	legal := b.GenerateLegalMoves()
	moves := make([]rules.Move, 0, len(legal))
	for _, m := range legal {
		moves = append(moves, move{m: m})
	}
	return moves
}

func (p *position) Apply(m rules.Move) (rules.Position, error) {
	mv, ok := m.(move)
	if !ok {
		return nil, fmt.Errorf("move %v does not belong to engine %s", m, Name)
	}
	next := p.b
	next.Apply(mv.m)
	return &position{b: next}, nil
}

func (p *position) PieceAt(sq base.Square) base.Piece {
	if !sq.Valid() {
		return base.EmptyPiece
	}
	mask := uint64(1) << uint(sq.Index())
	if p.b.White.All&mask != 0 {
		return base.Piece{Kind: kindAt(&p.b.White, mask), Side: base.White}
	}
	if p.b.Black.All&mask != 0 {
		return base.Piece{Kind: kindAt(&p.b.Black, mask), Side: base.Black}
	}
	return base.EmptyPiece
}

func (p *position) SideToMove() base.Side {
	if p.b.Wtomove {
		return base.White
	}
	return base.Black
}

func (p *position) FEN() string {
	b := p.b
	return b.ToFen()
}

func kindAt(bb *dragontoothmg.Bitboards, mask uint64) base.Kind {
	switch {
	case bb.Pawns&mask != 0:
		return base.Pawn
	case bb.Knights&mask != 0:
		return base.Knight
	case bb.Bishops&mask != 0:
		return base.Bishop
	case bb.Rooks&mask != 0:
		return base.Rook
	case bb.Queens&mask != 0:
		return base.Queen
	case bb.Kings&mask != 0:
		return base.King
	default:
		return base.NoKind
	}
}

func fromPiece(p dragontoothmg.Piece) base.Kind {
	switch p {
	case dragontoothmg.Pawn:
		return base.Pawn
	case dragontoothmg.Knight:
		return base.Knight
	case dragontoothmg.Bishop:
		return base.Bishop
	case dragontoothmg.Rook:
		return base.Rook
	case dragontoothmg.Queen:
		return base.Queen
	case dragontoothmg.King:
		return base.King
	default:
		return base.NoKind
	}
}
