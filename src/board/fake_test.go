package board

import (
	"errors"

	"chessboard/src/base"
	"chessboard/src/rules"
)

type fakeMove struct {
	from, to base.Square
	promo    base.Kind
}

func (m fakeMove) From() base.Square    { return m.from }
func (m fakeMove) To() base.Square      { return m.to }
func (m fakeMove) Promotion() base.Kind { return m.promo }
func (m fakeMove) String() string {
	s := m.from.String() + m.to.String()
	if m.promo != base.NoKind {
		s += string(base.ConvertRuneFromPiece(base.Piece{Kind: m.promo, Side: base.Black}))
	}
	return s
}

// fakePosition records the move it was advanced with.
type fakePosition struct {
	moves    []rules.Move
	applyErr error
	played   rules.Move
	scans    int
}

func (p *fakePosition) LegalMoves() []rules.Move {
	p.scans++
	return p.moves
}

func (p *fakePosition) Apply(m rules.Move) (rules.Position, error) {
	if p.applyErr != nil {
		return nil, p.applyErr
	}
	return &fakePosition{played: m}, nil
}

func (p *fakePosition) PieceAt(base.Square) base.Piece { return base.EmptyPiece }
func (p *fakePosition) SideToMove() base.Side          { return base.White }
func (p *fakePosition) FEN() string                    { return "fake" }

var errFakeApply = errors.New("fake apply failure")
