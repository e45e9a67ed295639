package base

import "fmt"

// Forsyth–Edwards Notation
const FEN_START_GAME string = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

type Side uint8

const (
	White Side = iota
	Black
)

func (s Side) String() string {
	if s == Black {
		return "black"
	}
	return "white"
}

func (s Side) Other() Side {
	if s == White {
		return Black
	}
	return White
}

type Kind uint8

const (
	NoKind Kind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

func (k Kind) String() string {
	switch k {
	case Pawn:
		return "pawn"
	case Knight:
		return "knight"
	case Bishop:
		return "bishop"
	case Rook:
		return "rook"
	case Queen:
		return "queen"
	case King:
		return "king"
	default:
		return "none"
	}
}

// Piece is a value snapshot of what stands on a square.
// The zero value is an empty square.
type Piece struct {
	Kind Kind
	Side Side
}

var EmptyPiece = Piece{}

func (p Piece) IsEmpty() bool {
	return p.Kind == NoKind
}

func (p Piece) String() string {
	if p.IsEmpty() {
		return "empty"
	}
	return p.Side.String() + " " + p.Kind.String()
}

type Orientation uint8

const (
	Normal Orientation = iota // white at the bottom
	Reversed
)

func (o Orientation) Toggle() Orientation {
	if o == Normal {
		return Reversed
	}
	return Normal
}

func (o Orientation) String() string {
	if o == Reversed {
		return "reversed"
	}
	return "normal"
}

// Square is a logical board coordinate, (0,0) is a1.
type Square struct {
	File int
	Rank int
}

func NewSquare(file, rank int) (Square, bool) {
	sq := Square{File: file, Rank: rank}
	return sq, sq.Valid()
}

func (s Square) Valid() bool {
	return s.File >= 0 && s.File <= 7 && s.Rank >= 0 && s.Rank <= 7
}

func (s Square) Index() int {
	return s.Rank*8 + s.File
}

func SquareFromIndex(i int) Square {
	return Square{File: i % 8, Rank: i / 8}
}

// Flip mirrors the square through the board center.
func (s Square) Flip() Square {
	return Square{File: 7 - s.File, Rank: 7 - s.Rank}
}

func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]rune{rune('a' + s.File), rune('1' + s.Rank)})
}

func SquareFromAlgebraic(pos string) (Square, error) {
	// 'a' ~ 'h' to 0-7
	// '1' ~ '8' to 0-7
	if len(pos) != 2 || pos[0] < 'a' || pos[0] > 'h' || pos[1] < '1' || pos[1] > '8' {
		return Square{}, fmt.Errorf("invalid square %q", pos)
	}
	return Square{File: int(pos[0] - 'a'), Rank: int(pos[1] - '1')}, nil
}

func ConvertPieceFromRune(r rune) Piece {
	side := White
	if r >= 'a' && r <= 'z' {
		side = Black
		r -= 'a' - 'A'
	}
	switch r {
	case 'P':
		return Piece{Kind: Pawn, Side: side}
	case 'N':
		return Piece{Kind: Knight, Side: side}
	case 'B':
		return Piece{Kind: Bishop, Side: side}
	case 'R':
		return Piece{Kind: Rook, Side: side}
	case 'Q':
		return Piece{Kind: Queen, Side: side}
	case 'K':
		return Piece{Kind: King, Side: side}
	default:
		return EmptyPiece
	}
}

// ConvertRuneFromPiece returns the FEN letter, '.' for an empty square.
func ConvertRuneFromPiece(p Piece) rune {
	var r rune
	switch p.Kind {
	case Pawn:
		r = 'P'
	case Knight:
		r = 'N'
	case Bishop:
		r = 'B'
	case Rook:
		r = 'R'
	case Queen:
		r = 'Q'
	case King:
		r = 'K'
	default:
		return '.'
	}
	if p.Side == Black {
		r += 'a' - 'A'
	}
	return r
}

// ConvertUpperRuneFromPiece ignores the side, used for glyph lettering.
func ConvertUpperRuneFromPiece(p Piece) rune {
	r := ConvertRuneFromPiece(p)
	if r >= 'a' && r <= 'z' {
		r -= 'a' - 'A'
	}
	return r
}
