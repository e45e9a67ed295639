package rules

import (
	"fmt"
	"strconv"
	"strings"

	"chessboard/src/base"
)

// castleHomes lists, per castling letter, the king and rook that must still
// stand on their home squares.
var castleHomes = map[rune]struct {
	king, rook base.Square
	side       base.Side
}{
	'K': {base.Square{File: 4, Rank: 0}, base.Square{File: 7, Rank: 0}, base.White},
	'Q': {base.Square{File: 4, Rank: 0}, base.Square{File: 0, Rank: 0}, base.White},
	'k': {base.Square{File: 4, Rank: 7}, base.Square{File: 7, Rank: 7}, base.Black},
	'q': {base.Square{File: 4, Rank: 7}, base.Square{File: 0, Rank: 7}, base.Black},
}

// ValidateFEN checks the parts of a FEN that engines disagree on or trust
// blindly: field layout, one king per side, castling rights backed by the
// placement, en passant square and counters. Every Engine runs it before
// its own parser.
func ValidateFEN(fen string) error {
	fields := strings.Fields(fen)
	if len(fields) != 6 {
		return fmt.Errorf("want 6 fields, got %d", len(fields))
	}
	placement, err := parsePlacement(fields[0])
	if err != nil {
		return err
	}
	if fields[1] != "w" && fields[1] != "b" {
		return fmt.Errorf("side to move %q", fields[1])
	}
	if err := checkCastling(fields[2], placement); err != nil {
		return err
	}
	if fields[3] != "-" {
		if _, err := base.SquareFromAlgebraic(fields[3]); err != nil {
			return fmt.Errorf("en passant: %w", err)
		}
	}
	for _, f := range fields[4:] {
		if n, err := strconv.Atoi(f); err != nil || n < 0 {
			return fmt.Errorf("move counter %q", f)
		}
	}
	return nil
}

func parsePlacement(field string) ([64]base.Piece, error) {
	var board [64]base.Piece
	ranks := strings.Split(field, "/")
	if len(ranks) != 8 {
		return board, fmt.Errorf("want 8 ranks, got %d", len(ranks))
	}
	kings := map[base.Side]int{}
	for i, rank := range ranks {
		r := 7 - i
		file := 0
		for _, c := range rank {
			switch p := base.ConvertPieceFromRune(c); {
			case c >= '1' && c <= '8':
				file += int(c - '0')
			case p != base.EmptyPiece:
				if file < 8 {
					board[r*8+file] = p
				}
				if p.Kind == base.King {
					kings[p.Side]++
				}
				file++
			default:
				return board, fmt.Errorf("rank %d: unexpected %q", r+1, c)
			}
		}
		if file != 8 {
			return board, fmt.Errorf("rank %d covers %d squares", r+1, file)
		}
	}
	if kings[base.White] != 1 || kings[base.Black] != 1 {
		return board, fmt.Errorf("each side needs exactly one king")
	}
	return board, nil
}

func checkCastling(field string, board [64]base.Piece) error {
	if field == "-" {
		return nil
	}
	seen := map[rune]bool{}
	for _, c := range field {
		home, ok := castleHomes[c]
		if !ok || seen[c] {
			return fmt.Errorf("castling rights %q", field)
		}
		seen[c] = true
		if board[home.king.Index()] != (base.Piece{Kind: base.King, Side: home.side}) ||
			board[home.rook.Index()] != (base.Piece{Kind: base.Rook, Side: home.side}) {
			return fmt.Errorf("castling right %c without king and rook at home", c)
		}
	}
	return nil
}
