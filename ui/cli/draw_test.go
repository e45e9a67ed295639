package cli

import (
	"strings"
	"testing"

	"chessboard/src/base"
	"chessboard/src/board"
	"chessboard/src/rules/notnilchess"
)

func newBoard(t *testing.T, opts ...board.Option) *board.Board {
	t.Helper()
	b, err := board.New(notnilchess.New(), opts...)
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func renderRows(t *testing.T, b *board.Board) []string {
	t.Helper()
	r := newTermRenderer(false)
	b.Draw(r)
	var sb strings.Builder
	if _, err := r.WriteTo(&sb); err != nil {
		t.Fatal(err)
	}
	return strings.Split(strings.TrimSuffix(sb.String(), "\n"), "\n")
}

func row(cells ...string) string {
	var sb strings.Builder
	for _, c := range cells {
		sb.WriteString(" " + c + " ")
	}
	return sb.String()
}

func TestTermRendererStartPosition(t *testing.T) {
	rows := renderRows(t, newBoard(t))
	if len(rows) != gridSide {
		t.Fatalf("rows = %d, want %d", len(rows), gridSide)
	}
	tests := []struct {
		idx  int
		want string
	}{
		{0, row(" ", "A", "B", "C", "D", "E", "F", "G", "H", " ")},
		{1, row("8", "♜", "♞", "♝", "♛", "♚", "♝", "♞", "♜", "8")},
		{2, row("7", "♟", "♟", "♟", "♟", "♟", "♟", "♟", "♟", "7")},
		{4, row("5", " ", " ", " ", " ", " ", " ", " ", " ", "5")},
		{8, row("1", "♖", "♘", "♗", "♕", "♔", "♗", "♘", "♖", "1")},
		{9, row(" ", "A", "B", "C", "D", "E", "F", "G", "H", "●")},
	}
	for _, tc := range tests {
		if got := rows[tc.idx]; got != tc.want {
			t.Errorf("row %d = %q, want %q", tc.idx, got, tc.want)
		}
	}
}

func TestTermRendererReversed(t *testing.T) {
	rows := renderRows(t, newBoard(t, board.WithOrientation(base.Reversed)))
	if want := row(" ", "H", "G", "F", "E", "D", "C", "B", "A", " "); rows[0] != want {
		t.Errorf("row 0 = %q, want %q", rows[0], want)
	}
	if want := row("1", "♖", "♘", "♗", "♔", "♕", "♗", "♘", "♖", "1"); rows[1] != want {
		t.Errorf("row 1 = %q, want %q", rows[1], want)
	}
}

func TestTermRendererFollowsDrag(t *testing.T) {
	b := newBoard(t, board.WithSize(800))
	// e2 then e4 centers at size 800
	b.Press(500, 700)
	b.Move(500, 500)
	rows := renderRows(t, b)
	if want := row("4", " ", " ", " ", " ", "♙", " ", " ", " ", "4"); rows[5] != want {
		t.Errorf("rank 4 = %q, want %q", rows[5], want)
	}
	if want := row("2", "♙", "♙", "♙", "♙", " ", "♙", "♙", "♙", "2"); rows[7] != want {
		t.Errorf("rank 2 = %q, want %q", rows[7], want)
	}
}

func TestTermRendererColor(t *testing.T) {
	b := newBoard(t)
	r := newTermRenderer(true)
	b.Draw(r)
	var sb strings.Builder
	if _, err := r.WriteTo(&sb); err != nil {
		t.Fatal(err)
	}
	out := sb.String()
	for _, want := range []string{
		"\033[48;2;255;222;173m", // light cell
		"\033[48;2;205;133;63m",  // dark cell
		"\033[38;2;255;255;0m",   // label
		reset,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output lacks %q", want)
		}
	}
}
