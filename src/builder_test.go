package src

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"chessboard/src/base"
	"chessboard/src/board"
	"chessboard/src/logx"
	"chessboard/src/rules"

	"golang.org/x/text/encoding/unicode"
)

func TestNewEngine(t *testing.T) {
	for _, name := range []string{"", "notnil", "dragontooth"} {
		e, err := NewEngine(name)
		if err != nil {
			t.Fatalf("NewEngine(%q): %v", name, err)
		}
		if name != "" && e.Name() != name {
			t.Errorf("NewEngine(%q).Name() = %q", name, e.Name())
		}
	}
	if _, err := NewEngine("stockfish"); !errors.Is(err, rules.ErrUnknownEngine) {
		t.Errorf("unknown engine error = %v", err)
	}
}

func TestBuild(t *testing.T) {
	bb := NewBoardBuilder(logx.NewNop())
	if err := bb.SetEngine("dragontooth"); err != nil {
		t.Fatal(err)
	}
	bb.SetSize(320)
	bb.SetReversed(true)
	bb.SetPalette("dark")
	bb.SetFEN("  ")
	var got []board.PositionChanged
	bb.OnPositionChanged(func(ev board.PositionChanged) { got = append(got, ev) })

	b, err := bb.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if b.Size() != 320 || b.Orientation() != base.Reversed || b.Engine().Name() != "dragontooth" {
		t.Errorf("board = size %v, %v, %s", b.Size(), b.Orientation(), b.Engine().Name())
	}
	e2, _ := base.SquareFromAlgebraic("e2")
	e4, _ := base.SquareFromAlgebraic("e4")
	b.Press(board.SquareToPixel(e2, 320, base.Reversed))
	b.Release(board.SquareToPixel(e4, 320, base.Reversed))
	if len(got) != 1 {
		t.Errorf("listener calls = %d, want 1", len(got))
	}
}

func TestBuildRejectsBadFEN(t *testing.T) {
	bb := NewBoardBuilder(logx.NewNop())
	bb.SetFEN("8/8/8 w - - 0 1")
	if _, err := bb.Build(); !errors.Is(err, board.ErrInvalidPosition) {
		t.Errorf("Build error = %v, want ErrInvalidPosition", err)
	}
}

func TestReadFEN(t *testing.T) {
	utf16, err := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder().String(base.FEN_START_GAME + "\r\n")
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		name string
		in   []byte
	}{
		{"plain", []byte(base.FEN_START_GAME + "\n")},
		{"leading blanks", []byte("\n   \n" + base.FEN_START_GAME + "\n")},
		{"utf8 bom", append([]byte{0xef, 0xbb, 0xbf}, base.FEN_START_GAME...)},
		{"utf16 bom", []byte(utf16)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadFEN(bytes.NewReader(tt.in))
			if err != nil {
				t.Fatalf("ReadFEN: %v", err)
			}
			if got != base.FEN_START_GAME {
				t.Errorf("ReadFEN = %q", got)
			}
		})
	}
	if _, err := ReadFEN(strings.NewReader(" \n\n")); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("empty input error = %v", err)
	}
}

func TestBuildPromotionChooser(t *testing.T) {
	const fen = "4k3/P7/8/8/8/8/8/4K3 w - - 0 1"
	a7, _ := base.SquareFromAlgebraic("a7")
	a8, _ := base.SquareFromAlgebraic("a8")
	for _, engine := range []string{"notnil", "dragontooth"} {
		e, err := NewEngine(engine)
		if err != nil {
			t.Fatal(err)
		}
		pos, err := e.Decode(fen)
		if err != nil {
			t.Fatal(err)
		}
		var first rules.Move
		for _, m := range pos.LegalMoves() {
			if m.From() == a7 && m.To() == a8 {
				first = m
				break
			}
		}
		if first == nil {
			t.Fatalf("%s: no a7a8 move", engine)
		}

		for _, tc := range []struct {
			promotion string
			want      base.Kind
		}{
			{"queen", base.Queen},
			{"", base.Queen},
			{"engine", first.Promotion()},
		} {
			bb := NewBoardBuilder(logx.NewNop())
			if err := bb.SetEngine(engine); err != nil {
				t.Fatal(err)
			}
			bb.SetFEN(fen)
			bb.SetPromotion(tc.promotion)
			b, err := bb.Build()
			if err != nil {
				t.Fatal(err)
			}
			b.Press(board.SquareToPixel(a7, 400, base.Normal))
			b.Release(board.SquareToPixel(a8, 400, base.Normal))
			if got := b.PieceAt(a8); got != (base.Piece{Kind: tc.want, Side: base.White}) {
				t.Errorf("%s/%q: a8 = %v, want white %v", engine, tc.promotion, got, tc.want)
			}
		}
	}
}
