package board

import (
	"testing"

	"chessboard/src/base"
	"chessboard/src/logx"
	"chessboard/src/rules"
)

func sqs(t *testing.T, from, to string) (base.Square, base.Square) {
	t.Helper()
	return mustSquare(t, from), mustSquare(t, to)
}

func newResolver(c PromotionChooser) *resolver {
	return &resolver{choose: c, logger: logx.NewNop()}
}

func TestResolveOffBoardSkipsEngine(t *testing.T) {
	pos := &fakePosition{}
	from, _ := sqs(t, "e2", "e4")
	if _, _, ok := newResolver(QueenFirst).resolve(pos, Attempt{Start: from}); ok {
		t.Fatal("off-board release resolved")
	}
	if pos.scans != 0 {
		t.Errorf("legal moves requested %d times, want 0", pos.scans)
	}
}

func TestResolveMatchesSourceAndDestination(t *testing.T) {
	e2, e4 := sqs(t, "e2", "e4")
	e3 := mustSquare(t, "e3")
	want := fakeMove{from: e2, to: e4}
	pos := &fakePosition{moves: []rules.Move{fakeMove{from: e2, to: e3}, want, fakeMove{from: e3, to: e4}}}

	next, played, ok := newResolver(QueenFirst).resolve(pos, Attempt{Start: e2, End: e4, HasEnd: true})
	if !ok {
		t.Fatal("legal move not resolved")
	}
	if played != rules.Move(want) {
		t.Errorf("played %v, want %v", played, want)
	}
	if next.(*fakePosition).played != rules.Move(want) {
		t.Error("engine was not asked to apply the matched move")
	}
}

func TestResolveRejects(t *testing.T) {
	e2, e4 := sqs(t, "e2", "e4")
	legal := []rules.Move{fakeMove{from: e2, to: e4}}
	tests := []struct {
		name string
		pos  *fakePosition
		a    Attempt
	}{
		{"no match", &fakePosition{moves: legal}, Attempt{Start: e2, End: mustSquare(t, "g4"), HasEnd: true}},
		{"same square", &fakePosition{moves: legal}, Attempt{Start: e2, End: e2, HasEnd: true}},
		{"reversed direction", &fakePosition{moves: legal}, Attempt{Start: e4, End: e2, HasEnd: true}},
		{"apply fails", &fakePosition{moves: legal, applyErr: errFakeApply}, Attempt{Start: e2, End: e4, HasEnd: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if next, _, ok := newResolver(QueenFirst).resolve(tt.pos, tt.a); ok || next != nil {
				t.Errorf("resolve = (%v, %v), want rejection", next, ok)
			}
		})
	}
}

func TestResolvePromotionChoice(t *testing.T) {
	a7, a8 := sqs(t, "a7", "a8")
	moves := []rules.Move{
		fakeMove{from: a7, to: a8, promo: base.Knight},
		fakeMove{from: a7, to: a8, promo: base.Queen},
		fakeMove{from: a7, to: a8, promo: base.Rook},
	}
	tests := []struct {
		name    string
		chooser PromotionChooser
		want    base.Kind
	}{
		{"queen first", QueenFirst, base.Queen},
		{"engine order", EngineOrder, base.Knight},
		{"custom", func(c []rules.Move) rules.Move { return c[len(c)-1] }, base.Rook},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := &fakePosition{moves: moves}
			_, played, ok := newResolver(tt.chooser).resolve(pos, Attempt{Start: a7, End: a8, HasEnd: true})
			if !ok {
				t.Fatal("promotion not resolved")
			}
			if played.Promotion() != tt.want {
				t.Errorf("promotion = %v, want %v", played.Promotion(), tt.want)
			}
		})
	}
}

func TestQueenFirstWithoutQueen(t *testing.T) {
	a7, a8 := sqs(t, "a7", "a8")
	c := []rules.Move{fakeMove{from: a7, to: a8, promo: base.Bishop}, fakeMove{from: a7, to: a8, promo: base.Rook}}
	if got := QueenFirst(c); got.Promotion() != base.Bishop {
		t.Errorf("QueenFirst = %v, want first candidate", got)
	}
}

func TestPromotionChooserFromString(t *testing.T) {
	a7, a8 := sqs(t, "a7", "a8")
	c := []rules.Move{fakeMove{from: a7, to: a8, promo: base.Knight}, fakeMove{from: a7, to: a8, promo: base.Queen}}
	tests := []struct {
		name string
		want base.Kind
	}{
		{"engine", base.Knight},
		{"queen", base.Queen},
		{"", base.Queen},
		{"rook", base.Queen},
	}
	for _, tt := range tests {
		if got := PromotionChooserFromString(tt.name)(c); got.Promotion() != tt.want {
			t.Errorf("PromotionChooserFromString(%q) chose %v, want %v", tt.name, got.Promotion(), tt.want)
		}
	}
}

func TestWithPromotionChooser(t *testing.T) {
	var log eventLog
	b := newTestBoard(t,
		WithFEN("4k3/P7/8/8/8/8/8/4K3 w - - 0 1"),
		WithPromotionChooser(func(c []rules.Move) rules.Move {
			for _, m := range c {
				if m.Promotion() == base.Rook {
					return m
				}
			}
			return c[0]
		}),
		WithListener(log.listen),
	)
	a7, a8 := sqs(t, "a7", "a8")
	b.Press(SquareToPixel(a7, 400, base.Normal))
	b.Release(SquareToPixel(a8, 400, base.Normal))
	if got := b.PieceAt(a8); got != (base.Piece{Kind: base.Rook, Side: base.White}) {
		t.Errorf("a8 = %v, want white rook", got)
	}
	if len(log.events) != 1 {
		t.Errorf("events = %d, want 1", len(log.events))
	}
}
