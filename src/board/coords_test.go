package board

import (
	"math"
	"testing"

	"chessboard/src/base"
)

func mustSquare(t *testing.T, s string) base.Square {
	t.Helper()
	sq, err := base.SquareFromAlgebraic(s)
	if err != nil {
		t.Fatal(err)
	}
	return sq
}

func TestPixelToSquareScenarios(t *testing.T) {
	tests := []struct {
		name   string
		x, y   float64
		orient base.Orientation
		want   string
	}{
		{"e2 normal", 225, 325, base.Normal, "e2"},
		{"e4 normal", 225, 225, base.Normal, "e4"},
		{"g4 normal", 325, 225, base.Normal, "g4"},
		{"a8 top-left normal", 30, 30, base.Normal, "a8"},
		{"h1 bottom-right normal", 420, 420, base.Normal, "h1"},
		{"h1 top-left reversed", 30, 30, base.Reversed, "h1"},
		{"e2 reversed", 200, 100, base.Reversed, "e2"},
		{"flip of e7 reversed", 225, 75, base.Reversed, "d2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := PixelToSquare(tt.x, tt.y, 400, tt.orient)
			if !ok {
				t.Fatalf("PixelToSquare(%v, %v) = none, want %s", tt.x, tt.y, tt.want)
			}
			if got != mustSquare(t, tt.want) {
				t.Errorf("PixelToSquare(%v, %v) = %v, want %s", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestPixelToSquareOffBoard(t *testing.T) {
	points := [][2]float64{
		{24.9, 200}, {200, 24.9}, {425, 200}, {200, 425},
		{-1000, -1000}, {math.Inf(1), 100}, {100, math.Inf(-1)}, {math.NaN(), 100},
	}
	for _, o := range []base.Orientation{base.Normal, base.Reversed} {
		for _, p := range points {
			if sq, ok := PixelToSquare(p[0], p[1], 400, o); ok {
				t.Errorf("PixelToSquare(%v, %v, %v) = %v, want none", p[0], p[1], o, sq)
			}
		}
	}
	if _, ok := PixelToSquare(100, 100, 0, base.Normal); ok {
		t.Error("zero board size must map nothing")
	}
}

func TestSquareToPixelRoundTrip(t *testing.T) {
	sizes := []float64{8, 57, 123.7, 400, 401, 999.99, 2048}
	for _, size := range sizes {
		for _, o := range []base.Orientation{base.Normal, base.Reversed} {
			for i := 0; i < 64; i++ {
				sq := base.SquareFromIndex(i)
				x, y := SquareToPixel(sq, size, o)
				got, ok := PixelToSquare(x, y, size, o)
				if !ok || got != sq {
					t.Fatalf("size %v %v: %v -> (%v, %v) -> %v (%v)", size, o, sq, x, y, got, ok)
				}
			}
		}
	}
}

func TestOrientationSymmetry(t *testing.T) {
	const size = 400
	for x := -10.0; x < 440; x += 7.5 {
		for y := -10.0; y < 440; y += 7.5 {
			n, nok := PixelToSquare(x, y, size, base.Normal)
			r, rok := PixelToSquare(x, y, size, base.Reversed)
			if nok != rok {
				t.Fatalf("(%v, %v): on-board disagrees %v vs %v", x, y, nok, rok)
			}
			if nok && r != n.Flip() {
				t.Fatalf("(%v, %v): reversed %v, want flip(%v) = %v", x, y, r, n, n.Flip())
			}
		}
	}
}

func TestClampPixel(t *testing.T) {
	tests := []struct {
		x, y, wantX, wantY float64
	}{
		{200, 200, 200, 200},
		{-50, 200, 25, 200},
		{500, 900, 425, 425},
		{math.NaN(), 10, 25, 25},
	}
	for _, tt := range tests {
		x, y := ClampPixel(tt.x, tt.y, 400)
		if x != tt.wantX || y != tt.wantY {
			t.Errorf("ClampPixel(%v, %v) = (%v, %v), want (%v, %v)", tt.x, tt.y, x, y, tt.wantX, tt.wantY)
		}
	}
	// clamping is cosmetic: the clamped point of an off-board release is on
	// the board, the release itself is not
	if _, ok := PixelToSquare(-50, 200, 400, base.Normal); ok {
		t.Error("off-board pointer must stay unmapped")
	}
}

func TestCellGeometry(t *testing.T) {
	if got := CellSize(400); got != 50 {
		t.Errorf("CellSize(400) = %v, want 50", got)
	}
	if got := Extent(400); got != 450 {
		t.Errorf("Extent(400) = %v, want 450", got)
	}
	r := squareRect(mustSquare(t, "a8"), 400, base.Normal)
	if r != (Rect{X: 25, Y: 25, W: 50, H: 50}) {
		t.Errorf("a8 rect = %+v", r)
	}
	cx, cy := r.Center()
	if x, y := SquareToPixel(mustSquare(t, "a8"), 400, base.Normal); x != cx || y != cy {
		t.Errorf("SquareToPixel(a8) = (%v, %v), want rect center (%v, %v)", x, y, cx, cy)
	}
}
