package board

import (
	"chessboard/src/base"
	"chessboard/src/logx"
	"chessboard/src/rules"
)

type Cell struct {
	Rect  Rect
	Light bool
}

// Label is centered on (X, Y).
type Label struct {
	Text string
	X, Y float64
	Size float64
}

// StaticLayer is the cache-eligible part of a frame. It depends on size
// and orientation only; colors are applied when it is painted.
type StaticLayer struct {
	Size        float64
	Orientation base.Orientation
	// Version grows by one on every rebuild.
	Version    uint64
	Background Rect
	Cells      [64]Cell
	Labels     []Label
}

type TurnIndicator struct {
	X, Y   float64
	Radius float64
	Side   base.Side
}

type Sprite struct {
	Piece  base.Piece
	Square base.Square
	Rect   Rect
}

type Highlight struct {
	Square base.Square
	Rect   Rect
	Target bool
}

// Frame is everything one draw request paints, in z-order.
type Frame struct {
	Static     *StaticLayer
	Palette    Palette
	Highlights []Highlight
	Turn       TurnIndicator
	Pieces     []Sprite
	Dragged    *Sprite
}

type staticKey struct {
	size        float64
	orientation base.Orientation
}

type planner struct {
	cache    *StaticLayer
	key      staticKey
	rebuilds uint64
	logger   logx.Logger
}

func (p *planner) static(size float64, o base.Orientation) *StaticLayer {
	key := staticKey{size: size, orientation: o}
	if p.cache != nil && p.key == key {
		return p.cache
	}
	p.rebuilds++
	p.key = key
	p.cache = buildStatic(size, o, p.rebuilds)
	p.logger.Debugf("static layer rebuilt: size=%v orientation=%v version=%d", size, o, p.rebuilds)
	return p.cache
}

func buildStatic(size float64, o base.Orientation, version uint64) *StaticLayer {
	cell := CellSize(size)
	ext := Extent(size)
	l := &StaticLayer{
		Size:        size,
		Orientation: o,
		Version:     version,
		Background:  Rect{W: ext, H: ext},
	}

	// checkerboard is fixed in screen space, a8 and h1 both land on light
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			l.Cells[row*8+col] = Cell{Rect: cellRect(col, row, size), Light: (row+col)%2 == 0}
		}
	}

	files := []string{"A", "B", "C", "D", "E", "F", "G", "H"}
	ranks := []string{"8", "7", "6", "5", "4", "3", "2", "1"}
	fontSize := cell * 0.4
	near, far := cell*0.25, cell*8.75
	for i, f := range files {
		col := i
		if o == base.Reversed {
			col = 7 - i
		}
		x := cell * (float64(col) + 1)
		l.Labels = append(l.Labels,
			Label{Text: f, X: x, Y: near, Size: fontSize},
			Label{Text: f, X: x, Y: far, Size: fontSize},
		)
	}
	for i, r := range ranks {
		row := i
		if o == base.Reversed {
			row = 7 - i
		}
		y := cell * (float64(row) + 1)
		l.Labels = append(l.Labels,
			Label{Text: r, X: near, Y: y, Size: fontSize},
			Label{Text: r, X: far, Y: y, Size: fontSize},
		)
	}
	return l
}

func (p *planner) plan(size float64, o base.Orientation, pal Palette, pos rules.Position, g Gesture) Frame {
	cell := CellSize(size)
	f := Frame{
		Static:  p.static(size, o),
		Palette: pal,
		Turn: TurnIndicator{
			X:      cell * 8.75,
			Y:      cell * 8.75,
			Radius: cell * 0.25,
			Side:   pos.SideToMove(),
		},
	}

	dragging := g.State == Dragging
	if dragging {
		f.Highlights = append(f.Highlights, Highlight{Square: g.Start, Rect: squareRect(g.Start, size, o)})
		if target, ok := PixelToSquare(g.X, g.Y, size, o); ok && target != g.Start {
			f.Highlights = append(f.Highlights, Highlight{Square: target, Rect: squareRect(target, size, o), Target: true})
		}
	}

	for i := 0; i < 64; i++ {
		sq := base.SquareFromIndex(i)
		if dragging && sq == g.Start {
			continue
		}
		pc := pos.PieceAt(sq)
		if pc.IsEmpty() {
			continue
		}
		f.Pieces = append(f.Pieces, Sprite{Piece: pc, Square: sq, Rect: squareRect(sq, size, o)})
	}

	if dragging {
		cx, cy := ClampPixel(g.X, g.Y, size)
		f.Dragged = &Sprite{
			Piece:  g.Piece,
			Square: g.Start,
			Rect:   Rect{X: cx - cell/2, Y: cy - cell/2, W: cell, H: cell},
		}
	}
	return f
}
