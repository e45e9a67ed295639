package cli

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"strings"

	"chessboard/src/base"
	"chessboard/src/board"
)

// The terminal shows the drawing area as a 10x10 grid of visual cells: the
// 8x8 board plus a label ring. A primitive lands in the visual cell that
// holds its center, so the grid follows whatever size the board has.
const gridSide = 10

const reset = "\033[0m"

type termCell struct {
	bg    color.Color
	fg    color.Color
	glyph string
}

// termRenderer implements board.Renderer on a character grid.
type termRenderer struct {
	cell  float64
	grid  [gridSide][gridSide]termCell
	color bool
}

func newTermRenderer(useColor bool) *termRenderer {
	return &termRenderer{color: useColor}
}

func (r *termRenderer) visual(x, y float64) (int, int, bool) {
	if r.cell <= 0 {
		return 0, 0, false
	}
	col := int(math.Floor(x/r.cell + 0.5))
	row := int(math.Floor(y/r.cell + 0.5))
	if col < 0 || col >= gridSide || row < 0 || row >= gridSide {
		return 0, 0, false
	}
	return col, row, true
}

func (r *termRenderer) DrawStatic(layer *board.StaticLayer, pal board.Palette) {
	r.cell = board.CellSize(layer.Size)
	for row := range r.grid {
		for col := range r.grid[row] {
			r.grid[row][col] = termCell{bg: pal.Background, glyph: " "}
		}
	}
	layer.Paint(r, pal)
}

// FillRect and DrawText double as the board.Canvas for the static layer.
func (r *termRenderer) FillRect(rect board.Rect, c color.Color) {
	cx, cy := rect.Center()
	// the background covers the whole area; its center is not a cell
	if rect.W > r.cell*1.5 {
		return
	}
	if col, row, ok := r.visual(cx, cy); ok {
		r.grid[row][col].bg = c
	}
}

func (r *termRenderer) DrawText(l board.Label, c color.Color) {
	if col, row, ok := r.visual(l.X, l.Y); ok {
		r.grid[row][col].glyph = l.Text
		r.grid[row][col].fg = c
	}
}

func (r *termRenderer) FillCircle(cx, cy, _ float64, c color.Color) {
	if col, row, ok := r.visual(cx, cy); ok {
		r.grid[row][col].glyph = "●"
		r.grid[row][col].fg = c
	}
}

func (r *termRenderer) DrawPiece(p base.Piece, rect board.Rect) {
	cx, cy := rect.Center()
	if col, row, ok := r.visual(cx, cy); ok {
		r.grid[row][col].glyph = pieceGlyph(p)
		r.grid[row][col].fg = pieceInk(p)
	}
}

// WriteTo prints the grid, three columns per visual cell.
func (r *termRenderer) WriteTo(w io.Writer) (int64, error) {
	var sb strings.Builder
	for row := range r.grid {
		for _, c := range r.grid[row] {
			if r.color {
				sb.WriteString(ansiBg(c.bg))
				if c.fg != nil {
					sb.WriteString(ansiFg(c.fg))
				}
			}
			sb.WriteString(" " + c.glyph + " ")
			if r.color {
				sb.WriteString(reset)
			}
		}
		sb.WriteString("\n")
	}
	n, err := io.WriteString(w, sb.String())
	return int64(n), err
}

func ansiBg(c color.Color) string {
	cr, cg, cb, _ := c.RGBA()
	return fmt.Sprintf("\033[48;2;%d;%d;%dm", cr>>8, cg>>8, cb>>8)
}

func ansiFg(c color.Color) string {
	cr, cg, cb, _ := c.RGBA()
	return fmt.Sprintf("\033[38;2;%d;%d;%dm", cr>>8, cg>>8, cb>>8)
}

var (
	whiteInk = color.RGBA{0xff, 0xff, 0xff, 0xff}
	blackInk = color.RGBA{0x00, 0x00, 0x00, 0xff}
)

func pieceInk(p base.Piece) color.Color {
	if p.Side == base.Black {
		return blackInk
	}
	return whiteInk
}

// White gets the outlined glyphs so the board still reads without color.
func pieceGlyph(p base.Piece) string {
	switch p.Kind {
	case base.King:
		return sidePick(p, "♔", "♚")
	case base.Queen:
		return sidePick(p, "♕", "♛")
	case base.Rook:
		return sidePick(p, "♖", "♜")
	case base.Bishop:
		return sidePick(p, "♗", "♝")
	case base.Knight:
		return sidePick(p, "♘", "♞")
	case base.Pawn:
		return sidePick(p, "♙", "♟")
	default:
		return " "
	}
}

func sidePick(p base.Piece, white, black string) string {
	if p.Side == base.White {
		return white
	}
	return black
}
