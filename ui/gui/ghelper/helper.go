package ghelper

import (
	"image"
	"image/color"
	"math"

	"chessboard/src/base"
	"chessboard/src/board"
	"chessboard/ui/gui/ghelper/gfont"

	"github.com/fogleman/gg"
)

// ggCanvas paints a static layer with gg, so cell edges and labels come out
// anti-aliased.
type ggCanvas struct {
	dc    *gg.Context
	fonts *gfont.Fonts
	err   error
}

func (c *ggCanvas) FillRect(r board.Rect, col color.Color) {
	c.dc.SetColor(col)
	c.dc.DrawRectangle(r.X, r.Y, r.W, r.H)
	c.dc.Fill()
}

func (c *ggCanvas) DrawText(l board.Label, col color.Color) {
	face, err := c.fonts.Regular(l.Size)
	if err != nil {
		c.err = err
		return
	}
	c.dc.SetFontFace(face)
	c.dc.SetColor(col)
	c.dc.DrawStringAnchored(l.Text, l.X, l.Y, 0.5, 0.5)
}

// RenderStatic rasterizes the layer into an image exactly one extent wide.
func RenderStatic(layer *board.StaticLayer, pal board.Palette, fonts *gfont.Fonts) (image.Image, error) {
	side := int(math.Ceil(board.Extent(layer.Size)))
	c := &ggCanvas{dc: gg.NewContext(side, side), fonts: fonts}
	layer.Paint(c, pal)
	if c.err != nil {
		return nil, c.err
	}
	return c.dc.Image(), nil
}

var (
	whiteFill = color.RGBA{0xf8, 0xf4, 0xe8, 0xff}
	whiteInk  = color.RGBA{0x30, 0x30, 0x30, 0xff}
	blackFill = color.RGBA{0x26, 0x22, 0x1e, 0xff}
	blackInk  = color.RGBA{0xf0, 0xec, 0xe0, 0xff}
)

// RenderPiece draws a piece as a disc with its letter, px pixels square.
func RenderPiece(p base.Piece, px int, fonts *gfont.Fonts) (image.Image, error) {
	if px < 1 {
		px = 1
	}
	dc := gg.NewContext(px, px)
	if p.IsEmpty() {
		return dc.Image(), nil
	}
	fill, ink := whiteFill, whiteInk
	if p.Side == base.Black {
		fill, ink = blackFill, blackInk
	}
	half := float64(px) / 2
	dc.DrawCircle(half, half, half*0.82)
	dc.SetColor(fill)
	dc.FillPreserve()
	dc.SetColor(ink)
	dc.SetLineWidth(math.Max(1, float64(px)/32))
	dc.Stroke()

	face, err := fonts.Bold(float64(px) * 0.5)
	if err != nil {
		return nil, err
	}
	dc.SetFontFace(face)
	dc.DrawStringAnchored(string(base.ConvertUpperRuneFromPiece(p)), half, half, 0.5, 0.35)
	return dc.Image(), nil
}
