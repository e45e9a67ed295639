package gdraw

import (
	"image/color"

	"chessboard/src/base"
	"chessboard/src/board"
	"chessboard/ui/gui/gctx"
	"chessboard/ui/gui/ghelper"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// screenRenderer draws board frames onto the ebiten screen. The static
// layer is rasterized with gg once per layer version and palette.
type screenRenderer struct {
	ctx     *gctx.GUIContext
	screen  *ebiten.Image
	originX float64
	originY float64

	static        *ebiten.Image
	staticVersion uint64
	staticPalette board.Palette
	staticSize    float64
}

func newScreenRenderer(ctx *gctx.GUIContext, originX, originY float64) *screenRenderer {
	return &screenRenderer{ctx: ctx, originX: originX, originY: originY}
}

func (r *screenRenderer) begin(screen *ebiten.Image) {
	r.screen = screen
}

func (r *screenRenderer) DrawStatic(layer *board.StaticLayer, pal board.Palette) {
	if r.static == nil || r.staticVersion != layer.Version || r.staticPalette != pal {
		img, err := ghelper.RenderStatic(layer, pal, r.ctx.Fonts)
		if err != nil {
			r.ctx.Logx.Errorf("render static layer: %v", err)
			return
		}
		if r.static != nil {
			r.static.Deallocate()
		}
		if r.staticSize != layer.Size {
			r.ctx.Pieces.Reset()
		}
		r.static = ebiten.NewImageFromImage(img)
		r.staticVersion = layer.Version
		r.staticPalette = pal
		r.staticSize = layer.Size
		r.ctx.Logx.Debugf("static layer v%d rasterized", layer.Version)
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(r.originX, r.originY)
	r.screen.DrawImage(r.static, op)
}

func (r *screenRenderer) FillRect(rect board.Rect, c color.Color) {
	vector.DrawFilledRect(r.screen,
		float32(r.originX+rect.X), float32(r.originY+rect.Y),
		float32(rect.W), float32(rect.H), c, false)
}

func (r *screenRenderer) FillCircle(cx, cy, radius float64, c color.Color) {
	vector.DrawFilledCircle(r.screen,
		float32(r.originX+cx), float32(r.originY+cy), float32(radius), c, true)
}

func (r *screenRenderer) DrawPiece(p base.Piece, rect board.Rect) {
	img, err := r.ctx.Pieces.Image(p, rect.W)
	if err != nil {
		r.ctx.Logx.Errorf("render piece %v: %v", p, err)
		return
	}
	op := &ebiten.DrawImageOptions{}
	scale := rect.W / float64(img.Bounds().Dx())
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(r.originX+rect.X, r.originY+rect.Y)
	op.Filter = ebiten.FilterLinear
	r.screen.DrawImage(img, op)
}
