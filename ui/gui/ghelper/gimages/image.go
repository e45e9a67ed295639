package gimages

import (
	"math"

	"chessboard/src/base"
	"chessboard/ui/gui/ghelper"
	"chessboard/ui/gui/ghelper/gfont"

	"github.com/hajimehoshi/ebiten/v2"
)

type spriteKey struct {
	piece base.Piece
	px    int
}

// PieceImages keeps one ebiten image per piece and pixel size. A board
// resize leaves older sizes behind until Reset.
type PieceImages struct {
	fonts  *gfont.Fonts
	images map[spriteKey]*ebiten.Image
}

func NewPieceImages(fonts *gfont.Fonts) *PieceImages {
	return &PieceImages{fonts: fonts, images: make(map[spriteKey]*ebiten.Image)}
}

func (pi *PieceImages) Image(p base.Piece, size float64) (*ebiten.Image, error) {
	k := spriteKey{piece: p, px: int(math.Ceil(size))}
	if img, ok := pi.images[k]; ok {
		return img, nil
	}
	src, err := ghelper.RenderPiece(p, k.px, pi.fonts)
	if err != nil {
		return nil, err
	}
	img := ebiten.NewImageFromImage(src)
	pi.images[k] = img
	return img, nil
}

func (pi *PieceImages) Reset() {
	for k, img := range pi.images {
		img.Deallocate()
		delete(pi.images, k)
	}
}
