package gctx

import (
	"chessboard/src/board"
	"chessboard/src/logx"
	"chessboard/ui/gui/gbase/gconf"
	"chessboard/ui/gui/ghelper/gfont"
	"chessboard/ui/gui/ghelper/gimages"
)

// ---- GUI Context ----

type GUIContext struct {
	Board  *board.Board
	Config *gconf.Config
	Fonts  *gfont.Fonts
	Pieces *gimages.PieceImages
	Logx   logx.Logger
}

func NewGUIContext(b *board.Board, c *gconf.Config, l logx.Logger) (*GUIContext, error) {
	fonts, err := gfont.LoadFonts()
	if err != nil {
		return nil, err
	}
	return &GUIContext{
		Board:  b,
		Config: c,
		Fonts:  fonts,
		Pieces: gimages.NewPieceImages(fonts),
		Logx:   l,
	}, nil
}
