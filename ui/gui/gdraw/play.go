package gdraw

import (
	"fmt"
	"image/color"

	"chessboard/ui/gui/gbase"
	"chessboard/ui/gui/gctx"
	"chessboard/ui/gui/ginput"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// BoardScene is the only scene: the board filling the window.
type BoardScene struct {
	pointer   *ginput.Pointer
	commander *ginput.Commander
	renderer  *screenRenderer
}

func NewBoardScene(ctx *gctx.GUIContext, desktop ginput.Desktop) *BoardScene {
	ox, oy := gbase.BoardOrigin()
	return &BoardScene{
		pointer:   ginput.NewPointer(ox, oy),
		commander: ginput.NewCommander(ctx.Board, desktop, ctx.Logx),
		renderer:  newScreenRenderer(ctx, ox, oy),
	}
}

func (s *BoardScene) Update(ctx *gctx.GUIContext) error {
	cmd := ginput.CommandFromKeys(ginput.Keys{
		F:      inpututil.IsKeyJustPressed(ebiten.KeyF),
		C:      inpututil.IsKeyJustPressed(ebiten.KeyC),
		V:      inpututil.IsKeyJustPressed(ebiten.KeyV),
		O:      inpututil.IsKeyJustPressed(ebiten.KeyO),
		P:      inpututil.IsKeyJustPressed(ebiten.KeyP),
		Escape: inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		Ctrl:   ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta),
	})
	if cmd != ginput.CmdNone {
		ctx.Logx.Debugf("command %v", cmd)
		if err := s.commander.Run(cmd); err != nil {
			return err
		}
	}

	mx, my := ebiten.CursorPosition()
	s.pointer.Feed(ginput.PointerState{
		X:            mx,
		Y:            my,
		JustPressed:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		JustReleased: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
	}, ctx.Board)
	return nil
}

var windowBg = color.RGBA{0x30, 0x2e, 0x2b, 0xff}

func (s *BoardScene) Draw(ctx *gctx.GUIContext, screen *ebiten.Image) {
	screen.Fill(windowBg)
	s.renderer.begin(screen)
	ctx.Board.Draw(s.renderer)

	if ctx.Config.Debug {
		g := ctx.Board.Gesture()
		ebitenutil.DebugPrint(screen, fmt.Sprintf("TPS %.0f  %v %v  static rebuilds %d",
			ebiten.ActualTPS(), g.State, g.Start, ctx.Board.StaticRebuilds()))
	}
}
