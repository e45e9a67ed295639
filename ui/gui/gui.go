package gui

import (
	"math"

	"chessboard/src/board"
	"chessboard/src/logx"
	"chessboard/ui/gui/gbase"
	"chessboard/ui/gui/gbase/gconf"
	"chessboard/ui/gui/gctx"
	"chessboard/ui/gui/gdraw"
	"chessboard/ui/gui/ginput"
	"chessboard/ui/gui/ghelper/gclipboard"
	"chessboard/ui/gui/ghelper/gdialog"

	"github.com/hajimehoshi/ebiten/v2"
)

type GUIProcessing struct {
	current gdraw.Scene
	ctx     *gctx.GUIContext
	title   ginput.Title
}

// desktop backs GUI commands with the system clipboard and native dialogs.
type desktop struct{}

func (desktop) ReadAll() (string, error)   { return gclipboard.ReadAll() }
func (desktop) WriteAll(text string) error { return gclipboard.WriteAll(text) }

func (desktop) OpenFile(title string) ([]byte, bool, error) {
	return gdialog.OpenFile(title)
}

func (desktop) Alert(title, message string) { gdialog.ShowError(title, message) }

func NewGUI(b *board.Board, c *gconf.Config, l logx.Logger) (*GUIProcessing, error) {
	ctx, err := gctx.NewGUIContext(b, c, l)
	if err != nil {
		return nil, err
	}
	if !gclipboard.Available() {
		l.Warn("no clipboard utility found, copy and paste will fail")
	}
	return &GUIProcessing{
		current: gdraw.NewBoardScene(ctx, desktop{}),
		ctx:     ctx,
	}, nil
}

func (gp *GUIProcessing) Run() error {
	w, h := gbase.WindowSize(gp.ctx.Board.Extent())
	ebiten.SetWindowSize(w, h)
	title, _ := gp.title.Next(gp.ctx.Board)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(gbase.TPS)
	gp.ctx.Logx.Infof("gui started: %dx%d", w, h)

	err := ebiten.RunGame(gp)
	if err == gbase.ErrExit {
		return nil
	}
	return err
}

func (gp *GUIProcessing) Update() error {
	if err := gp.current.Update(gp.ctx); err != nil {
		return err
	}
	if title, changed := gp.title.Next(gp.ctx.Board); changed {
		ebiten.SetWindowTitle(title)
	}
	return nil
}

func (gp *GUIProcessing) Draw(screen *ebiten.Image) {
	gp.current.Draw(gp.ctx, screen)
}

// Layout follows the window: the board grows or shrinks to the largest
// size whose extent fits the shorter side.
func (gp *GUIProcessing) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	side := min(outsideWidth, outsideHeight) - 2*gbase.BoardMargin
	size := math.Floor(float64(side) * 8 / 9)
	if size >= gconf.MinBoardSize && size != gp.ctx.Board.Size() {
		if err := gp.ctx.Board.SetSize(size); err != nil {
			gp.ctx.Logx.Warnf("resize board: %v", err)
		}
	}
	return outsideWidth, outsideHeight
}
