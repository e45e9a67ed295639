package ginput

import (
	"bytes"
	"io"
	"strings"

	"chessboard/src"
	"chessboard/src/board"
	"chessboard/src/logx"
	"chessboard/ui/gui/gbase"
)

type Command uint8

const (
	CmdNone Command = iota
	CmdFlip
	CmdCopyFEN
	CmdPasteFEN
	CmdOpenFEN
	CmdPalette
	CmdExit
)

func (c Command) String() string {
	switch c {
	case CmdFlip:
		return "flip"
	case CmdCopyFEN:
		return "copy"
	case CmdPasteFEN:
		return "paste"
	case CmdOpenFEN:
		return "open"
	case CmdPalette:
		return "palette"
	case CmdExit:
		return "exit"
	default:
		return "none"
	}
}

// Keys holds the keys that went down this tick; Ctrl is held, not an edge.
type Keys struct {
	F, C, V, O, P, Escape bool
	Ctrl                  bool
}

func CommandFromKeys(k Keys) Command {
	switch {
	case k.Escape:
		return CmdExit
	case k.Ctrl && k.C:
		return CmdCopyFEN
	case k.Ctrl && k.V:
		return CmdPasteFEN
	case k.Ctrl && k.O, k.O:
		return CmdOpenFEN
	case k.F && !k.Ctrl:
		return CmdFlip
	case k.P && !k.Ctrl:
		return CmdPalette
	default:
		return CmdNone
	}
}

type Clipboard interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

// Desktop is what commands need from the window system.
type Desktop interface {
	Clipboard
	// OpenFile returns ok == false if the user cancelled.
	OpenFile(title string) (data []byte, ok bool, err error)
	Alert(title, message string)
}

type Commander struct {
	board   *board.Board
	desktop Desktop
	logx    logx.Logger
}

func NewCommander(b *board.Board, d Desktop, l logx.Logger) *Commander {
	return &Commander{board: b, desktop: d, logx: l}
}

// Run executes cmd. Only CmdExit returns an error, gbase.ErrExit; other
// failures are shown to the user and logged.
func (c *Commander) Run(cmd Command) error {
	switch cmd {
	case CmdExit:
		return gbase.ErrExit
	case CmdFlip:
		c.board.ToggleOrientation()
		c.logx.Debugf("orientation %v", c.board.Orientation())
	case CmdPalette:
		next := board.DarkPalette
		if c.board.Palette() == board.DarkPalette {
			next = board.ClassicPalette
		}
		c.board.SetPalette(next)
		c.logx.Debugf("palette %v", next)
	case CmdCopyFEN:
		if err := c.desktop.WriteAll(c.board.FEN()); err != nil {
			c.fail("Copy FEN", err)
		}
	case CmdPasteFEN:
		text, err := c.desktop.ReadAll()
		if err != nil {
			c.fail("Paste FEN", err)
			return nil
		}
		c.load("Paste FEN", strings.NewReader(text))
	case CmdOpenFEN:
		data, ok, err := c.desktop.OpenFile("Open FEN")
		if err != nil {
			c.fail("Open FEN", err)
			return nil
		}
		if !ok {
			return nil
		}
		c.load("Open FEN", bytes.NewReader(data))
	}
	return nil
}

func (c *Commander) load(title string, r io.Reader) {
	fen, err := src.ReadFEN(r)
	if err == nil {
		err = c.board.SetPosition(fen)
	}
	if err != nil {
		c.fail(title, err)
		return
	}
	c.logx.Debugf("%s: %s", strings.ToLower(title), fen)
}

func (c *Commander) fail(title string, err error) {
	c.logx.Warnf("%s: %v", strings.ToLower(title), err)
	c.desktop.Alert(title, err.Error())
}
