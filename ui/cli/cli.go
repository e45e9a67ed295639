package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"chessboard/src/base"
	"chessboard/src/board"
	"chessboard/src/logx"

	"golang.org/x/term"
)

var (
	errQuit     = errors.New("quit")
	errDragging = errors.New("a piece is held, release it before drag")
)

const help = `commands:
  press X Y | move X Y | release X Y   pointer event at pixel (X, Y)
  drag FROM TO                         press, move and release, e.g. drag e2 e4
  flip                                 toggle orientation
  orient normal|reversed               set orientation
  palette classic|dark                 set colors
  fen FEN                              set the position
  show                                 redraw the board
  quit`

type CLIProcessing struct {
	board *board.Board
	logx  logx.Logger
	in    io.Reader
	out   io.Writer
	color bool
}

func NewCLI(b *board.Board, l logx.Logger) *CLIProcessing {
	return newCLI(b, l, os.Stdin, os.Stdout, term.IsTerminal(int(os.Stdout.Fd())))
}

func newCLI(b *board.Board, l logx.Logger, in io.Reader, out io.Writer, useColor bool) *CLIProcessing {
	c := &CLIProcessing{board: b, logx: l, in: in, out: out, color: useColor}
	b.OnPositionChanged(func(ev board.PositionChanged) {
		fmt.Fprintf(c.out, "move %s, %v to move\nFEN: %s\n", ev.Move, ev.SideToMove, ev.FEN)
	})
	return c
}

// Run reads commands with line editing when stdin is a terminal, and falls
// back to plain line mode otherwise.
func (c *CLIProcessing) Run() error {
	f, ok := c.in.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return c.RunLineMode()
	}
	fd := int(f.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return c.RunLineMode()
	}
	defer term.Restore(fd, oldState) //nolint:errcheck

	t := term.NewTerminal(struct {
		io.Reader
		io.Writer
	}{f, c.out}, "> ")
	c.out = t
	if w, _, err := term.GetSize(fd); err == nil && w < gridSide*3 {
		fmt.Fprintf(c.out, "terminal is %d columns wide, the board needs %d\n", w, gridSide*3)
	}
	c.draw()
	fmt.Fprintln(c.out, help)
	for {
		line, err := t.ReadLine()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if err := c.exec(line); errors.Is(err, errQuit) {
			return nil
		}
	}
}

func (c *CLIProcessing) RunLineMode() error {
	scanner := bufio.NewScanner(c.in)
	c.draw()
	fmt.Fprintln(c.out, help)
	for scanner.Scan() {
		if err := c.exec(scanner.Text()); errors.Is(err, errQuit) {
			return nil
		}
	}
	return scanner.Err()
}

// exec runs one command line. Errors other than errQuit are printed.
func (c *CLIProcessing) exec(line string) error {
	cmd, err := parseCommand(line)
	if err != nil {
		fmt.Fprintf(c.out, "error: %v\n", err)
		return err
	}
	err = c.apply(cmd)
	if err != nil && !errors.Is(err, errQuit) {
		fmt.Fprintf(c.out, "error: %v\n", err)
	}
	return err
}

func (c *CLIProcessing) apply(cmd command) error {
	switch cmd.name {
	case "":
		return nil
	case "quit":
		return errQuit
	case "help":
		fmt.Fprintln(c.out, help)
		return nil
	case "show":
	case "flip":
		c.board.ToggleOrientation()
	case "orient":
		o := base.Normal
		if cmd.arg == "reversed" {
			o = base.Reversed
		}
		c.board.SetOrientation(o)
	case "palette":
		c.board.SetPalette(board.PaletteFromString(cmd.arg))
	case "fen":
		if err := c.board.SetPosition(cmd.fen); err != nil {
			return err
		}
	case "press":
		c.report(c.board.Press(cmd.x, cmd.y))
	case "move":
		c.report(c.board.Move(cmd.x, cmd.y))
	case "release":
		c.report(c.board.Release(cmd.x, cmd.y))
	case "drag":
		if c.board.Gesture().State == board.Dragging {
			return errDragging
		}
		c.drag(cmd.from, cmd.to)
	}
	c.draw()
	return nil
}

// drag plays a whole gesture between two square centers.
func (c *CLIProcessing) drag(from, to base.Square) {
	size, o := c.board.Size(), c.board.Orientation()
	fx, fy := board.SquareToPixel(from, size, o)
	tx, ty := board.SquareToPixel(to, size, o)
	c.report(c.board.Press(fx, fy))
	c.board.Move(tx, ty)
	c.report(c.board.Release(tx, ty))
}

func (c *CLIProcessing) report(out board.Outcome) {
	c.logx.Debugf("outcome %v", out)
	fmt.Fprintf(c.out, "%v\n", out)
}

func (c *CLIProcessing) draw() {
	r := newTermRenderer(c.color)
	c.board.Draw(r)
	if _, err := r.WriteTo(c.out); err != nil {
		c.logx.Errorf("draw board: %v", err)
	}
	g := c.board.Gesture()
	status := fmt.Sprintf("%v to move", c.board.SideToMove())
	if g.State == board.Dragging {
		status += fmt.Sprintf(", dragging %v from %v", g.Piece, g.Start)
	}
	fmt.Fprintln(c.out, status)
}

type command struct {
	name     string
	x, y     float64
	from, to base.Square
	fen      string
	arg      string
}

func parseCommand(line string) (command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return command{}, nil
	}
	cmd := command{name: strings.ToLower(fields[0])}
	args := fields[1:]
	switch cmd.name {
	case "q", "exit":
		cmd.name = "quit"
		fallthrough
	case "quit", "flip", "show", "help":
		if len(args) != 0 {
			return command{}, fmt.Errorf("%s takes no arguments", cmd.name)
		}
	case "press", "move", "release":
		if len(args) != 2 {
			return command{}, fmt.Errorf("usage: %s X Y", cmd.name)
		}
		var err error
		if cmd.x, err = strconv.ParseFloat(args[0], 64); err != nil {
			return command{}, fmt.Errorf("bad X %q", args[0])
		}
		if cmd.y, err = strconv.ParseFloat(args[1], 64); err != nil {
			return command{}, fmt.Errorf("bad Y %q", args[1])
		}
	case "orient", "palette":
		valid := map[string][]string{
			"orient":  {"normal", "reversed"},
			"palette": {"classic", "dark"},
		}[cmd.name]
		usage := fmt.Errorf("usage: %s %s", cmd.name, strings.Join(valid, "|"))
		if len(args) != 1 {
			return command{}, usage
		}
		cmd.arg = strings.ToLower(args[0])
		if cmd.arg != valid[0] && cmd.arg != valid[1] {
			return command{}, usage
		}
	case "drag":
		if len(args) != 2 {
			return command{}, errors.New("usage: drag FROM TO")
		}
		var err error
		if cmd.from, err = base.SquareFromAlgebraic(args[0]); err != nil {
			return command{}, err
		}
		if cmd.to, err = base.SquareFromAlgebraic(args[1]); err != nil {
			return command{}, err
		}
	case "fen":
		if len(args) == 0 {
			return command{}, errors.New("usage: fen FEN")
		}
		cmd.fen = strings.Join(args, " ")
	default:
		return command{}, fmt.Errorf("unknown command %q, try help", fields[0])
	}
	return cmd, nil
}
