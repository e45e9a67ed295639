package ui

import (
	"context"
	"fmt"
	"os"

	"chessboard/src"
	"chessboard/src/base"
	"chessboard/src/board"
	"chessboard/src/logx"
	clic "chessboard/ui/cli"
	"chessboard/ui/gui"
	"chessboard/ui/gui/gbase/gconf"

	"github.com/urfave/cli/v3"
)

const logfile string = "chessboard.log"

func GetLogger(file *os.File, c *cli.Command) *logx.Logx {
	l := logx.NewLogx(
		logx.GetLoggerLevelByString(c.String("level")),
		c.Bool("debug"),
		c.Bool("console"),
	)
	l.InitLogger(file)
	return l
}

// loadConfig reads the config file and lets explicit flags override it.
// Flag values go through the same correction as file values. The result is
// never saved; see saveWindowState.
func loadConfig(c *cli.Command) (*gconf.Config, error) {
	conf, err := gconf.NewGUIConfig(c.String("config"))
	if err != nil {
		return nil, err
	}
	if c.IsSet("size") {
		conf.BoardSize = int(c.Int("size"))
	}
	if c.IsSet("reversed") {
		conf.Reversed = c.Bool("reversed")
	}
	if c.IsSet("palette") {
		conf.Palette = c.String("palette")
	}
	if c.IsSet("rules") {
		conf.Rules = c.String("rules")
	}
	if c.IsSet("fen") {
		conf.FEN = c.String("fen")
	}
	if c.IsSet("promotion") {
		conf.Promotion = c.String("promotion")
	}
	if c.IsSet("debug") {
		conf.Debug = c.Bool("debug")
	}
	conf.Correct()
	if path := c.String("fen-file"); path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		if conf.FEN, err = src.ReadFEN(f); err != nil {
			return nil, err
		}
	}
	return conf, nil
}

func buildBoard(conf *gconf.Config, l logx.Logger) (*board.Board, error) {
	bb := src.NewBoardBuilder(l)
	if err := bb.SetEngine(conf.Rules); err != nil {
		return nil, err
	}
	bb.SetSize(float64(conf.BoardSize))
	bb.SetReversed(conf.Reversed)
	bb.SetPalette(conf.Palette)
	bb.SetFEN(conf.FEN)
	bb.SetPromotion(conf.Promotion)
	return bb.Build()
}

// saveWindowState writes back only the board size and orientation, on top
// of what the file held, so one-off flags never become settings.
func saveWindowState(path string, size int, reversed bool) error {
	conf, err := gconf.NewGUIConfig(path)
	if err != nil {
		return err
	}
	conf.BoardSize = size
	conf.Reversed = reversed
	conf.Correct()
	return conf.Save()
}

func openLog() (*os.File, error) {
	return os.OpenFile(logfile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
}

func RunGUI(c *cli.Command) error {
	file, err := openLog()
	if err != nil {
		return fmt.Errorf("error open logfile: %w", err)
	}
	defer file.Close()
	l := GetLogger(file, c)
	defer l.Sync() //nolint:errcheck

	conf, err := loadConfig(c)
	if err != nil {
		l.Errorf("config: %v", err)
		return err
	}
	b, err := buildBoard(conf, l)
	if err != nil {
		return err
	}
	g, err := gui.NewGUI(b, conf, l)
	if err != nil {
		return err
	}
	if err := g.Run(); err != nil {
		return err
	}

	// the window may have been resized or flipped
	if err := saveWindowState(c.String("config"), int(b.Size()), b.Orientation() == base.Reversed); err != nil {
		l.Warnf("save config: %v", err)
	}
	return nil
}

func RunCLI(c *cli.Command) error {
	file, err := openLog()
	if err != nil {
		return fmt.Errorf("error open logfile: %w", err)
	}
	defer file.Close()
	l := GetLogger(file, c)
	defer l.Sync() //nolint:errcheck

	conf, err := loadConfig(c)
	if err != nil {
		l.Errorf("config: %v", err)
		return err
	}
	b, err := buildBoard(conf, l)
	if err != nil {
		return err
	}
	clic.EnableANSI()
	return clic.NewCLI(b, l).Run()
}

func appFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "config",
			Value: gconf.DefaultFile,
			Usage: "path to JSON config",
		},
		&cli.StringFlag{
			Name:  "fen",
			Usage: "start position in FEN format",
		},
		&cli.StringFlag{
			Name:  "fen-file",
			Usage: "read the start position from a file",
		},
		&cli.IntFlag{
			Name:  "size",
			Usage: "board size in pixels",
		},
		&cli.BoolFlag{
			Name:    "reversed",
			Aliases: []string{"r"},
			Usage:   "black at the bottom",
		},
		&cli.StringFlag{
			Name:  "rules",
			Usage: "rules engine: notnil or dragontooth",
		},
		&cli.StringFlag{
			Name:  "palette",
			Usage: "classic or dark",
		},
		&cli.StringFlag{
			Name:  "promotion",
			Usage: "promotion on a plain drag: queen or engine (first legal move)",
		},
		&cli.BoolFlag{
			Name:    "debug",
			Aliases: []string{"d"},
			Usage:   "enable debug mod",
		},
		&cli.StringFlag{
			Name:    "level",
			Aliases: []string{"l"},
			Value:   "info",
			Usage:   "logger level",
		},
		&cli.BoolFlag{
			Name:    "console",
			Aliases: []string{"c"},
			Usage:   "console logger encoding",
		},
	}
}

func RunChessBoard() error {
	// root flags are inherited by both subcommands
	return (&cli.Command{
		Name:  "chessboard",
		Usage: "drag-and-drop chessboard",
		Flags: appFlags(),
		Commands: []*cli.Command{
			{
				Name:  "cli",
				Usage: "board in the terminal, driven by pointer commands",
				Action: func(ctx context.Context, c *cli.Command) error {
					return RunCLI(c)
				},
			},
			{
				Name:  "gui",
				Usage: "board in a window",
				Action: func(ctx context.Context, c *cli.Command) error {
					return RunGUI(c)
				},
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return RunGUI(c)
		},
	}).Run(context.Background(), os.Args)
}
