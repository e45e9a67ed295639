package src

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"chessboard/src/base"
	"chessboard/src/board"
	"chessboard/src/logx"
	"chessboard/src/rules"
	"chessboard/src/rules/dragontooth"
	"chessboard/src/rules/notnilchess"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

func NewEngine(name string) (rules.Engine, error) {
	switch name {
	case "", notnilchess.Name:
		return notnilchess.New(), nil
	case dragontooth.Name:
		return dragontooth.New(), nil
	default:
		return nil, fmt.Errorf("%w: %q", rules.ErrUnknownEngine, name)
	}
}

// at first set the engine, then Build
type BoardBuilder struct {
	engine    rules.Engine
	size      float64
	reversed  bool
	fen       string
	palette   board.Palette
	promotion board.PromotionChooser
	listeners []func(board.PositionChanged)
	logger    logx.Logger
}

func NewBoardBuilder(logger logx.Logger) *BoardBuilder {
	return &BoardBuilder{
		engine:    notnilchess.New(),
		size:      board.DefaultSize,
		fen:       base.FEN_START_GAME,
		palette:   board.ClassicPalette,
		promotion: board.QueenFirst,
		logger:    logger,
	}
}

func (bb *BoardBuilder) SetEngine(name string) error {
	e, err := NewEngine(name)
	if err != nil {
		return err
	}
	bb.logger.Debugf("rules engine: %s", e.Name())
	bb.engine = e
	return nil
}

func (bb *BoardBuilder) SetSize(size float64) {
	bb.size = size
}

func (bb *BoardBuilder) SetReversed(reversed bool) {
	bb.reversed = reversed
}

// SetFEN keeps the standard start for an empty string.
func (bb *BoardBuilder) SetFEN(fen string) {
	if strings.TrimSpace(fen) == "" {
		bb.fen = base.FEN_START_GAME
		return
	}
	bb.fen = fen
}

func (bb *BoardBuilder) SetPalette(name string) {
	bb.palette = board.PaletteFromString(name)
}

// SetPromotion takes "queen" or "engine".
func (bb *BoardBuilder) SetPromotion(name string) {
	bb.promotion = board.PromotionChooserFromString(name)
}

func (bb *BoardBuilder) OnPositionChanged(fn func(board.PositionChanged)) {
	bb.listeners = append(bb.listeners, fn)
}

func (bb *BoardBuilder) Build() (*board.Board, error) {
	o := base.Normal
	if bb.reversed {
		o = base.Reversed
	}
	opts := []board.Option{
		board.WithSize(bb.size),
		board.WithOrientation(o),
		board.WithFEN(bb.fen),
		board.WithPalette(bb.palette),
		board.WithLogger(bb.logger),
		board.WithPromotionChooser(bb.promotion),
	}
	for _, fn := range bb.listeners {
		opts = append(opts, board.WithListener(fn))
	}
	b, err := board.New(bb.engine, opts...)
	if err != nil {
		bb.logger.Errorf("build board: %v", err)
		return nil, err
	}
	return b, nil
}

// ReadFEN returns the first non-blank line of r. A UTF-8 or UTF-16 byte
// order mark is honored, so files saved by Windows editors load too.
func ReadFEN(r io.Reader) (string, error) {
	dec := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	sc := bufio.NewScanner(transform.NewReader(r, dec))
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			return line, nil
		}
	}
	if err := sc.Err(); err != nil {
		return "", fmt.Errorf("read FEN: %w", err)
	}
	return "", fmt.Errorf("read FEN: %w", io.ErrUnexpectedEOF)
}
