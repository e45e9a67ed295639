package gconf

import (
	"encoding/json"
	"fmt"
	"os"
)

const DefaultFile = "chessboard.json"

const (
	MinBoardSize     = 160
	DefaultBoardSize = 400
)

type Config struct {
	BoardSize int    `json:"board_size"` // pixels, square
	Reversed  bool   `json:"reversed"`   // black at the bottom
	Palette   string `json:"palette"`    // classic/dark
	Rules     string `json:"rules"`      // notnil/dragontooth
	Promotion string `json:"promotion"`  // queen/engine
	FEN       string `json:"fen"`        // empty = start position
	Debug     bool   `json:"debug"`      // true/false

	file string
}

func defaultConfig() Config {
	return Config{
		BoardSize: DefaultBoardSize,
		Reversed:  false,
		Palette:   "classic",
		Rules:     "notnil",
		Promotion: "queen",
		FEN:       "",
		Debug:     false,
	}
}

// NewGUIConfig loads file, or returns defaults when it does not exist.
func NewGUIConfig(file string) (*Config, error) {
	if file == "" {
		file = DefaultFile
	}

	_, err := os.Stat(file)
	if os.IsNotExist(err) {
		def := defaultConfig()
		def.file = file
		return &def, nil
	} else if err != nil {
		return nil, err
	}

	conf, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer conf.Close()

	c := defaultConfig()
	dec := json.NewDecoder(conf)
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("error decode config: %w", err)
	}
	correctableConfig(&c)
	c.file = file

	return &c, nil
}

func (c *Config) Save() error {
	jsonData, err := json.MarshalIndent(c, "", "    ")
	if err != nil {
		return err
	}
	return os.WriteFile(c.file, jsonData, 0644)
}

// Correct replaces out-of-range values with defaults. Call it after
// overriding fields by hand.
func (c *Config) Correct() {
	correctableConfig(c)
}

func correctableConfig(c *Config) {
	def := defaultConfig()
	if c.Palette != "classic" && c.Palette != "dark" {
		c.Palette = def.Palette
	}
	if c.Rules != "notnil" && c.Rules != "dragontooth" {
		c.Rules = def.Rules
	}
	if c.Promotion != "queen" && c.Promotion != "engine" {
		c.Promotion = def.Promotion
	}
	if c.BoardSize < MinBoardSize {
		c.BoardSize = def.BoardSize
	}
}
