package gconf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestMissingFileGivesDefaults(t *testing.T) {
	c, err := NewGUIConfig(filepath.Join(t.TempDir(), "none.json"))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(defaultConfig(), *c, cmpopts.IgnoreUnexported(Config{})); diff != "" {
		t.Errorf("defaults mismatch (-want +got):\n%s", diff)
	}
}

func TestCorrectableConfig(t *testing.T) {
	file := filepath.Join(t.TempDir(), "c.json")
	raw := `{"board_size": 12, "palette": "neon", "rules": "stockfish", "reversed": true, "promotion": "knight", "fen": "8/8/8/8/8/8/8/k6K w - - 0 1"}`
	if err := os.WriteFile(file, []byte(raw), 0644); err != nil {
		t.Fatal(err)
	}
	c, err := NewGUIConfig(file)
	if err != nil {
		t.Fatal(err)
	}
	want := Config{
		BoardSize: DefaultBoardSize,
		Reversed:  true,
		Palette:   "classic",
		Rules:     "notnil",
		Promotion: "queen",
		FEN:       "8/8/8/8/8/8/8/k6K w - - 0 1",
	}
	if diff := cmp.Diff(want, *c, cmpopts.IgnoreUnexported(Config{})); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	file := filepath.Join(t.TempDir(), "c.json")
	c, err := NewGUIConfig(file)
	if err != nil {
		t.Fatal(err)
	}
	c.BoardSize = 560
	c.Rules = "dragontooth"
	if err := c.Save(); err != nil {
		t.Fatal(err)
	}
	again, err := NewGUIConfig(file)
	if err != nil {
		t.Fatal(err)
	}
	if again.BoardSize != 560 || again.Rules != "dragontooth" {
		t.Errorf("reloaded = %+v", again)
	}
}

func TestBrokenFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "c.json")
	if err := os.WriteFile(file, []byte("{"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewGUIConfig(file); err == nil {
		t.Error("broken JSON accepted")
	}
}

func TestCorrectAfterOverride(t *testing.T) {
	c := defaultConfig()
	c.BoardSize = 100
	c.Promotion = "engine"
	c.Correct()
	if c.BoardSize != DefaultBoardSize {
		t.Errorf("BoardSize = %d, want %d", c.BoardSize, DefaultBoardSize)
	}
	if c.Promotion != "engine" {
		t.Errorf("Promotion = %q, want engine", c.Promotion)
	}
}
