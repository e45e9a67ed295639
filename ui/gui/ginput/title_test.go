package ginput

import (
	"testing"

	"chessboard/src/logx"
)

func TestTitleFollowsLoadedPosition(t *testing.T) {
	b, _ := newBoard(t)
	var title Title
	if got, ok := title.Next(b); !ok || got != "Chessboard - white to move" {
		t.Fatalf("first title = %q, %v", got, ok)
	}
	if _, ok := title.Next(b); ok {
		t.Error("unchanged side reported a new title")
	}

	d := &fakeDesktop{clip: afterE4}
	if err := NewCommander(b, d, logx.NewNop()).Run(CmdPasteFEN); err != nil {
		t.Fatal(err)
	}
	if got, ok := title.Next(b); !ok || got != "Chessboard - black to move" {
		t.Errorf("title after paste = %q, %v", got, ok)
	}
}
