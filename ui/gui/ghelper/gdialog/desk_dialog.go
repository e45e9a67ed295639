package gdialog

import (
	"errors"
	"os"

	"github.com/sqweek/dialog"
)

// OpenFile asks for a FEN file and returns its bytes. ok is false when the
// user closed the dialog without choosing.
func OpenFile(title string) ([]byte, bool, error) {
	path, err := dialog.File().
		Title(title).
		Filter("FEN position", "fen", "txt").
		Filter("All files", "*").
		Load()
	if errors.Is(err, dialog.ErrCancelled) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, false, err
	}
	return b, true, nil
}

func ShowError(title, message string) {
	dialog.Message("%s", message).Title(title).Error()
}
