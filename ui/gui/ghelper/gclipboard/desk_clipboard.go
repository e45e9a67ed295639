package gclipboard

import (
	"strings"

	"github.com/atotto/clipboard"
)

func ReadAll() (string, error) {
	return clipboard.ReadAll()
}

func WriteAll(text string) error {
	return clipboard.WriteAll(strings.TrimSpace(text))
}

// Available is false on systems without a clipboard utility, such as a
// bare X11 session lacking xclip and xsel.
func Available() bool {
	return !clipboard.Unsupported
}
