package main

import (
	"fmt"
	"os"

	"chessboard/ui"
)

func main() {
	if err := ui.RunChessBoard(); err != nil {
		fmt.Fprintf(os.Stderr, "chessboard: %v\n", err)
		os.Exit(1)
	}
}
