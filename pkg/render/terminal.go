// File: terminal.go
// Title: Terminal Queries
// Description: Terminal size and TTY detection.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17

package render

import (
	"io"
	"os"

	"golang.org/x/term"
)

// DefaultColumns is assumed when the width cannot be queried
const DefaultColumns = 80

var isTerminalFn = term.IsTerminal
var getSizeFn = term.GetSize

// IsTerminal reports whether w is a terminal
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isTerminalFn(int(f.Fd()))
}

// Columns returns the width of the terminal behind w, or DefaultColumns
func Columns(w io.Writer) int {
	cols, _ := Size(w)
	return cols
}

// Size returns the columns and rows of the terminal behind w. Writers that
// are not terminals report DefaultColumns and zero rows.
func Size(w io.Writer) (cols, rows int) {
	f, ok := w.(*os.File)
	if !ok || !isTerminalFn(int(f.Fd())) {
		return DefaultColumns, 0
	}
	cols, rows, err := getSizeFn(int(f.Fd()))
	if err != nil || cols <= 0 {
		return DefaultColumns, 0
	}
	return cols, rows
}
