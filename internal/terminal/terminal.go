// Copyright (c) 2025 Restaurant AI
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package terminal provides small helpers around the controlling terminal.
package terminal

import (
	"fmt"
	"io"
	"math"
	"os"

	"golang.org/x/term"
)

// DefaultWidth is assumed when stdout is not a terminal.
const DefaultWidth = 80

// Width returns the column count of stdout.
func Width() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return DefaultWidth
}

// Interactive reports whether both stdin and stdout are terminals.
func Interactive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// ClearPreviousLines erases a prompt and its echoed input of textLength cells,
// including the empty line left after Enter.
func ClearPreviousLines(textLength int) {
	clearLines(os.Stdout, LinesFor(textLength, Width())+1)
}

// LinesFor returns how many rows textLength cells wrap to at width.
func LinesFor(textLength, width int) int {
	if width <= 0 {
		width = DefaultWidth
	}
	n := int(math.Ceil(float64(textLength) / float64(width)))
	if n < 1 {
		return 1
	}
	return n
}

func clearLines(w io.Writer, n int) {
	for i := 0; i < n; i++ {
		fmt.Fprint(w, "\r\x1b[2K")
		if i < n-1 {
			fmt.Fprint(w, "\x1b[1A")
		}
	}
}
