// Package ui renders the CLI's plain-terminal output: colored glyphs,
// framed panels and the progress bar. The interactive TUI has its own
// lipgloss styling and does not use this package.
package ui

import (
	"fmt"
	"os"
)

var (
	reset = "\033[0m"
	bold  = "\033[1m"
	dim   = "\033[2m"

	fgGray   = "\033[90m"
	fgGreen  = "\033[32m"
	fgYellow = "\033[33m"
	fgBlue   = "\033[34m"
	fgRed    = "\033[31m"

	symCheck = "✔"
	symCross = "✖"
)

var disableColor bool

// SetPlain turns off colors and switches to ASCII glyphs, for pipes and
// dumb terminals.
func SetPlain(plain bool) {
	disableColor = plain
	if plain {
		current = monoTheme()
	} else {
		current = classicTheme()
	}
}

func isTTY() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}

// C wraps s in the given color code when output is a color-capable TTY.
func C(color, s string) string {
	if disableColor || color == "" {
		return s
	}
	if isTTY() {
		return color + s + reset
	}
	return s
}

// OK prints a success line to stdout.
func OK(msg string) { fmt.Println(C(fgGreen, symCheck+" "+msg)) }

// Fail prints a failure line to stderr.
func Fail(msg string) { fmt.Fprintln(os.Stderr, C(fgRed, symCross+" "+msg)) }
