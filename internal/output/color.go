package output

import (
	"os"

	"golang.org/x/term"
)

// ANSI color codes
const (
	colorReset = "\033[0m"
	colorRed   = "\033[31m"
	colorGreen = "\033[32m"
)

// ColorMode determines when to use colored output.
type ColorMode int

const (
	ColorAuto   ColorMode = iota // Auto-detect based on TTY
	ColorAlways                  // Always use colors
	ColorNever                   // Never use colors
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// shouldColorize determines if output should be colorized based on mode and TTY detection.
func shouldColorize(mode ColorMode, w interface{}) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	case ColorAuto:
		if f, ok := w.(*os.File); ok {
			return isTerminal(f)
		}
		return false
	}
	return false
}

// Verdict formats a selftest pass/fail marker, colorized when the
// writer is a terminal (or mode forces it).
func (wr *Writer) Verdict(pass bool, mode ColorMode) string {
	text := "FAIL"
	if pass {
		text = "PASS"
	}
	if !shouldColorize(mode, wr.w) {
		return text
	}
	if pass {
		return colorGreen + text + colorReset
	}
	return colorRed + text + colorReset
}
