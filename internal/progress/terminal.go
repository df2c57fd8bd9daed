// Package progress reports pipeline progress on an interactive terminal.
package progress

import (
	"os"

	"golang.org/x/term"
)

// TerminalCapabilities describes what the attached terminal can display.
type TerminalCapabilities struct {
	IsTTY           bool
	SupportsColor   bool
	SupportsUnicode bool
	Width           int
}

// Symbols is the set of markers used for status output.
type Symbols struct {
	Checkmark  string
	Failure    string
	SpinnerSet int
}

// DetectTerminalCapabilities detects terminal features of f.
// Checks: isatty, NO_COLOR env, PRLOG_ASCII env, terminal width.
func DetectTerminalCapabilities(f *os.File) TerminalCapabilities {
	isTTY := term.IsTerminal(int(f.Fd()))

	noColor := os.Getenv("NO_COLOR") != ""
	forceASCII := os.Getenv("PRLOG_ASCII") == "1"

	width := 0
	if isTTY {
		if w, _, err := term.GetSize(int(f.Fd())); err == nil {
			width = w
		}
	}

	return TerminalCapabilities{
		IsTTY:           isTTY,
		SupportsColor:   isTTY && !noColor,
		SupportsUnicode: isTTY && !forceASCII,
		Width:           width,
	}
}

// SelectSymbols returns the symbol set for caps.
// Unicode: ✓/✗ with braille spinner (set 14). ASCII: [OK]/[FAIL] with |/-\ spinner (set 9).
func SelectSymbols(caps TerminalCapabilities) Symbols {
	if caps.SupportsUnicode {
		return Symbols{
			Checkmark:  "✓",
			Failure:    "✗",
			SpinnerSet: 14, // ⠋ ⠙ ⠹ ⠸ ⠼ ⠴ ⠦ ⠧ ⠇ ⠏
		}
	}

	return Symbols{
		Checkmark:  "[OK]",
		Failure:    "[FAIL]",
		SpinnerSet: 9, // | / - \
	}
}
