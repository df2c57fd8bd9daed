package progress

import (
	"io"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
)

const spinnerDelay = 100 * time.Millisecond

// Indicator shows a spinner while a stage runs and a status line when it
// ends. The spinner is only drawn on a terminal.
type Indicator struct {
	w       io.Writer
	caps    TerminalCapabilities
	symbols Symbols
	spin    *spinner.Spinner
}

// NewIndicator creates an Indicator writing to w.
func NewIndicator(w io.Writer, caps TerminalCapabilities) *Indicator {
	return &Indicator{
		w:       w,
		caps:    caps,
		symbols: SelectSymbols(caps),
	}
}

// Start begins spinning with msg as the suffix. A running spinner is
// updated in place.
func (i *Indicator) Start(msg string) {
	if !i.caps.IsTTY {
		return
	}
	if i.spin == nil {
		i.spin = spinner.New(spinner.CharSets[i.symbols.SpinnerSet], spinnerDelay,
			spinner.WithWriter(i.w), spinner.WithHiddenCursor(true))
	}
	i.spin.Suffix = " " + msg
	if !i.spin.Active() {
		i.spin.Start()
	}
}

// Stop clears the spinner, if any.
func (i *Indicator) Stop() {
	if i.spin != nil && i.spin.Active() {
		i.spin.Stop()
	}
}

// Success stops the spinner and writes msg after a checkmark.
func (i *Indicator) Success(msg string) {
	i.Stop()
	i.status(color.FgGreen, i.symbols.Checkmark, msg)
}

// Failure stops the spinner and writes msg after a failure mark.
func (i *Indicator) Failure(msg string) {
	i.Stop()
	i.status(color.FgRed, i.symbols.Failure, msg)
}

func (i *Indicator) status(attr color.Attribute, mark, msg string) {
	c := color.New(attr)
	if !i.caps.SupportsColor {
		c.DisableColor()
	}
	_, _ = io.WriteString(i.w, c.Sprint(mark)+" "+msg+"\n")
}
