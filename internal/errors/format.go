package errors

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

var (
	errorLabel  = color.New(color.FgRed, color.Bold).SprintFunc()
	errorMsg    = color.New(color.FgRed).SprintFunc()
	fixLabel    = color.New(color.FgGreen, color.Bold).SprintFunc()
	usageLabel  = color.New(color.FgCyan, color.Bold).SprintFunc()
	usageText   = color.New(color.FgCyan).SprintFunc()
	bullet      = color.New(color.FgGreen).SprintFunc()
	categoryFmt = color.New(color.FgYellow).SprintFunc()
)

// style holds the decorators for one rendering; plain rendering uses the
// identity for every slot.
type style struct {
	label, msg, fix, usageLabel, usage, bullet, category func(a ...any) string
}

var (
	colored = style{errorLabel, errorMsg, fixLabel, usageLabel, usageText, bullet, categoryFmt}
	plain   = style{fmt.Sprint, fmt.Sprint, fmt.Sprint, fmt.Sprint, fmt.Sprint, fmt.Sprint, fmt.Sprint}
)

// FormatError formats a CLIError for display in the terminal.
// Colors follow fatih/color's terminal detection.
func FormatError(err *CLIError) string {
	if err == nil {
		return ""
	}
	return formatError(err, colored)
}

// FormatErrorPlain formats a CLIError without colors.
func FormatErrorPlain(err *CLIError) string {
	if err == nil {
		return ""
	}
	return formatError(err, plain)
}

func formatError(err *CLIError, s style) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%s [%s]: %s\n", s.label("Error"), s.category(err.Category.String()), s.msg(err.Message))

	if err.Usage != "" {
		fmt.Fprintf(&sb, "\n%s%s\n", s.usageLabel("Usage: "), s.usage(err.Usage))
	}

	if len(err.Remediation) > 0 {
		fmt.Fprintf(&sb, "\n%s\n", s.fix("To fix this:"))
		for _, step := range err.Remediation {
			fmt.Fprintf(&sb, "  %s %s\n", s.bullet("•"), step)
		}
	}

	return sb.String()
}

// FprintError prints a formatted CLIError to the given writer. Colors are
// used only when w is a terminal.
func FprintError(w io.Writer, err *CLIError) {
	if err == nil {
		return
	}
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(w, FormatError(err))
		return
	}
	fmt.Fprint(w, FormatErrorPlain(err))
}
