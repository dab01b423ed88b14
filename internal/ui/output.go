// Package ui prints progress for the release hooks and asks for
// confirmation when a human is at the terminal.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

// Prefix is printed before every message so plugin output can be told
// apart from the rest of a release log.
const Prefix = "[sonatype]"

// UI provides user interface methods
type UI struct {
	output         io.Writer
	nonInteractive bool
	prompt         func(message string, defaultYes bool) (bool, error)

	colorPrefix  *color.Color
	colorInfo    *color.Color
	colorSuccess *color.Color
	colorWarning *color.Color
	colorError   *color.Color
	colorHeader  *color.Color
}

// New creates a UI writing to stderr, leaving stdout for command results.
func New() *UI {
	return &UI{
		output:       os.Stderr,
		prompt:       surveyConfirm,
		colorPrefix:  color.New(color.Faint),
		colorInfo:    color.New(color.FgBlue),
		colorSuccess: color.New(color.FgGreen),
		colorWarning: color.New(color.FgYellow),
		colorError:   color.New(color.FgRed),
		colorHeader:  color.New(color.FgCyan, color.Bold),
	}
}

// NewWithWriter creates a UI with custom output writer (useful for testing)
func NewWithWriter(w io.Writer) *UI {
	ui := New()
	ui.output = w
	return ui
}

// SetNonInteractive disables prompts; they return their default answer.
func (u *UI) SetNonInteractive(enabled bool) {
	u.nonInteractive = enabled
}

// SetPrompt replaces the yes/no prompt, which asks on the terminal by default.
func (u *UI) SetPrompt(prompt func(message string, defaultYes bool) (bool, error)) {
	u.prompt = prompt
}

// IsNonInteractive returns true if non-interactive mode is enabled
func (u *UI) IsNonInteractive() bool {
	return u.nonInteractive
}

// SetColor forces colored output on or off for every UI.
func SetColor(enabled bool) {
	color.NoColor = !enabled
}

func (u *UI) line(c *color.Color, marker, msg string) {
	u.colorPrefix.Fprint(u.output, Prefix+" ")
	c.Fprintf(u.output, "%s %s\n", marker, msg)
}

// Info prints an info message
func (u *UI) Info(msg string) {
	u.line(u.colorInfo, "›", msg)
}

// Infof prints a formatted info message
func (u *UI) Infof(format string, args ...interface{}) {
	u.Info(fmt.Sprintf(format, args...))
}

// Success prints a success message
func (u *UI) Success(msg string) {
	u.line(u.colorSuccess, "✔", msg)
}

// Successf prints a formatted success message
func (u *UI) Successf(format string, args ...interface{}) {
	u.Success(fmt.Sprintf(format, args...))
}

// Warning prints a warning message
func (u *UI) Warning(msg string) {
	u.line(u.colorWarning, "⚠", msg)
}

// Warningf prints a formatted warning message
func (u *UI) Warningf(format string, args ...interface{}) {
	u.Warning(fmt.Sprintf(format, args...))
}

// Error prints an error message. Multi-line errors get one line each.
func (u *UI) Error(msg string) {
	for _, l := range strings.Split(strings.TrimRight(msg, "\n"), "\n") {
		u.line(u.colorError, "✖", l)
	}
}

// Errorf prints a formatted error message
func (u *UI) Errorf(format string, args ...interface{}) {
	u.Error(fmt.Sprintf(format, args...))
}

// Header prints a boxed section title
func (u *UI) Header(title string) {
	border := strings.Repeat("=", 70)

	fmt.Fprintln(u.output)
	u.colorHeader.Fprintln(u.output, border)
	u.colorHeader.Fprintf(u.output, "  %s\n", title)
	u.colorHeader.Fprintln(u.output, border)
}

// Separator prints a separator line
func (u *UI) Separator() {
	u.colorHeader.Fprintln(u.output, strings.Repeat("-", 70))
}

// Check prints one line of a checklist
func (u *UI) Check(ok bool, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if ok {
		u.colorSuccess.Fprintf(u.output, "  ✔ %s\n", msg)
		return
	}
	u.colorError.Fprintf(u.output, "  ✖ %s\n", msg)
}
