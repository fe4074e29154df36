// Package ui renders what axdot is doing to the user.
//
// The Reporter prints one line per decision taken while applying a
// configuration ("Creating", "Linking", "Skipping existing", ...). It is the
// user-facing counterpart of the zerolog debug log and is written to stdout.
package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/pterm/pterm"
)

// Reporter prints progress lines for applied items
type Reporter struct {
	out    io.Writer
	styled bool
}

// NewReporter creates a reporter writing to out. FormatAuto is resolved
// against out.
func NewReporter(out io.Writer, format Format) *Reporter {
	return &Reporter{
		out:    out,
		styled: Resolve(format, out) == FormatTerminal,
	}
}

// Styled reports whether lines carry ANSI styling
func (r *Reporter) Styled() bool {
	return r.styled
}

func (r *Reporter) line(verb string, style pterm.Color, rest string) {
	if r.styled {
		verb = style.Sprint(verb)
	}
	_, _ = fmt.Fprintf(r.out, "%s %s\n", verb, rest)
}

// Creating reports a directory about to be created
func (r *Reporter) Creating(path string) {
	r.line("Creating", pterm.FgGreen, fmt.Sprintf("%q", path))
}

// CreatingEmptyFile reports an empty file about to be created
func (r *Reporter) CreatingEmptyFile(path string) {
	r.line("Creating empty file", pterm.FgGreen, fmt.Sprintf("%q", path))
}

// SkippingExisting reports a path left alone because it is already in place
func (r *Reporter) SkippingExisting(path string) {
	r.line("Skipping existing", pterm.FgGray, fmt.Sprintf("%q", path))
}

// SkippingExistingLink reports a link already pointing at its source
func (r *Reporter) SkippingExistingLink(dest, src string) {
	r.line("Skipping existing", pterm.FgGray, fmt.Sprintf("%q -> %q", dest, src))
}

// Linking reports a symbolic link from dest to src
func (r *Reporter) Linking(dest, src string) {
	r.line("Linking", pterm.FgCyan, fmt.Sprintf("%q -> %q", dest, src))
}

// Removing reports an entry about to be removed
func (r *Reporter) Removing(path string) {
	r.line("Removing", pterm.FgRed, fmt.Sprintf("%q", path))
}

// Copying reports a copy from src to dest
func (r *Reporter) Copying(src, dest string) {
	r.line("Copying", pterm.FgCyan, fmt.Sprintf("%q -> %q", src, dest))
}

// Executing reports a command about to run
func (r *Reporter) Executing(program string, args []string) {
	r.line("Executing", pterm.FgMagenta, fmt.Sprintf("%q", strings.TrimSpace(program+" "+strings.Join(args, " "))))
}
