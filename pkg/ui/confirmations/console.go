// Package confirmations provides interactive yes/no confirmation.
//
// Prompts block until the user answers. There is no timeout: apply runs
// sequentially, so nothing else can make progress while a prompt waits.
package confirmations

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/xrelkd/axdot/pkg/errors"
)

// MsgInvalidChoice is printed to the error stream after an unrecognised answer
const MsgInvalidChoice = "Enter a correct choice."

// Prompter asks the user a yes/no question
type Prompter interface {
	AskUser(prompt string) (bool, error)
}

// Console implements Prompter over line-oriented streams
type Console struct {
	in     *bufio.Scanner
	out    io.Writer
	errOut io.Writer
}

// NewConsole creates a console prompter reading from in. The prompt is
// written to out and complaints about invalid answers to errOut.
func NewConsole(in io.Reader, out, errOut io.Writer) *Console {
	return &Console{
		in:     bufio.NewScanner(in),
		out:    out,
		errOut: errOut,
	}
}

// NewStdConsole creates a console prompter bound to the process streams
func NewStdConsole() *Console {
	return NewConsole(os.Stdin, os.Stdout, os.Stderr)
}

// AskUser prints prompt and reads answers until one is recognised.
// "yes"/"y" and "no"/"n" are accepted case-insensitively. Reaching the end
// of input without an answer is an ErrStandardInput error rather than an
// implicit "no", so non-interactive runs fail loudly instead of silently
// keeping stale entries.
func (c *Console) AskUser(prompt string) (bool, error) {
	_, _ = fmt.Fprintln(c.out, prompt)

	for c.in.Scan() {
		switch strings.ToLower(strings.TrimSpace(c.in.Text())) {
		case "yes", "y":
			return true, nil
		case "no", "n":
			return false, nil
		default:
			_, _ = fmt.Fprintln(c.errOut, MsgInvalidChoice)
			_, _ = fmt.Fprintln(c.out, prompt)
		}
	}

	if err := c.in.Err(); err != nil {
		return false, errors.Wrap(err, errors.ErrStandardInput, "failed to read standard input")
	}
	return false, errors.New(errors.ErrStandardInput, "failed to read standard input: no answer before end of input")
}
