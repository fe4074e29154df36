package actions

import (
	stderrors "errors"
	"io"
	"os"
	"os/exec"

	"github.com/xrelkd/axdot/pkg/errors"
	"github.com/xrelkd/axdot/pkg/logging"
)

// CommandRunner runs a program to completion
type CommandRunner interface {
	Run(program string, args []string) error
}

// ExecRunner runs programs as child processes sharing the given streams
type ExecRunner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewExecRunner creates a runner that inherits the process standard streams
func NewExecRunner() *ExecRunner {
	return &ExecRunner{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Run starts program and waits for it. A non-zero exit status is logged and
// is not an error.
func (r *ExecRunner) Run(program string, args []string) error {
	logger := logging.GetLogger("actions.runner")
	logging.LogCommand(program, args)

	cmd := exec.Command(program, args...)
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	if err := cmd.Start(); err != nil {
		return errors.Wrapf(err, errors.ErrSpawnCommand, "failed to spawn %q", program).
			WithDetail("command", program)
	}

	if err := cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if stderrors.As(err, &exitErr) {
			logger.Warn().
				Str("command", program).
				Strs("args", args).
				Int("exit_code", exitErr.ExitCode()).
				Msg("Command exited with non-zero status")
			return nil
		}
		return errors.Wrapf(err, errors.ErrWaitCommand, "failed to wait for %q", program).
			WithDetail("command", program)
	}

	logger.Debug().Str("command", program).Msg("Command finished")
	return nil
}
