package actions

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/xrelkd/axdot/pkg/environment"
	"github.com/xrelkd/axdot/pkg/filesystem"
	"github.com/xrelkd/axdot/pkg/logging"
	"github.com/xrelkd/axdot/pkg/ui"
	"github.com/xrelkd/axdot/pkg/ui/confirmations"
)

// Runtime carries everything an action needs for one apply pass
type Runtime struct {
	DryRun  bool
	Replace bool

	Context  *environment.Context
	FS       filesystem.FS
	Prompter confirmations.Prompter
	Reporter *ui.Reporter
	Runner   CommandRunner
	Logger   zerolog.Logger
}

// NewRuntime creates a Runtime bound to the OS filesystem and the process
// standard streams. Callers may replace any collaborator afterwards.
func NewRuntime(dryRun, replace bool, ctx *environment.Context) *Runtime {
	return &Runtime{
		DryRun:   dryRun,
		Replace:  replace,
		Context:  ctx,
		FS:       filesystem.NewOS(),
		Prompter: confirmations.NewStdConsole(),
		Reporter: ui.NewReporter(os.Stdout, ui.FormatAuto),
		Runner:   NewExecRunner(),
		Logger:   logging.GetLogger("actions"),
	}
}

// confirmRemoval decides whether an existing entry at path may be removed.
// With Replace set the answer is yes without asking.
func (rt *Runtime) confirmRemoval(path string) (bool, error) {
	if rt.Replace {
		return true, nil
	}
	return rt.Prompter.AskUser(fmt.Sprintf("%q exists, delete it? [y/n]", path))
}
