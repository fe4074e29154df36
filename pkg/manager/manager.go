package manager

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/xrelkd/axdot/pkg/actions"
	"github.com/xrelkd/axdot/pkg/config"
	"github.com/xrelkd/axdot/pkg/environment"
	"github.com/xrelkd/axdot/pkg/errors"
	"github.com/xrelkd/axdot/pkg/filesystem"
	"github.com/xrelkd/axdot/pkg/logging"
	"github.com/xrelkd/axdot/pkg/ui"
	"github.com/xrelkd/axdot/pkg/ui/confirmations"
)

// Manager applies a declared configuration
type Manager struct {
	commands    [][]string
	directories []string
	emptyFiles  []string
	links       map[string]string
	copies      map[string]string

	fs       filesystem.FS
	prompter confirmations.Prompter
	reporter *ui.Reporter
	runner   actions.CommandRunner
	logger   zerolog.Logger
}

// Option configures a Manager
type Option func(*Manager)

// WithFileSystem sets the filesystem actions operate on
func WithFileSystem(fs filesystem.FS) Option {
	return func(m *Manager) { m.fs = fs }
}

// WithPrompter sets the source of removal confirmations
func WithPrompter(p confirmations.Prompter) Option {
	return func(m *Manager) { m.prompter = p }
}

// WithReporter sets where progress lines go
func WithReporter(r *ui.Reporter) Option {
	return func(m *Manager) { m.reporter = r }
}

// WithRunner sets how commands are run
func WithRunner(r actions.CommandRunner) Option {
	return func(m *Manager) { m.runner = r }
}

// WithStdio runs commands with the given streams instead of the process ones
func WithStdio(stdin io.Reader, stdout, stderr io.Writer) Option {
	return func(m *Manager) {
		m.runner = &actions.ExecRunner{Stdin: stdin, Stdout: stdout, Stderr: stderr}
	}
}

// WithLogger sets the logger
func WithLogger(logger zerolog.Logger) Option {
	return func(m *Manager) { m.logger = logger }
}

// New creates a Manager from cfg. The collections are copied, so later
// changes to cfg do not affect the Manager. A nil cfg is treated as empty.
func New(cfg *config.Config, opts ...Option) *Manager {
	if cfg == nil {
		cfg = config.Default()
	}

	m := &Manager{
		commands:    copyCommands(cfg.Commands),
		directories: append([]string(nil), cfg.Directories...),
		emptyFiles:  append([]string(nil), cfg.EmptyFiles...),
		links:       copyMap(cfg.Links),
		copies:      copyMap(cfg.Copies),
		fs:          filesystem.NewOS(),
		prompter:    confirmations.NewStdConsole(),
		reporter:    ui.NewReporter(os.Stdout, ui.FormatAuto),
		runner:      actions.NewExecRunner(),
		logger:      logging.GetLogger("manager"),
	}

	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Plan returns the actions Apply executes, in execution order
func (m *Manager) Plan() []actions.Action {
	plan := make([]actions.Action, 0,
		len(m.directories)+len(m.emptyFiles)+len(m.links)+len(m.copies)+len(m.commands))

	for _, dir := range m.directories {
		plan = append(plan, &actions.CreateDirectoryAction{Path: dir})
	}
	for _, file := range m.emptyFiles {
		plan = append(plan, &actions.CreateEmptyFileAction{Path: file})
	}
	for _, src := range config.SortedKeys(m.links) {
		plan = append(plan, &actions.LinkAction{Source: src, Destination: m.links[src]})
	}
	for _, src := range config.SortedKeys(m.copies) {
		plan = append(plan, &actions.CopyAction{Source: src, Destination: m.copies[src]})
	}
	for _, tokens := range m.commands {
		plan = append(plan, &actions.RunCommandAction{Tokens: tokens})
	}
	return plan
}

// Apply runs every phase against ctx. In dry-run mode the filesystem is
// left untouched and no command runs, although removal prompts are still
// asked. With replace set, existing entries are removed without asking.
func (m *Manager) Apply(dryRun, replace bool, ctx *environment.Context) error {
	if ctx == nil {
		return errors.New(errors.ErrInternal, "apply requires a resolved user context")
	}

	done := logging.LogOperationStart(m.logger, "apply")
	defer done()

	rt := &actions.Runtime{
		DryRun:   dryRun,
		Replace:  replace,
		Context:  ctx,
		FS:       m.fs,
		Prompter: m.prompter,
		Reporter: m.reporter,
		Runner:   m.runner,
		Logger:   m.logger,
	}

	m.logger.Info().
		Bool("dryRun", dryRun).
		Bool("replace", replace).
		Str("user", ctx.UserName()).
		Str("home", ctx.HomeDir()).
		Msg("Applying configuration")

	for _, action := range m.Plan() {
		m.logger.Debug().
			Str("kind", action.Kind().String()).
			Msg(action.Description())

		if err := action.Execute(rt); err != nil {
			m.logger.Error().
				Err(err).
				Str("kind", action.Kind().String()).
				Msg("Action failed")
			return err
		}
	}
	return nil
}

func copyCommands(commands [][]string) [][]string {
	out := make([][]string, 0, len(commands))
	for _, tokens := range commands {
		out = append(out, append([]string(nil), tokens...))
	}
	return out
}

func copyMap(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
