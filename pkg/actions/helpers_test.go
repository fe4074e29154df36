package actions_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"github.com/xrelkd/axdot/pkg/actions"
	"github.com/xrelkd/axdot/pkg/environment"
	"github.com/xrelkd/axdot/pkg/errors"
	"github.com/xrelkd/axdot/pkg/filesystem"
	"github.com/xrelkd/axdot/pkg/ui"
)

// scriptedPrompter answers prompts from a fixed list and records them
type scriptedPrompter struct {
	answers []bool
	prompts []string
}

func (p *scriptedPrompter) AskUser(prompt string) (bool, error) {
	p.prompts = append(p.prompts, prompt)
	if len(p.answers) == 0 {
		return false, errors.New(errors.ErrStandardInput, "no more answers")
	}
	answer := p.answers[0]
	p.answers = p.answers[1:]
	return answer, nil
}

type fixture struct {
	home     string
	out      *bytes.Buffer
	prompter *scriptedPrompter
	rt       *actions.Runtime
}

func newFixture(t *testing.T, dryRun, replace bool, answers ...bool) *fixture {
	t.Helper()

	home := t.TempDir()
	ctx, err := environment.New("alice", home)
	require.NoError(t, err)

	out := &bytes.Buffer{}
	prompter := &scriptedPrompter{answers: answers}
	return &fixture{
		home:     home,
		out:      out,
		prompter: prompter,
		rt: &actions.Runtime{
			DryRun:   dryRun,
			Replace:  replace,
			Context:  ctx,
			FS:       filesystem.NewOS(),
			Prompter: prompter,
			Reporter: ui.NewReporter(out, ui.FormatText),
			Runner:   &actions.ExecRunner{Stdout: out, Stderr: out},
			Logger:   zerolog.Nop(),
		},
	}
}

func (f *fixture) path(parts ...string) string {
	return filepath.Join(append([]string{f.home}, parts...)...)
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}
