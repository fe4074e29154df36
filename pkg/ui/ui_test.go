package ui_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xrelkd/axdot/pkg/ui"
)

func TestReporter_PlainLines(t *testing.T) {
	var buf bytes.Buffer
	r := ui.NewReporter(&buf, ui.FormatText)
	assert.False(t, r.Styled())

	r.Creating("/home/alice/bin")
	r.SkippingExisting("/home/alice/bin")
	r.CreatingEmptyFile("proj/.keep")
	r.Linking("/home/alice/.vimrc", "/dots/vimrc")
	r.SkippingExistingLink("/home/alice/.vimrc", "/dots/vimrc")
	r.Removing("/home/alice/.ssh")
	r.Copying("/dots/ssh", "/home/alice/.ssh")
	r.Executing("echo", []string{"hello", "world"})
	r.Executing("true", nil)

	want := `Creating "/home/alice/bin"
Skipping existing "/home/alice/bin"
Creating empty file "proj/.keep"
Linking "/home/alice/.vimrc" -> "/dots/vimrc"
Skipping existing "/home/alice/.vimrc" -> "/dots/vimrc"
Removing "/home/alice/.ssh"
Copying "/dots/ssh" -> "/home/alice/.ssh"
Executing "echo hello world"
Executing "true"
`
	assert.Equal(t, want, buf.String())
}

func TestReporter_StyledKeepsText(t *testing.T) {
	var buf bytes.Buffer
	r := ui.NewReporter(&buf, ui.FormatTerminal)
	assert.True(t, r.Styled())

	r.Creating("/x")
	assert.Contains(t, buf.String(), "Creating")
	assert.Contains(t, buf.String(), `"/x"`)
}

func TestRenderError(t *testing.T) {
	err := errors.New("boom")
	assert.Equal(t, "Error: boom", ui.RenderError(err, false))
	assert.Contains(t, ui.RenderError(err, true), "Error: boom")
}
