package actions

import (
	"path/filepath"
	"strings"

	"github.com/xrelkd/axdot/pkg/errors"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Execute ensures the directory exists
func (a *CreateDirectoryAction) Execute(rt *Runtime) error {
	return ensureDirectory(rt, rt.Context.ApplyPath(a.Path))
}

func ensureDirectory(rt *Runtime, path string) error {
	rt.Reporter.Creating(path)
	if rt.DryRun {
		return nil
	}

	if info, err := rt.FS.Stat(path); err == nil && info.IsDir() {
		rt.Reporter.SkippingExisting(path)
		return nil
	}

	if err := rt.FS.MkdirAll(path, dirPerm); err != nil {
		return errors.Wrapf(err, errors.ErrCreateDirectory, "failed to create directory %q", path).
			WithDetail("path", path)
	}
	return nil
}

// Execute ensures the file exists. An existing entry is offered for removal
// first; declining keeps it and creation still proceeds, leaving its
// contents untouched.
func (a *CreateEmptyFileAction) Execute(rt *Runtime) error {
	path := rt.Context.ApplyPath(a.Path)

	if _, err := rt.FS.Stat(path); err == nil {
		if _, err := removeConflicting(rt, path); err != nil {
			return err
		}
	}

	if err := ensureDirectory(rt, parentDir(path)); err != nil {
		return err
	}

	rt.Reporter.CreatingEmptyFile(path)
	if rt.DryRun {
		return nil
	}

	if err := rt.FS.Touch(path, filePerm); err != nil {
		return errors.Wrapf(err, errors.ErrCreateFile, "failed to create file %q", path).
			WithDetail("path", path)
	}
	return nil
}

// Execute creates the link. A destination already pointing at the
// canonical source is left alone.
func (a *LinkAction) Execute(rt *Runtime) error {
	source, err := canonicalize(rt, a.Source)
	if err != nil {
		return err
	}
	dest := rt.Context.ApplyPath(a.Destination)

	rt.Reporter.Linking(dest, source)
	if rt.DryRun {
		return nil
	}

	conflict := false
	if target, err := rt.FS.Readlink(dest); err == nil {
		if target == source {
			rt.Reporter.SkippingExistingLink(dest, source)
			return nil
		}
		conflict = true
	} else if _, err := rt.FS.Lstat(dest); err == nil {
		conflict = true
	}

	if conflict {
		if _, err := removeConflicting(rt, dest); err != nil {
			return err
		}
	}

	if err := rt.FS.Symlink(source, dest); err != nil {
		return errors.Wrapf(err, errors.ErrCreateSymbolLink, "failed to link %q to %q", dest, source).
			WithDetail("source", source).
			WithDetail("destination", dest)
	}
	return nil
}

// Execute copies the source. Declining to remove an existing destination
// skips the copy entirely.
func (a *CopyAction) Execute(rt *Runtime) error {
	source, err := canonicalize(rt, a.Source)
	if err != nil {
		return err
	}
	dest := rt.Context.ApplyPath(a.Destination)

	if _, err := rt.FS.Stat(dest); err == nil {
		cleared, err := removeConflicting(rt, dest)
		if err != nil {
			return err
		}
		if !cleared {
			return nil
		}
	}

	rt.Reporter.Copying(source, dest)
	if rt.DryRun {
		return nil
	}

	info, err := rt.FS.Stat(source)
	if err != nil {
		return errors.Wrapf(err, errors.ErrCopyFile, "failed to read %q", source).
			WithDetail("source", source)
	}

	if !info.IsDir() {
		if err := rt.FS.CopyFile(source, dest); err != nil {
			return errors.Wrapf(err, errors.ErrCopyFile, "failed to copy %q to %q", source, dest).
				WithDetail("source", source).
				WithDetail("destination", dest)
		}
		return nil
	}

	parent := parentDir(dest)
	if err := rt.FS.MkdirAll(parent, dirPerm); err != nil {
		return errors.Wrapf(err, errors.ErrCreateDirectory, "failed to create directory %q", parent).
			WithDetail("path", parent)
	}
	if err := rt.FS.CopyDir(source, dest); err != nil {
		return errors.Wrapf(err, errors.ErrCopyDirectory, "failed to copy %q to %q", source, dest).
			WithDetail("source", source).
			WithDetail("destination", dest)
	}
	return nil
}

// Execute runs the command. An empty token list is an error.
func (a *RunCommandAction) Execute(rt *Runtime) error {
	if len(a.Tokens) == 0 {
		return errors.New(errors.ErrNoCommandProvided, "no command provided")
	}

	program, args := a.Tokens[0], a.Tokens[1:]
	rt.Reporter.Executing(program, args)
	if rt.DryRun {
		return nil
	}

	return rt.Runner.Run(program, args)
}

// parentDir strips the last component of path without cleaning it, so a
// ".." earlier in the path keeps its meaning relative to symbolic links.
func parentDir(path string) string {
	sep := string(filepath.Separator)
	trimmed := strings.TrimRight(path, sep)
	i := strings.LastIndex(trimmed, sep)
	switch {
	case trimmed == "":
		return sep
	case i < 0:
		return "."
	case i == 0:
		return sep
	}
	return trimmed[:i]
}

func canonicalize(rt *Runtime, path string) (string, error) {
	resolved := rt.Context.ApplyPath(path)
	canonical, err := rt.FS.Canonicalize(resolved)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrCanonicalizePath, "failed to resolve %q", resolved).
			WithDetail("path", resolved)
	}
	return canonical, nil
}
