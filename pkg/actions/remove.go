package actions

import (
	"github.com/xrelkd/axdot/pkg/errors"
)

// RemoveAll removes the entry at path. Regular files and symbolic links are
// removed individually; anything else is removed recursively. In dry-run
// mode nothing happens.
func RemoveAll(rt *Runtime, path string) error {
	if rt.DryRun {
		return nil
	}

	if isFileOrLink(rt, path) {
		rt.Logger.Debug().Str("path", path).Msg("Removing file")
		if err := rt.FS.Remove(path); err != nil {
			return errors.Wrapf(err, errors.ErrRemoveFile, "failed to remove file %q", path).
				WithDetail("path", path)
		}
		return nil
	}

	rt.Logger.Debug().Str("path", path).Msg("Removing directory")
	if err := rt.FS.RemoveAll(path); err != nil {
		return errors.Wrapf(err, errors.ErrRemoveDirectory, "failed to remove directory %q", path).
			WithDetail("path", path)
	}
	return nil
}

func isFileOrLink(rt *Runtime, path string) bool {
	if info, err := rt.FS.Stat(path); err == nil && info.Mode().IsRegular() {
		return true
	}
	_, err := rt.FS.Readlink(path)
	return err == nil
}

// removeConflicting asks for permission to remove an existing entry and
// removes it when granted. It reports whether the entry was cleared.
func removeConflicting(rt *Runtime, path string) (bool, error) {
	ok, err := rt.confirmRemoval(path)
	if err != nil {
		return false, err
	}
	if !ok {
		rt.Logger.Info().Str("path", path).Msg("Keeping existing entry")
		return false, nil
	}

	rt.Reporter.Removing(path)
	if err := RemoveAll(rt, path); err != nil {
		return false, err
	}
	return true, nil
}
