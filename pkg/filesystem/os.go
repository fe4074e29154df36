package filesystem

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// FS is the filesystem interface required for axdot operations
type FS interface {
	// Stat follows symlinks
	Stat(name string) (fs.FileInfo, error)
	// Lstat does not follow symlinks
	Lstat(name string) (fs.FileInfo, error)

	MkdirAll(path string, perm fs.FileMode) error

	Symlink(oldname, newname string) error
	Readlink(name string) (string, error)

	Remove(name string) error
	RemoveAll(path string) error

	// Canonicalize returns the absolute, symlink-free form of path. It
	// fails when path does not exist.
	Canonicalize(path string) (string, error)

	// Touch opens name for writing, creating it when missing. Existing
	// contents are left untouched.
	Touch(name string, perm fs.FileMode) error

	// CopyFile copies a regular file, overwriting dst
	CopyFile(src, dst string) error

	// CopyDir copies the tree rooted at src into dst. Files whose content
	// already matches are skipped; differing files are overwritten.
	CopyDir(src, dst string) error
}

// osFS implements FS using the OS filesystem
type osFS struct{}

// NewOS creates a new OS filesystem implementation
func NewOS() FS {
	return &osFS{}
}

func (o *osFS) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}

func (o *osFS) Lstat(name string) (fs.FileInfo, error) {
	return os.Lstat(name)
}

func (o *osFS) MkdirAll(path string, perm fs.FileMode) error {
	return os.MkdirAll(path, perm)
}

func (o *osFS) Symlink(oldname, newname string) error {
	return os.Symlink(oldname, newname)
}

func (o *osFS) Readlink(name string) (string, error) {
	return os.Readlink(name)
}

func (o *osFS) Remove(name string) error {
	return os.Remove(name)
}

func (o *osFS) RemoveAll(path string) error {
	return os.RemoveAll(path)
}

func (o *osFS) Canonicalize(path string) (string, error) {
	if !filepath.IsAbs(path) {
		wd, err := os.Getwd()
		if err != nil {
			return "", err
		}
		// Joined without cleaning so ".." is resolved after the links before it
		path = wd + string(filepath.Separator) + path
	}
	return filepath.EvalSymlinks(path)
}

func (o *osFS) Touch(name string, perm fs.FileMode) error {
	f, err := os.OpenFile(name, os.O_WRONLY|os.O_CREATE, perm)
	if err != nil {
		return err
	}
	return f.Close()
}

func (o *osFS) CopyFile(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("failed to stat source: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("source %q is a directory", src)
	}
	return copyFile(src, dst, info.Mode().Perm())
}

func (o *osFS) CopyDir(src, dst string) error {
	return copyDir(src, dst)
}

// copyFile copies a single file from src to dst.
func copyFile(src, dst string, mode os.FileMode) error {
	srcFile, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open source: %w", err)
	}
	defer func() {
		_ = srcFile.Close()
	}()

	dstFile, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, mode)
	if err != nil {
		return fmt.Errorf("failed to create destination: %w", err)
	}
	defer func() {
		_ = dstFile.Close()
	}()

	if _, err := io.Copy(dstFile, srcFile); err != nil {
		return fmt.Errorf("failed to copy file contents: %w", err)
	}

	return dstFile.Sync()
}

// copyDir recursively copies a directory from src to dst.
func copyDir(src, dst string) error {
	srcInfo, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("failed to stat source directory: %w", err)
	}

	if err := os.MkdirAll(dst, srcInfo.Mode().Perm()); err != nil {
		return fmt.Errorf("failed to create destination directory: %w", err)
	}

	entries, err := os.ReadDir(src)
	if err != nil {
		return fmt.Errorf("failed to read source directory: %w", err)
	}

	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		dstPath := dst + string(filepath.Separator) + entry.Name()

		// Follow symlinks so the copy holds content, not links
		info, err := os.Stat(srcPath)
		if err != nil {
			return fmt.Errorf("failed to stat %s: %w", srcPath, err)
		}

		if info.IsDir() {
			if err := copyDir(srcPath, dstPath); err != nil {
				return err
			}
			continue
		}

		same, err := sameContent(srcPath, dstPath)
		if err != nil {
			return err
		}
		if same {
			continue
		}

		if err := copyFile(srcPath, dstPath, info.Mode().Perm()); err != nil {
			return err
		}
	}

	return nil
}

// sameContent reports whether dst is a regular file with the same checksum as src.
func sameContent(src, dst string) (bool, error) {
	dstInfo, err := os.Stat(dst)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to stat destination: %w", err)
	}
	if !dstInfo.Mode().IsRegular() {
		return false, nil
	}

	srcSum, err := CalculateFileChecksum(src)
	if err != nil {
		return false, err
	}
	dstSum, err := CalculateFileChecksum(dst)
	if err != nil {
		return false, err
	}
	return srcSum == dstSum, nil
}
