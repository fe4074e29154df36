package environment

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/xrelkd/axdot/pkg/errors"
)

// Environment variable names read by FromEnv
const (
	EnvUser = "USER"
	EnvHome = "HOME"
)

// Placeholder tokens recognised by Apply
const (
	TokenUser = "$USER"
	TokenHome = "$HOME"
)

// Context holds the resolved user name and home directory.
type Context struct {
	userName string
	homeDir  string
}

// New creates a Context from already resolved values.
func New(userName, homeDir string) (*Context, error) {
	if userName == "" {
		return nil, errors.New(errors.ErrEnvUserNotFound, "user name must not be empty")
	}
	if homeDir == "" {
		return nil, errors.New(errors.ErrEnvHomeNotFound, "home directory must not be empty")
	}
	return &Context{userName: userName, homeDir: homeDir}, nil
}

// FromEnv creates a Context from the USER and HOME environment variables.
// An unset or empty variable is treated as missing.
func FromEnv() (*Context, error) {
	userName, ok := os.LookupEnv(EnvUser)
	if !ok || userName == "" {
		return nil, errors.New(errors.ErrEnvUserNotFound,
			"failed to get user name from environment variable").
			WithDetail("variable", EnvUser)
	}

	homeDir, ok := os.LookupEnv(EnvHome)
	if !ok || homeDir == "" {
		return nil, errors.New(errors.ErrEnvHomeNotFound,
			"failed to get home from environment variable").
			WithDetail("variable", EnvHome)
	}

	return &Context{userName: userName, homeDir: homeDir}, nil
}

// UserName returns the resolved user name
func (c *Context) UserName() string {
	return c.userName
}

// HomeDir returns the resolved home directory
func (c *Context) HomeDir() string {
	return c.homeDir
}

// Apply replaces every $USER, then every $HOME in s. A $HOME produced by
// the first replacement is expanded too; the home directory value itself is
// never expanded again.
func (c *Context) Apply(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, TokenUser, c.userName), TokenHome, c.homeDir)
}

// ApplyPath rewrites path component by component. A first component that is
// exactly "~" becomes the home directory; every component is then passed
// through Apply. Absolute paths keep their root.
//
// The result is not cleaned: ".." components stay where they were, so a
// symbolic link earlier in the path is resolved by the OS. Only empty
// components and "." components after the first are dropped.
func (c *Context) ApplyPath(path string) string {
	if path == "" {
		return path
	}

	sep := string(filepath.Separator)
	parts := strings.Split(path, sep)
	out := make([]string, 0, len(parts))

	for i, part := range parts {
		if part == "" || (part == "." && i > 0) {
			continue
		}
		if i == 0 && part == "~" {
			part = strings.TrimRight(c.homeDir, sep)
			if part == "" {
				part = sep
			}
		}
		out = append(out, c.Apply(part))
	}

	joined := strings.Join(out, sep)
	if filepath.IsAbs(path) {
		return sep + joined
	}
	if strings.HasPrefix(joined, sep+sep) {
		joined = joined[1:]
	}
	return joined
}
