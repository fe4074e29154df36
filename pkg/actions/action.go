package actions

import (
	"fmt"
	"strings"
)

// Kind identifies one of the five action types
type Kind int

const (
	KindDirectory Kind = iota
	KindEmptyFile
	KindSymlink
	KindCopy
	KindCommand
)

func (k Kind) String() string {
	switch k {
	case KindDirectory:
		return "directory"
	case KindEmptyFile:
		return "empty-file"
	case KindSymlink:
		return "symlink"
	case KindCopy:
		return "copy"
	case KindCommand:
		return "command"
	default:
		return "unknown"
	}
}

// Action applies one declared item
type Action interface {
	// Execute reconciles the item against the filesystem
	Execute(rt *Runtime) error

	// Description returns a human-readable description of the action
	Description() string

	Kind() Kind

	isAction()
}

// CreateDirectoryAction ensures a directory exists
type CreateDirectoryAction struct {
	Path string
}

func (a *CreateDirectoryAction) Description() string {
	return fmt.Sprintf("Create directory %s", a.Path)
}

func (a *CreateDirectoryAction) Kind() Kind { return KindDirectory }
func (a *CreateDirectoryAction) isAction()  {}

// CreateEmptyFileAction ensures an empty file exists
type CreateEmptyFileAction struct {
	Path string
}

func (a *CreateEmptyFileAction) Description() string {
	return fmt.Sprintf("Create empty file %s", a.Path)
}

func (a *CreateEmptyFileAction) Kind() Kind { return KindEmptyFile }
func (a *CreateEmptyFileAction) isAction()  {}

// LinkAction creates a symbolic link at Destination pointing to Source
type LinkAction struct {
	Source      string
	Destination string
}

func (a *LinkAction) Description() string {
	return fmt.Sprintf("Link %s to %s", a.Destination, a.Source)
}

func (a *LinkAction) Kind() Kind { return KindSymlink }
func (a *LinkAction) isAction()  {}

// CopyAction copies Source, a file or a directory, to Destination
type CopyAction struct {
	Source      string
	Destination string
}

func (a *CopyAction) Description() string {
	return fmt.Sprintf("Copy %s to %s", a.Source, a.Destination)
}

func (a *CopyAction) Kind() Kind { return KindCopy }
func (a *CopyAction) isAction()  {}

// RunCommandAction runs a program. Tokens holds the program name followed
// by its arguments.
type RunCommandAction struct {
	Tokens []string
}

func (a *RunCommandAction) Description() string {
	return fmt.Sprintf("Run %s", strings.Join(a.Tokens, " "))
}

func (a *RunCommandAction) Kind() Kind { return KindCommand }
func (a *RunCommandAction) isAction()  {}
