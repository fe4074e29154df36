// Package actions implements the primitive, idempotence-aware operations
// that reconcile one declared item against the filesystem.
//
// The set of actions is closed: directories, empty files, symbolic links,
// copies and commands. Each one resolves its paths through the runtime's
// Context, decides what to do from the present filesystem state and only
// mutates when the runtime is not in dry-run mode. Where the dry-run guard
// sits differs per action and is part of each action's contract.
package actions
