// Package manager reconciles the local filesystem with a declared
// configuration.
//
// A Manager holds the five declared collections and applies them in a fixed
// order: directories, empty files, symbolic links, copies and finally
// commands. Later phases may rely on earlier ones, so a command can assume
// the directories it needs already exist. The first failure aborts the pass;
// nothing already applied is rolled back.
//
// Apply is idempotent for directories, empty files and links: a second pass
// over an unchanged configuration reports "Skipping existing" and mutates
// nothing. Commands run every time.
package manager
