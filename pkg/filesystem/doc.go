// Package filesystem provides the filesystem implementation used by axdot.
//
// All mutations performed while applying a configuration go through the FS
// interface so that tests and alternative backends can observe them. The OS
// implementation also provides the higher level helpers the actions need:
// canonicalisation, empty-file creation and file and tree copies.
package filesystem
