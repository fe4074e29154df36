// Package environment resolves the invoking user's identity and home
// directory and substitutes them into declared strings and paths.
//
// A Context is built once at startup, either from the process environment
// (FromEnv) or explicitly (New), and is read-only afterwards. Substitution
// understands two tokens, $USER and $HOME, plus a leading ~ path component.
package environment
