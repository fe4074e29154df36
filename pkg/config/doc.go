// Package config handles configuration management for axdot.
//
// Two kinds of configuration live here. Config is the declared environment:
// directories, empty files, links, copies and commands, loaded from a YAML
// or TOML file and handed read-only to the manager. Settings are the tool's
// own knobs (default config path, replace, env file, colour), layered with
// koanf from built-in defaults, an XDG settings file and AXDOT_* variables.
package config
