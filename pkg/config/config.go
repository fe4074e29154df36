package config

import (
	"bytes"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/xrelkd/axdot/pkg/errors"
	"gopkg.in/yaml.v3"
)

// DefaultFileName is the configuration file used when none is given
const DefaultFileName = "axdot.yaml"

// Config is the declared environment. Links and Copies map a source path to
// a destination path.
type Config struct {
	Commands    [][]string        `yaml:"commands" toml:"commands"`
	Directories []string          `yaml:"directories" toml:"directories"`
	EmptyFiles  []string          `yaml:"emptyFiles" toml:"emptyFiles"`
	Links       map[string]string `yaml:"links" toml:"links"`
	Copies      map[string]string `yaml:"copies" toml:"copies"`
}

// rawConfig mirrors Config and also accepts the legacy key spellings
// empty_files and copys.
type rawConfig struct {
	Commands        [][]string        `yaml:"commands" toml:"commands"`
	Directories     []string          `yaml:"directories" toml:"directories"`
	EmptyFiles      []string          `yaml:"emptyFiles" toml:"emptyFiles"`
	LegacyEmptyFile []string          `yaml:"empty_files" toml:"empty_files"`
	Links           map[string]string `yaml:"links" toml:"links"`
	Copies          map[string]string `yaml:"copies" toml:"copies"`
	LegacyCopies    map[string]string `yaml:"copys" toml:"copys"`
}

// Default returns an empty configuration with every collection initialised
func Default() *Config {
	return &Config{
		Commands:    [][]string{},
		Directories: []string{},
		EmptyFiles:  []string{},
		Links:       map[string]string{},
		Copies:      map[string]string{},
	}
}

// Load reads and parses the configuration file at path. Files ending in
// .toml are parsed as TOML; anything else is parsed as YAML.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrReadConfigFile, "failed to read configuration file %s", path).
			WithDetail("path", path)
	}

	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return ParseTOML(data)
	}
	return ParseYAML(data)
}

// ParseYAML parses YAML configuration content
func ParseYAML(data []byte) (*Config, error) {
	var raw rawConfig
	if len(bytes.TrimSpace(data)) > 0 {
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, errors.Wrap(err, errors.ErrParseConfig, "failed to parse YAML configuration")
		}
	}
	return raw.normalize(), nil
}

// ParseTOML parses TOML configuration content
func ParseTOML(data []byte) (*Config, error) {
	var raw rawConfig
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(err, errors.ErrParseConfig, "failed to parse TOML configuration")
	}
	return raw.normalize(), nil
}

func (r rawConfig) normalize() *Config {
	cfg := Default()

	cfg.Commands = append(cfg.Commands, r.Commands...)
	cfg.Directories = append(cfg.Directories, r.Directories...)
	cfg.EmptyFiles = append(cfg.EmptyFiles, r.EmptyFiles...)
	cfg.EmptyFiles = append(cfg.EmptyFiles, r.LegacyEmptyFile...)

	for src, dest := range r.Links {
		cfg.Links[src] = dest
	}
	for src, dest := range r.LegacyCopies {
		cfg.Copies[src] = dest
	}
	for src, dest := range r.Copies {
		cfg.Copies[src] = dest
	}

	return cfg
}

// Marshal renders cfg as YAML
func Marshal(cfg *Config) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to render configuration")
	}
	if err := enc.Close(); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to render configuration")
	}
	return buf.Bytes(), nil
}

// SortedKeys returns the keys of m in lexical order
func SortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
