package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/adrg/xdg"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/xrelkd/axdot/pkg/errors"
)

// EnvPrefix is the prefix of environment variables that override settings
const EnvPrefix = "AXDOT_"

// Settings are the tool's own options, as opposed to the declared Config
type Settings struct {
	// ConfigFile is the configuration used when --config is not given
	ConfigFile string `koanf:"config"`

	// Replace removes conflicting entries without prompting
	Replace bool `koanf:"replace"`

	// EnvFile is a dotenv file loaded before resolving the context
	EnvFile string `koanf:"env_file"`

	// NoColor disables styled output
	NoColor bool `koanf:"no_color"`
}

func defaultSettings() map[string]interface{} {
	return map[string]interface{}{
		"config":   DefaultFileName,
		"replace":  false,
		"env_file": "",
		"no_color": false,
	}
}

// SettingsPath returns the settings file location under the XDG config home
func SettingsPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		configHome = xdg.ConfigHome
	}
	return filepath.Join(configHome, "axdot", "settings.toml")
}

// LoadSettings layers built-in defaults, the settings file at path (if it
// exists) and AXDOT_* environment variables. An empty path means SettingsPath().
func LoadSettings(path string) (*Settings, error) {
	if path == "" {
		path = SettingsPath()
	}

	k := koanf.New(".")

	// 1. Load defaults
	if err := k.Load(confmap.Provider(defaultSettings(), "."), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrSettingsLoad, "failed to load default settings")
	}

	// 2. Load settings file if it exists
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrSettingsLoad, "failed to load settings from %s", path).
				WithDetail("path", path)
		}
	}

	// 3. Load env vars
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrSettingsLoad, "failed to load settings from environment")
	}

	// 4. Unmarshal
	var s Settings
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &s,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				trimStringHookFunc(),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &s, unmarshalConf); err != nil {
		return nil, errors.Wrapf(err, errors.ErrSettingsLoad, "failed to unmarshal settings from %s", path)
	}

	return &s, nil
}

// trimStringHookFunc strips surrounding whitespace from string values, which
// tends to sneak in through environment variables.
func trimStringHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if s, ok := data.(string); ok && t.Kind() == reflect.String {
			return strings.TrimSpace(s), nil
		}
		return data, nil
	}
}
