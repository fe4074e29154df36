package environment

import (
	"github.com/joho/godotenv"
	"github.com/xrelkd/axdot/pkg/errors"
)

// LoadEnvFile loads KEY=VALUE pairs from a dotenv file into the process
// environment. Variables that are already set keep their value, so a
// file can supply USER or HOME for non-login shells without overriding them.
func LoadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return errors.Wrapf(err, errors.ErrEnvFile, "failed to load environment file %s", path).
			WithDetail("path", path)
	}
	return nil
}
