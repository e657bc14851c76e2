package util

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-faster/errors"
	"gopkg.in/yaml.v3"
)

// EnvLogLevel overrides the configured log level when set.
const EnvLogLevel = "VOID_LOG_LEVEL"

// LoadOpts reads the configuration file at path on top of DefaultOpts. The format is picked from
// the extension: .toml, or .yaml/.yml. An empty path returns the defaults. EnvLogLevel is applied
// last and the result is validated.
func LoadOpts(path string) (*Opts, error) {
	opts := DefaultOpts()
	if path != "" {
		if err := decodeFile(path, opts); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(opts)
	if err := opts.Validate(); err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	return opts, nil
}

func decodeFile(path string, opts *Opts) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.DecodeFile(path, opts); err != nil {
			return errors.Wrapf(err, "parse config %s", path)
		}
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return errors.Wrapf(err, "read config %s", path)
		}
		if err := yaml.Unmarshal(data, opts); err != nil {
			return errors.Wrapf(err, "parse config %s", path)
		}
	default:
		return errors.Errorf("config %s: unsupported format %q", path, ext)
	}
	return nil
}

func applyEnvOverrides(opts *Opts) {
	if raw := strings.TrimSpace(os.Getenv(EnvLogLevel)); raw != "" {
		opts.LogLevel = raw
	}
}
