package config

import (
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/inkmill/inkmill/errors"
)

// WriteDefault writes a starter inkmill.toml with the default settings
// to path. Fails if the file already exists.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return errors.Newf("config file already exists: %s", path)
	}

	v := GetViper()
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return errors.Wrap(err, "assembling default config")
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return errors.Wrap(err, "encoding default config")
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "writing config file %s", path)
	}
	return nil
}
