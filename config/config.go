// Package config loads inkmill configuration with Viper: defaults,
// then a discovered inkmill.toml, then INKMILL_* environment variables.
package config

import "time"

// Config is the inkmill core configuration.
type Config struct {
	Translate  TranslateConfig  `mapstructure:"translate" toml:"translate"`
	Normalizer NormalizerConfig `mapstructure:"normalizer" toml:"normalizer"`
	Blob       BlobConfig       `mapstructure:"blob" toml:"blob"`
}

// TranslateConfig sets fallback identities used when the CLI flags are
// omitted.
type TranslateConfig struct {
	// Kernel is the default kernel identity.
	Kernel string `mapstructure:"kernel" toml:"kernel"`

	// Language is the default language family.
	Language string `mapstructure:"language" toml:"language"`
}

// NormalizerConfig wires an external style formatter into the python
// translator. Empty command means no normalization.
type NormalizerConfig struct {
	Command        string `mapstructure:"command" toml:"command"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds" toml:"timeout_seconds"`
}

// Timeout returns the formatter timeout as a duration.
func (n NormalizerConfig) Timeout() time.Duration {
	return time.Duration(n.TimeoutSeconds) * time.Second
}

// BlobConfig configures the S3-compatible blob storage adapter.
type BlobConfig struct {
	Endpoint  string `mapstructure:"endpoint" toml:"endpoint"`
	Region    string `mapstructure:"region" toml:"region"`
	AccessKey string `mapstructure:"access_key" toml:"access_key"`
	SecretKey string `mapstructure:"secret_key" toml:"secret_key"`
	UseSSL    bool   `mapstructure:"use_ssl" toml:"use_ssl"`
}
