package config

import (
	"github.com/spf13/viper"
)

// SetDefaults configures default values for all configuration options.
func SetDefaults(v *viper.Viper) {
	// Translation defaults
	v.SetDefault("translate.kernel", "python")
	v.SetDefault("translate.language", "python")

	// Normalizer defaults: disabled unless a formatter command is set
	v.SetDefault("normalizer.command", "")
	v.SetDefault("normalizer.timeout_seconds", 30)

	// Blob storage defaults
	v.SetDefault("blob.endpoint", "")
	v.SetDefault("blob.region", "us-east-1")
	v.SetDefault("blob.access_key", "")
	v.SetDefault("blob.secret_key", "")
	v.SetDefault("blob.use_ssl", true)
}

// BindSensitiveEnvVars binds credential values to environment variables
// so they never need to live in a config file.
func BindSensitiveEnvVars(v *viper.Viper) {
	_ = v.BindEnv("blob.access_key", "INKMILL_BLOB_ACCESS_KEY")
	_ = v.BindEnv("blob.secret_key", "INKMILL_BLOB_SECRET_KEY")
}
