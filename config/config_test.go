package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func TestLoad_Defaults(t *testing.T) {
	// Isolated viper instance without loading user/project config
	v := viper.New()
	SetDefaults(v)

	cfg, err := LoadWithViper(v)
	if err != nil {
		t.Fatalf("LoadWithViper() failed: %v", err)
	}

	if cfg.Translate.Kernel != "python" {
		t.Errorf("expected default kernel 'python', got %q", cfg.Translate.Kernel)
	}
	if cfg.Translate.Language != "python" {
		t.Errorf("expected default language 'python', got %q", cfg.Translate.Language)
	}
	if cfg.Normalizer.Command != "" {
		t.Errorf("expected normalizer disabled by default, got %q", cfg.Normalizer.Command)
	}
	if cfg.Normalizer.TimeoutSeconds != 30 {
		t.Errorf("expected default normalizer timeout 30, got %d", cfg.Normalizer.TimeoutSeconds)
	}
	if cfg.Blob.Region != "us-east-1" {
		t.Errorf("expected default blob region 'us-east-1', got %q", cfg.Blob.Region)
	}
	if !cfg.Blob.UseSSL {
		t.Error("expected blob use_ssl default true")
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "inkmill.toml")
	content := `
[translate]
kernel = "ir"
language = "R"

[normalizer]
command = "black -"
timeout_seconds = 5
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile() failed: %v", err)
	}

	if cfg.Translate.Kernel != "ir" {
		t.Errorf("expected kernel 'ir', got %q", cfg.Translate.Kernel)
	}
	if cfg.Translate.Language != "R" {
		t.Errorf("expected language 'R', got %q", cfg.Translate.Language)
	}
	if cfg.Normalizer.Command != "black -" {
		t.Errorf("expected normalizer command 'black -', got %q", cfg.Normalizer.Command)
	}
	if got := cfg.Normalizer.Timeout().Seconds(); got != 5 {
		t.Errorf("expected 5s timeout, got %vs", got)
	}
	// Unset sections keep their defaults.
	if cfg.Blob.Region != "us-east-1" {
		t.Errorf("expected default blob region, got %q", cfg.Blob.Region)
	}
}

func TestLoadFromFile_Missing(t *testing.T) {
	if _, err := LoadFromFile(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestWriteDefault(t *testing.T) {
	Reset()
	defer Reset()

	path := filepath.Join(t.TempDir(), "inkmill.toml")
	if err := WriteDefault(path); err != nil {
		t.Fatalf("WriteDefault() failed: %v", err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile() on written config failed: %v", err)
	}
	if cfg.Translate.Kernel != "python" {
		t.Errorf("round-tripped kernel = %q, want 'python'", cfg.Translate.Kernel)
	}

	// Second write must refuse to clobber.
	if err := WriteDefault(path); err == nil {
		t.Fatal("expected error writing over existing config")
	}
}

func TestReset(t *testing.T) {
	Reset()
	if _, err := Load(); err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if globalConfig == nil {
		t.Fatal("Load() did not cache config")
	}
	Reset()
	if globalConfig != nil || viperInstance != nil {
		t.Error("Reset() left cached state behind")
	}
}
