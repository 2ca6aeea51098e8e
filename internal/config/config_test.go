package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaultsWhenMissing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	want := DefaultConfig()
	if *cfg != *want {
		t.Errorf("Load() = %+v, want defaults %+v", cfg, want)
	}
}

func TestConfigPathHonorsXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	path, err := ConfigPath()
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(dir, "uxtone", "config.yaml"); path != want {
		t.Errorf("ConfigPath() = %q, want %q", path, want)
	}
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	if err := os.MkdirAll(filepath.Join(dir, "uxtone"), 0o755); err != nil {
		t.Fatal(err)
	}
	doc := `format: json
log_level: debug
lexicon: ko
server:
  addr: 127.0.0.1:9000
`
	if err := os.WriteFile(filepath.Join(dir, "uxtone", "config.yaml"), []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("UXTONE_LOG_LEVEL", "error")
	t.Setenv("UXTONE_RULES", "/etc/uxtone/rules.yaml")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	tests := []struct {
		name, got, want string
	}{
		{"format from file", cfg.Format, "json"},
		{"level from env", cfg.LogLevel, "error"},
		{"lexicon from file", cfg.Lexicon, "ko"},
		{"rules from env", cfg.Rules, "/etc/uxtone/rules.yaml"},
		{"addr from file", cfg.Server.Addr, "127.0.0.1:9000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}

func TestLoadExplicitPath(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() of a missing explicit file should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("format: [json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("Load() of invalid YAML should fail")
	}
}
