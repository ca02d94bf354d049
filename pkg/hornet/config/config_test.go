package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/hornlab/hornet/pkg/hornet"
	"github.com/hornlab/hornet/pkg/hornet/internalerr"
)

func writeConfig(t *testing.T, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hornet.yaml")
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
dialect: datalog
timeout_seconds: 10
learn: true
store_path: /tmp/hornet.db
fixture_dir: bench/
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Dialect != "datalog" || cfg.TimeoutSeconds != 10 || !cfg.Learn {
		t.Errorf("Unexpected config: %+v", cfg)
	}
	if cfg.StorePath != "/tmp/hornet.db" || cfg.FixtureDir != "bench/" {
		t.Errorf("Unexpected paths: %+v", cfg)
	}
}

func TestLoadAppliesDefaultTimeout(t *testing.T) {
	path := writeConfig(t, "dialect: smtlib2\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.TimeoutSeconds != hornet.DefaultTimeout {
		t.Errorf("Expected default timeout %d, got %d", hornet.DefaultTimeout, cfg.TimeoutSeconds)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	cases := []struct {
		name string
		text string
	}{
		{"negative timeout", "timeout_seconds: -1\n"},
		{"bad dialect", "dialect: prolog\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeConfig(t, tc.text)
			_, err := Load(path)
			if !errors.Is(err, internalerr.ErrInvalidConfig) {
				t.Errorf("Expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("Expected error for missing file")
	}
}
