package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
catalog:
  path: data/catalog.json
`))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Addr != ":8080" {
		t.Errorf("default addr = %q", cfg.Server.Addr)
	}
	if cfg.Server.ReadHeaderTimeout != 5*time.Second {
		t.Errorf("default read header timeout = %v", cfg.Server.ReadHeaderTimeout)
	}
	if cfg.Catalog.Source != "json" {
		t.Errorf("default catalog source = %q", cfg.Catalog.Source)
	}
	if cfg.Generator.DefaultStake != 10000 {
		t.Errorf("default stake = %d", cfg.Generator.DefaultStake)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("default log level = %q", cfg.Logging.Level)
	}
}

func TestLoadRejectsMissingCatalogPath(t *testing.T) {
	if _, err := Load(writeConfig(t, `
server:
  addr: ":9090"
`)); err == nil {
		t.Fatal("config without catalog path should fail")
	}
}

func TestLoadRejectsUnknownSource(t *testing.T) {
	if _, err := Load(writeConfig(t, `
catalog:
  source: postgres
  path: somewhere
`)); err == nil {
		t.Fatal("unknown catalog source should fail")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("missing config file should fail")
	}
}
