package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaults(t *testing.T) {
	config, err := ParseConfig("")
	if err != nil {
		t.Fatalf("Failed to parse config: %v", err)
	}
	if config.Storage.Path != DefaultStoragePath {
		t.Fatalf("Unexpected storage path: %q", config.Storage.Path)
	}
	if config.Cache.Size != 0 || config.Cache.TTL != 10*time.Minute {
		t.Fatalf("Unexpected cache config: %+v", config.Cache)
	}
}

func TestFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "studreg.yaml")
	content := `
storage:
  path: /tmp/registry.txt
cache:
  size: 128
  ttl: 30s
log:
  level: debug
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	t.Setenv("STUDREG_CACHE_SIZE", "64")

	config, err := ParseConfig(path)
	if err != nil {
		t.Fatalf("Failed to parse config: %v", err)
	}
	if config.Storage.Path != "/tmp/registry.txt" {
		t.Fatalf("Unexpected storage path: %q", config.Storage.Path)
	}
	if config.Cache.Size != 64 {
		t.Fatalf("Env must override file, got cache size %d", config.Cache.Size)
	}
	if config.Cache.TTL != 30*time.Second || config.Log.Level != "debug" {
		t.Fatalf("Unexpected config: %+v", config)
	}
}

func TestMissingFile(t *testing.T) {
	if _, err := ParseConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("Expected error for missing config file")
	}
}
