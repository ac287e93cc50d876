package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestBackupRemovesPartialArchive(t *testing.T) {
	dir := t.TempDir()
	archive := filepath.Join(dir, "backup.tar.gz")
	source := filepath.Join(dir, "students.txt")

	if err := backup(archive, source); err == nil {
		t.Fatal("Expected error for missing registry file")
	}
	if _, err := os.Stat(archive); !os.IsNotExist(err) {
		t.Fatalf("Partial archive left behind: %v", err)
	}

	if err := os.WriteFile(source, []byte("101|Asha||pw\n"), 0o644); err != nil {
		t.Fatalf("Failed to write registry: %v", err)
	}
	if err := backup(archive, source); err != nil {
		t.Fatalf("Retry failed: %v", err)
	}
	if info, err := os.Stat(archive); err != nil || info.Size() == 0 {
		t.Fatalf("Archive not written: %v", err)
	}
}
