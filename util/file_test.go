package util

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCreateFileMakesFolder(t *testing.T) {
	savePath := filepath.Join(t.TempDir(), "nested", "report.csv")
	f, err := CreateFile(savePath)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	f.Close()

	if _, err := os.Stat(savePath); err != nil {
		t.Errorf("file was not created: %s", err)
	}
}

func TestEnsureDirExisting(t *testing.T) {
	if err := EnsureDir(filepath.Join(t.TempDir(), "report.csv")); err != nil {
		t.Errorf("unexpected error: %s", err)
	}
}
