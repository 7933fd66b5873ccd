package utils

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "present.txt")
	if FileExists(path) {
		t.Fatal("FileExists reported true before the file was created")
	}
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if !FileExists(path) {
		t.Fatal("FileExists reported false after the file was created")
	}
}

func TestEnsureDirCreatesMissingParents(t *testing.T) {
	dir := t.TempDir()
	nested := filepath.Join(dir, "a", "b", "c")
	if err := EnsureDir(nested); err != nil {
		t.Fatalf("EnsureDir: %v", err)
	}
	stat, err := os.Stat(nested)
	if err != nil {
		t.Fatalf("stat after EnsureDir: %v", err)
	}
	if !stat.IsDir() {
		t.Errorf("%s is not a directory", nested)
	}
}

func TestEnsureDirIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	if err := EnsureDir(dir); err != nil {
		t.Fatalf("EnsureDir on an existing directory returned an error: %v", err)
	}
}
