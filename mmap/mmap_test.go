package mmap

import (
	"os"
	"path/filepath"
	"testing"
)

func TestReadFile(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "mmap_ReadFile_test")
	if err != nil {
		t.Fatal(err)
	}
	name := f.Name()

	_, err = f.WriteString(name)
	f.Close()
	if err != nil {
		t.Fatal(err)
	}

	data, release, err := ReadFile(name)
	if err != nil {
		t.Fatal(err)
	}
	if data != name {
		t.Errorf("Expected file content %q, got %q", name, data)
	}

	if err = release(); err != nil {
		t.Fatal(err)
	}
}

func TestReadFileEmpty(t *testing.T) {
	name := filepath.Join(t.TempDir(), "empty")
	if err := os.WriteFile(name, nil, 0644); err != nil {
		t.Fatal(err)
	}

	data, release, err := ReadFile(name)
	if err != nil {
		t.Fatal(err)
	}
	if data != "" {
		t.Errorf("Expected empty file content, got %q", data)
	}
	if release == nil {
		t.Fatal("ReadFile returned nil release function")
	}

	if err = release(); err != nil {
		t.Fatal(err)
	}
}

func TestReadFileMissing(t *testing.T) {
	name := filepath.Join(t.TempDir(), "missing")
	if _, _, err := ReadFile(name); err == nil {
		t.Error("Expected error, got nil")
	}
}
