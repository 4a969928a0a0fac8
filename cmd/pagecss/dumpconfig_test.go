package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteTo(t *testing.T) {
	dst := filepath.Join(t.TempDir(), "config.yaml")
	if err := writeTo(dst, []byte("version: 1\n")); err != nil {
		t.Fatalf("writeTo() error = %v", err)
	}
	data, err := os.ReadFile(dst)
	if err != nil {
		t.Fatalf("unable to read result: %v", err)
	}
	if string(data) != "version: 1\n" {
		t.Errorf("unexpected content %q", data)
	}

	if err := writeTo(filepath.Join(t.TempDir(), "missing", "config.yaml"), nil); err == nil {
		t.Error("expected error for absent directory")
	}
}
