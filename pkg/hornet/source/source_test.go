package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolveInlineText(t *testing.T) {
	text := "(declare-rel ok ())\n(query ok)"
	got, err := Resolve(text)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if got != text {
		t.Errorf("Expected inline text passthrough, got %q", got)
	}
}

func TestResolveFilePath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "input.smt2")
	want := "(assert false)\n"
	if err := os.WriteFile(path, []byte(want), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := Resolve(path)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if got != want {
		t.Errorf("Expected file contents %q, got %q", want, got)
	}
}

func TestResolveMissingPathIsLiteral(t *testing.T) {
	src := "/non/existent/file.dl"
	got, err := Resolve(src)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if got != src {
		t.Errorf("Expected literal passthrough for missing path, got %q", got)
	}
}

func TestResolveDirectoryIsLiteral(t *testing.T) {
	dir := t.TempDir()
	got, err := Resolve(dir)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if got != dir {
		t.Errorf("Expected directory path to pass through as text, got %q", got)
	}
}
