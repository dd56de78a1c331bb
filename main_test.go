package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExpandPatterns(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.png", "b.png", "c.jpg"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	paths, err := expandPatterns([]string{filepath.Join(dir, "*.png")})
	if err != nil {
		t.Fatalf("expandPatterns failed: %v", err)
	}
	if len(paths) != 2 {
		t.Errorf("got %d paths, want 2: %v", len(paths), paths)
	}

	// Literal paths pass through even if they do not exist.
	paths, err = expandPatterns([]string{"does-not-exist.png"})
	if err != nil {
		t.Fatalf("expandPatterns failed: %v", err)
	}
	if len(paths) != 1 || paths[0] != "does-not-exist.png" {
		t.Errorf("literal path mangled: %v", paths)
	}

	// A glob matching nothing is skipped without error.
	paths, err = expandPatterns([]string{filepath.Join(dir, "*.gif")})
	if err != nil {
		t.Fatalf("expandPatterns failed: %v", err)
	}
	if len(paths) != 0 {
		t.Errorf("got %v, want no paths", paths)
	}
}
