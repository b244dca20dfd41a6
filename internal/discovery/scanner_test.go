package discovery

import (
	"os"
	"path/filepath"
	"testing"
)

func TestScanner_Scan(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "cute-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	dirs := []string{
		"configs",
		"vendor",
		".git",
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(filepath.Join(tmpDir, dir), 0755); err != nil {
			t.Fatalf("failed to create dir %s: %v", dir, err)
		}
	}

	files := []string{
		"selection.cute",
		"configs/extra.cute",
		"vendor/skipped.cute",
		".git/hidden.cute",
		"notes.txt",
	}
	for _, file := range files {
		path := filepath.Join(tmpDir, file)
		if err := os.WriteFile(path, []byte("utb:add"), 0644); err != nil {
			t.Fatalf("failed to create file %s: %v", file, err)
		}
	}

	scanner := NewScanner([]string{"vendor"}, "*.cute")

	t.Run("finds config files, skipping ignored and hidden dirs", func(t *testing.T) {
		results, err := scanner.Scan(tmpDir)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(results) != 2 {
			t.Errorf("expected 2 config files, got %d: %v", len(results), results)
		}
	})

	t.Run("results are sorted", func(t *testing.T) {
		results, err := scanner.Scan(tmpDir)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for i := 1; i < len(results); i++ {
			if results[i-1] > results[i] {
				t.Errorf("results not sorted: %v", results)
			}
		}
	})

	t.Run("returns error for non-existent directory", func(t *testing.T) {
		if _, err := scanner.Scan("/non/existent/path"); err == nil {
			t.Error("expected error for non-existent directory")
		}
	})

	t.Run("returns error for file instead of directory", func(t *testing.T) {
		file := filepath.Join(tmpDir, "notes.txt")
		if _, err := scanner.Scan(file); err == nil {
			t.Error("expected error for file path")
		}
	})
}
