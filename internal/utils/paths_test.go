package utils

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestIsDirectory(t *testing.T) {
	dir := t.TempDir()
	if !IsDirectory(dir) {
		t.Errorf("IsDirectory(%q) = false for an existing directory", dir)
	}

	file := filepath.Join(dir, "plain.txt")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	if IsDirectory(file) {
		t.Errorf("IsDirectory(%q) = true for a regular file", file)
	}

	if IsDirectory(filepath.Join(dir, "missing")) {
		t.Error("IsDirectory reported true for a missing path")
	}
}

func TestRelativize(t *testing.T) {
	root := filepath.Join("repo", "root")
	rel, err := Relativize(root, filepath.Join(root, "a", "b.txt"))
	if err != nil {
		t.Fatalf("Relativize failed: %v", err)
	}
	if rel != "a/b.txt" {
		t.Errorf("Relativize = %q; want %q", rel, "a/b.txt")
	}

	rel, err = Relativize(root, root)
	if err != nil {
		t.Fatalf("Relativize of root failed: %v", err)
	}
	if rel != "." {
		t.Errorf("Relativize of root = %q; want %q", rel, ".")
	}
}

func TestSegments(t *testing.T) {
	cases := []struct {
		path string
		want []string
	}{
		{"a/b/c", []string{"a", "b", "c"}},
		{"single", []string{"single"}},
		{".", nil},
		{"", nil},
	}

	for _, c := range cases {
		if got := Segments(c.path); !reflect.DeepEqual(got, c.want) {
			t.Errorf("Segments(%q) = %v; want %v", c.path, got, c.want)
		}
	}
}
