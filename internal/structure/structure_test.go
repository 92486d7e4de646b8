package structure

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/bethropolis/repo-structure/internal/tree"
)

func writeTestFile(t *testing.T, path string, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create parent of %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func childNames(node *tree.Node) []string {
	names := make([]string, 0, len(node.Children))
	for _, child := range node.Children {
		names = append(names, child.Name)
	}
	return names
}

func TestGetMissingRoot(t *testing.T) {
	_, _, err := Get(filepath.Join(t.TempDir(), "does-not-exist"))
	if !errors.Is(err, ErrInvalidRoot) {
		t.Fatalf("Get error = %v; want ErrInvalidRoot", err)
	}
}

func TestGetRootIsAFile(t *testing.T) {
	root := t.TempDir()
	filePath := filepath.Join(root, "plain.txt")
	writeTestFile(t, filePath, "x")

	_, _, err := Get(filePath)
	if !errors.Is(err, ErrInvalidRoot) {
		t.Fatalf("Get error = %v; want ErrInvalidRoot", err)
	}
}

func TestGetAppliesGitignore(t *testing.T) {
	root := t.TempDir()
	writeTestFile(t, filepath.Join(root, ".gitignore"), "*.log\n!keep.log\n")
	writeTestFile(t, filepath.Join(root, "keep.log"), "kept")
	writeTestFile(t, filepath.Join(root, "other.log"), "dropped")
	writeTestFile(t, filepath.Join(root, "readme.md"), "hello")

	node, skipped, err := Get(root)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}

	got := childNames(node)
	want := []string{".gitignore", "keep.log", "readme.md"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("children = %v; want %v", got, want)
	}

	foundOther := false
	for _, item := range skipped {
		if item.Path == "other.log" && item.Reason == tree.ReasonIgnoredRule {
			foundOther = true
		}
	}
	if !foundOther {
		t.Errorf("other.log skip not reported; skipped = %v", skipped)
	}
}

func TestGetWithoutGitignore(t *testing.T) {
	root := t.TempDir()
	writeTestFile(t, filepath.Join(root, ".gitignore"), "*.log\n")
	writeTestFile(t, filepath.Join(root, "other.log"), "retained")

	node, _, err := Get(root, WithGitignore(false))
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}

	got := childNames(node)
	want := []string{".gitignore", "other.log"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("children = %v; want %v", got, want)
	}
}

func TestGetMergesExtraExcludes(t *testing.T) {
	root := t.TempDir()
	writeTestFile(t, filepath.Join(root, "dist", "bundle.js"), "x")
	writeTestFile(t, filepath.Join(root, "src", "main.go"), "x")

	node, _, err := Get(root, WithExcludes([]string{"dist"}))
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}

	got := childNames(node)
	want := []string{"src"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("children = %v; want %v", got, want)
	}
}

func TestGetPreset(t *testing.T) {
	root := t.TempDir()
	writeTestFile(t, filepath.Join(root, "__pycache__", "mod.pyc"), "x")
	writeTestFile(t, filepath.Join(root, "main.py"), "x")

	node, _, err := Get(root, WithPreset("python"))
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}

	got := childNames(node)
	want := []string{"main.py"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("children = %v; want %v", got, want)
	}
}

func TestGetMaxDepthZero(t *testing.T) {
	root := t.TempDir()
	writeTestFile(t, filepath.Join(root, "dir", "sub.txt"), "x")

	node, _, err := Get(root, WithMaxDepth(0))
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if node.Children != nil {
		t.Fatalf("maxDepth=0 root has children: %v", childNames(node))
	}
	if node.Name != filepath.Base(root) {
		t.Errorf("root name = %q; want %q", node.Name, filepath.Base(root))
	}
}

func TestValidatePreset(t *testing.T) {
	if err := ValidatePreset(""); err != nil {
		t.Errorf("empty preset should be valid: %v", err)
	}
	if err := ValidatePreset("node"); err != nil {
		t.Errorf("node preset should be valid: %v", err)
	}
	if err := ValidatePreset("cobol"); err == nil {
		t.Error("unknown preset did not error")
	}
}
