package utils

import (
	"os"
	"path/filepath"
	"strings"
)

// IsDirectory returns true if path exists and is a directory.
// The check uses Lstat, so a symlink pointing at a directory reports false.
func IsDirectory(path string) bool {
	info, err := os.Lstat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// Relativize returns path relative to root, normalized to forward slashes.
func Relativize(root, path string) (string, error) {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return "", err
	}
	return filepath.ToSlash(rel), nil
}

// Segments splits a slash-normalized relative path into its components.
// The root path "." has no segments.
func Segments(relativePath string) []string {
	normalized := filepath.ToSlash(relativePath)
	if normalized == "" || normalized == "." {
		return nil
	}
	return strings.Split(normalized, "/")
}
