// Package exclude implements segment-based path exclusion.
//
// An exclusion set holds literal directory/file names. A path is excluded
// when any single segment of it equals a member of the set, so a directory
// named "node_modules" is pruned wherever it appears, not only at the root.
// This is deliberately NOT glob matching; glob-style rules belong to the
// ignore package.
package exclude

import (
	"sort"

	"github.com/bethropolis/repo-structure/internal/utils"
)

// Default holds the baseline names excluded from every traversal.
var Default = []string{
	".git",         // version-control metadata
	"node_modules", // Node.js packages
	"venv",         // Python virtual env
}

// presets maps ecosystem names to additional exclusions merged on request.
var presets = map[string][]string{
	"python": {"__pycache__", ".idea", ".vscode", ".mypy_cache", ".pytest_cache"},
	"node":   {"dist", "build", "coverage", ".idea", ".vscode"},
	"java":   {"target", "out", "build", ".idea", ".vscode"},
	"go":     {"vendor", "bin", ".idea", ".vscode"},
}

// Preset returns the extra exclusions registered for an ecosystem name.
// The second return value is false for unknown names.
func Preset(name string) ([]string, bool) {
	patterns, ok := presets[name]
	if !ok {
		return nil, false
	}
	out := make([]string, len(patterns))
	copy(out, patterns)
	return out, true
}

// PresetNames lists the registered preset names in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Set is a merged, deduplicated collection of excluded segment names.
type Set map[string]struct{}

// Merge unions the baseline with any number of extra name lists.
// Duplicates collapse; empty names are dropped.
func Merge(baseline []string, extras ...[]string) Set {
	set := make(Set, len(baseline))
	for _, name := range baseline {
		if name != "" {
			set[name] = struct{}{}
		}
	}
	for _, extra := range extras {
		for _, name := range extra {
			if name != "" {
				set[name] = struct{}{}
			}
		}
	}
	return set
}

// Excluded reports whether any segment of the root-relative path is a
// member of the set.
func (s Set) Excluded(relativePath string) bool {
	if len(s) == 0 {
		return false
	}
	for _, segment := range utils.Segments(relativePath) {
		if _, found := s[segment]; found {
			return true
		}
	}
	return false
}

// Names returns the set members in sorted order, for logging.
func (s Set) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
