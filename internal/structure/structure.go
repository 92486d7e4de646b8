// Package structure assembles the directory tree for a materialized
// repository checkout: it compiles the root .gitignore (when present),
// merges the exclusion sets, and runs the tree builder from depth 0.
package structure

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bethropolis/repo-structure/internal/exclude"
	"github.com/bethropolis/repo-structure/internal/ignore"
	"github.com/bethropolis/repo-structure/internal/tree"
)

const gitignoreFileName = ".gitignore"

// ErrInvalidRoot indicates the root path does not exist, is unreadable, or
// is not a directory. Traversal never starts from an invalid root.
var ErrInvalidRoot = errors.New("structure: root path is not an accessible directory")

// Get builds the tree for the repository rooted at rootPath. It returns the
// root node, the entries skipped along the way with their reasons, and an
// error only for fatal precondition failures.
func Get(rootPath string, opts ...Option) (*tree.Node, []tree.SkippedItem, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	absRoot, err := filepath.Abs(rootPath)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: '%s': %v", ErrInvalidRoot, rootPath, err)
	}

	// Lstat so a symlinked root is rejected here instead of yielding an
	// empty result from the builder's symlink filter.
	info, err := os.Lstat(absRoot)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: '%s': %v", ErrInvalidRoot, absRoot, err)
	}
	if !info.IsDir() {
		return nil, nil, fmt.Errorf("%w: '%s' is not a directory", ErrInvalidRoot, absRoot)
	}

	var matcher *ignore.Matcher
	if options.useGitignore {
		matcher, err = ignore.FromFile(absRoot, filepath.Join(absRoot, gitignoreFileName), ignore.WithLogger(options.logger))
		if err != nil {
			return nil, nil, err
		}
		if matcher == nil {
			options.logger.Debug("structure: no %s at '%s', nothing is ignore-matched", gitignoreFileName, absRoot)
		}
	}

	merged := exclude.Merge(exclude.Default, options.extraExcludes...)
	options.logger.Debug("structure: effective exclusions: %v", merged.Names())

	tracker := tree.NewSkippedTracker(64)
	ctx := &tree.Context{
		Root:     absRoot,
		Matcher:  matcher,
		Excludes: merged,
		MaxDepth: options.maxDepth,
		Logger:   options.logger,
		Tracker:  tracker,
	}

	node := tree.Build(absRoot, ctx, 0)
	if node == nil {
		// The root passed validation above, so the builder only drops it
		// when a rule or a late stat failure removed it.
		return nil, tracker.Items(), fmt.Errorf("%w: '%s' was filtered out", ErrInvalidRoot, absRoot)
	}

	return node, tracker.Items(), nil
}
