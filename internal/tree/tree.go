// Package tree builds a filtered, depth-bounded directory tree
package tree

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bethropolis/repo-structure/internal/exclude"
	"github.com/bethropolis/repo-structure/internal/ignore"
	"github.com/bethropolis/repo-structure/internal/utils"
)

// Context carries the read-only state shared by every call of one traversal.
type Context struct {
	// Root is the absolute path the traversal started from; all matching is
	// performed on paths relative to it.
	Root string

	// Matcher holds the compiled .gitignore rules. Nil means no ignore file
	// was present and nothing is ignore-matched.
	Matcher *ignore.Matcher

	// Excludes is the merged segment-name exclusion set.
	Excludes exclude.Set

	// MaxDepth bounds the traversal; the root is depth 0. A negative value
	// means unbounded. At exactly MaxDepth a directory is still emitted but
	// its children are never enumerated.
	MaxDepth int

	Logger  utils.Logger
	Tracker *SkippedTracker
}

func (c *Context) logger() utils.Logger {
	if c.Logger == nil {
		return &utils.NoopLogger{}
	}
	return c.Logger
}

// Build visits path at the given depth and returns its node, or nil when the
// entry is filtered out. Filters run in a fixed order: depth cutoff, segment
// exclusion, ignore rules, symlink check; only then is the entry classified
// as file or directory.
func Build(path string, ctx *Context, depth int) *Node {
	log := ctx.logger()

	if ctx.MaxDepth >= 0 && depth > ctx.MaxDepth {
		return nil
	}

	relativePath, err := utils.Relativize(ctx.Root, path)
	if err != nil {
		log.Error("tree: path calculation failed for %q: %v", path, err)
		ctx.Tracker.Track(path, ReasonPathError, false)
		return nil
	}

	info, err := os.Lstat(path)
	if err != nil {
		// Permission errors on individual entries are recoverable; the
		// entry is dropped and the rest of the tree survives.
		reason := ReasonStatError
		if os.IsPermission(err) {
			reason = ReasonPermError
		}
		log.Warn("tree: cannot stat %q: %v", relativePath, err)
		ctx.Tracker.Track(relativePath, reason, false)
		return nil
	}
	isDir := info.IsDir()

	if ctx.Excludes.Excluded(relativePath) {
		log.Debug("tree: excluded %q (segment match)", relativePath)
		ctx.Tracker.Track(relativePath, ReasonExcludedSegment, isDir)
		return nil
	}

	if ctx.Matcher.Match(relativePath, isDir) {
		log.Debug("tree: ignored %q (gitignore rule)", relativePath)
		ctx.Tracker.Track(relativePath, ReasonIgnoredRule, isDir)
		return nil
	}

	if info.Mode()&os.ModeSymlink != 0 {
		log.Debug("tree: skipping symlink %q", relativePath)
		ctx.Tracker.Track(relativePath, ReasonSymlink, false)
		return nil
	}

	if info.Mode().IsRegular() {
		return &Node{Name: filepath.Base(path), Type: TypeFile}
	}

	if isDir {
		return buildDirectory(path, relativePath, ctx, depth)
	}

	// Sockets, devices, FIFOs and friends have no representation.
	log.Debug("tree: skipping unsupported entry %q (mode %v)", relativePath, info.Mode())
	ctx.Tracker.Track(relativePath, ReasonNotSupported, false)
	return nil
}

func buildDirectory(path, relativePath string, ctx *Context, depth int) *Node {
	log := ctx.logger()
	node := &Node{Name: filepath.Base(path), Type: TypeDirectory}

	// A directory sitting exactly at the depth limit is the last visible
	// level: it appears in the tree but its children are never enumerated.
	// The suppressed enumeration is tracked so -show-skipped accounts for it.
	if ctx.MaxDepth >= 0 && depth == ctx.MaxDepth {
		log.Debug("tree: depth limit %d reached at %q, not enumerating children", ctx.MaxDepth, relativePath)
		ctx.Tracker.Track(relativePath, ReasonDepthLimit, true)
		return node
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		reason := ReasonStatError
		if os.IsPermission(err) {
			reason = ReasonPermError
		}
		log.Warn("tree: cannot enumerate %q: %v", relativePath, err)
		ctx.Tracker.Track(relativePath, reason, true)
		return node
	}

	directories, files := partition(entries)
	sortByName(directories)
	sortByName(files)

	var children []*Node
	for _, entry := range directories {
		if child := Build(filepath.Join(path, entry.Name()), ctx, depth+1); child != nil {
			children = append(children, child)
		}
	}
	for _, entry := range files {
		if child := Build(filepath.Join(path, entry.Name()), ctx, depth+1); child != nil {
			children = append(children, child)
		}
	}

	// A nil slice keeps the children field out of the JSON entirely, so an
	// empty or fully filtered directory looks the same as a leaf.
	node.Children = children
	return node
}

// partition splits entries into directories and everything else. Symlinks
// land in the non-directory group even when they target directories; they
// are filtered out during the recursive visit regardless.
func partition(entries []fs.DirEntry) (directories, files []fs.DirEntry) {
	for _, entry := range entries {
		if entry.IsDir() {
			directories = append(directories, entry)
		} else {
			files = append(files, entry)
		}
	}
	return directories, files
}

// sortByName orders entries case-insensitively, falling back to a
// case-sensitive comparison so equal-fold names still sort deterministically.
func sortByName(entries []fs.DirEntry) {
	sort.Slice(entries, func(i, j int) bool {
		left, right := entries[i].Name(), entries[j].Name()
		leftLower, rightLower := strings.ToLower(left), strings.ToLower(right)
		if leftLower != rightLower {
			return leftLower < rightLower
		}
		return left < right
	})
}
