// Package tree builds a filtered, depth-bounded directory tree
package tree

import (
	"sync"
)

// NodeType distinguishes the two kinds of entries a tree represents.
type NodeType string

const (
	TypeFile      NodeType = "file"
	TypeDirectory NodeType = "directory"
)

// Node is one entry in the output tree. Children is nil for files, for
// directories with no surviving entries, and for directories at the depth
// boundary; the JSON field disappears in all three cases.
type Node struct {
	Name     string   `json:"name"`
	Type     NodeType `json:"type"`
	Children []*Node  `json:"children,omitempty"`
}

// SkippedReason clarifies why an entry was left out of the tree.
type SkippedReason string

const (
	ReasonExcludedSegment SkippedReason = "Excluded (Segment Match)"
	ReasonIgnoredRule     SkippedReason = "Ignored (Gitignore Rule)"
	ReasonSymlink         SkippedReason = "Skipped (Symbolic Link)"
	ReasonDepthLimit      SkippedReason = "Skipped (Depth Limit)"
	ReasonNotSupported    SkippedReason = "Skipped (Unsupported Entry Kind)"
	ReasonPermError       SkippedReason = "Skipped (Permission Error)"
	ReasonStatError       SkippedReason = "Skipped (Stat Error)"
	ReasonPathError       SkippedReason = "Skipped (Path Calculation Error)"
)

// SkippedItem holds information about a skipped path.
type SkippedItem struct {
	Path   string        `json:"path"`
	Reason SkippedReason `json:"reason"`
	IsDir  bool          `json:"is_dir"`
}

// SkippedTracker records skipped items during a traversal.
type SkippedTracker struct {
	items []SkippedItem
	mutex sync.Mutex
}

// NewSkippedTracker creates a new SkippedTracker
func NewSkippedTracker(capacity int) *SkippedTracker {
	return &SkippedTracker{
		items: make([]SkippedItem, 0, capacity),
	}
}

// Track adds a skipped item to the tracker
func (st *SkippedTracker) Track(path string, reason SkippedReason, isDir bool) {
	if st == nil {
		return
	}
	st.mutex.Lock()
	defer st.mutex.Unlock()
	st.items = append(st.items, SkippedItem{Path: path, Reason: reason, IsDir: isDir})
}

// Items returns the tracked skipped items
func (st *SkippedTracker) Items() []SkippedItem {
	if st == nil {
		return nil
	}
	st.mutex.Lock()
	defer st.mutex.Unlock()
	return st.items
}
