// Package ignore compiles .gitignore rules into a path matcher.
//
// The matcher wraps the gitwildmatch engine from denormal/go-gitignore, so
// the full rule grammar applies: `*`, `**`, `?`, character classes, leading
// `/` anchoring, trailing `/` directory-only rules, and `!` negation with
// later rules overriding earlier ones.
package ignore

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bethropolis/repo-structure/internal/utils"
	gitignore "github.com/denormal/go-gitignore"
)

// Matcher tests root-relative paths against a compiled .gitignore rule set.
// A nil *Matcher is valid and matches nothing.
type Matcher struct {
	root   string
	engine gitignore.GitIgnore
	logger utils.Logger
}

// New compiles the given ignore-file contents for a traversal rooted at root.
func New(root string, contents string, opts ...Option) (*Matcher, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("ignore: failed to get absolute path for root '%s': %w", root, err)
	}

	m := &Matcher{
		root:   absRoot,
		logger: &utils.NoopLogger{},
	}
	for _, opt := range opts {
		opt(m)
	}

	// Collect parse errors instead of aborting: git itself skips malformed
	// lines, and a single bad rule should not break the whole traversal.
	onError := func(e gitignore.Error) bool {
		m.logger.Warn("ignore: skipping malformed rule at %v: %v", e.Position(), e.Underlying())
		return true
	}
	m.engine = gitignore.New(strings.NewReader(contents), absRoot, onError)

	return m, nil
}

// FromFile compiles the ignore file at path, if one exists. A missing file is
// not an error; it yields a nil matcher that matches nothing.
func FromFile(root string, path string, opts ...Option) (*Matcher, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("ignore: failed to read '%s': %w", path, err)
	}
	return New(root, string(data), opts...)
}

// Match reports whether the root-relative path is excluded by the rule set.
// The final decision honors rule order, so a later negation reinstates a
// path an earlier rule excluded.
func (m *Matcher) Match(relativePath string, isDir bool) bool {
	if m == nil || m.engine == nil {
		return false
	}

	// Never match the root itself.
	if relativePath == "" || relativePath == "." {
		return false
	}

	unixPath := filepath.ToSlash(relativePath)
	result := m.engine.Relative(unixPath, isDir)
	if result == nil {
		m.logger.Debug("ignore: no rule matched %q", unixPath)
		return false
	}
	if result.Include() {
		m.logger.Debug("ignore: %q reinstated by negation rule %v", unixPath, result)
		return false
	}
	m.logger.Debug("ignore: %q excluded by rule %v", unixPath, result)
	return true
}

// Root returns the absolute traversal root the matcher was compiled for.
func (m *Matcher) Root() string {
	if m == nil {
		return ""
	}
	return m.root
}
