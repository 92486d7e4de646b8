package structure

import (
	"fmt"

	"github.com/bethropolis/repo-structure/internal/exclude"
	"github.com/bethropolis/repo-structure/internal/utils"
)

type options struct {
	maxDepth      int
	extraExcludes [][]string
	useGitignore  bool
	logger        utils.Logger
}

func defaultOptions() options {
	return options{
		maxDepth:     -1, // unbounded
		useGitignore: true,
		logger:       &utils.NoopLogger{},
	}
}

// Option configures a single Get invocation.
type Option func(*options)

// WithMaxDepth bounds the traversal depth; the root is depth 0 and a value
// of 0 yields the root node alone. Negative values mean unbounded.
func WithMaxDepth(depth int) Option {
	return func(o *options) {
		o.maxDepth = depth
	}
}

// WithExcludes adds literal segment names to the baseline exclusion set.
func WithExcludes(names []string) Option {
	return func(o *options) {
		if len(names) > 0 {
			o.extraExcludes = append(o.extraExcludes, names)
		}
	}
}

// WithPreset merges the named ecosystem preset into the exclusion set.
// Unknown names surface as an error from Preset lookup at call sites that
// validate first; here they are silently skipped.
func WithPreset(name string) Option {
	return func(o *options) {
		if patterns, ok := exclude.Preset(name); ok {
			o.extraExcludes = append(o.extraExcludes, patterns)
		}
	}
}

// WithGitignore toggles .gitignore loading; enabled by default.
func WithGitignore(enabled bool) Option {
	return func(o *options) {
		o.useGitignore = enabled
	}
}

// WithLogger sets the logger for the traversal.
func WithLogger(logger utils.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// ValidatePreset returns an error naming the known presets when name is not
// one of them. An empty name is valid and selects nothing.
func ValidatePreset(name string) error {
	if name == "" {
		return nil
	}
	if _, ok := exclude.Preset(name); !ok {
		return fmt.Errorf("structure: unknown preset '%s' (known: %v)", name, exclude.PresetNames())
	}
	return nil
}
