// Package setup provides initialization and configuration functions
package setup

import (
	"strings"

	"github.com/bethropolis/repo-structure/internal/structure"
	"github.com/bethropolis/repo-structure/internal/utils"
)

// InfoLogger wraps the Info method for status updates
type InfoLogger func(format string, args ...interface{})

// TraversalConfig holds all parameters needed to configure a traversal
type TraversalConfig struct {
	MaxDepth     int
	Excludes     string
	Preset       string
	UseGitignore bool
	Logger       utils.Logger
}

// ConfigureTraversal translates CLI-level settings into structure options
func ConfigureTraversal(cfg TraversalConfig, infoLog InfoLogger) ([]structure.Option, error) {
	if err := structure.ValidatePreset(cfg.Preset); err != nil {
		return nil, err
	}

	options := []structure.Option{
		structure.WithLogger(cfg.Logger),
		structure.WithMaxDepth(cfg.MaxDepth),
		structure.WithGitignore(cfg.UseGitignore),
	}

	// --- Parse extra exclusion names ---
	var extraExcludes []string
	if cfg.Excludes != "" {
		for _, name := range strings.Split(cfg.Excludes, ",") {
			if trimmed := strings.TrimSpace(name); trimmed != "" {
				extraExcludes = append(extraExcludes, trimmed)
			}
		}
	}
	if len(extraExcludes) > 0 {
		options = append(options, structure.WithExcludes(extraExcludes))
		infoLog("Using extra exclusions: %v", extraExcludes)
	}

	if cfg.Preset != "" {
		options = append(options, structure.WithPreset(cfg.Preset))
		infoLog("Using exclusion preset: %s", cfg.Preset)
	}

	if cfg.MaxDepth >= 0 {
		infoLog("Limiting traversal depth to %d.", cfg.MaxDepth)
	}
	if !cfg.UseGitignore {
		infoLog("Skipping .gitignore rules.")
	}

	return options, nil
}
