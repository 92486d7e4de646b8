package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"strings"
	"time"

	"github.com/bethropolis/repo-structure/internal/config"
	"github.com/bethropolis/repo-structure/internal/gitclone"
	"github.com/bethropolis/repo-structure/internal/logger"
	"github.com/bethropolis/repo-structure/internal/printer"
	"github.com/bethropolis/repo-structure/internal/setup"
	"github.com/bethropolis/repo-structure/internal/structure"
	"github.com/bethropolis/repo-structure/internal/summary"
	"github.com/fatih/color"
)

// App encapsulates the main application functionality
type App struct {
	cfg    *config.Config
	log    *logger.Logger
	Output io.Writer
}

// New creates a new App instance
func New(cfg *config.Config) *App {
	// Configure color globally
	color.NoColor = !cfg.UseColors

	// Set up output destination
	var output io.Writer = os.Stdout
	if cfg.OutputFile != "" {
		file, err := os.Create(cfg.OutputFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: Failed to create output file: %v\n", err)
			os.Exit(1)
		}
		// Note: file will be closed by main function
		output = file
	}

	// Set up logger; an explicit -log-level overrides verbose/quiet flags
	log := logger.New(os.Stderr, cfg.Verbose, cfg.UseColors)
	log.WithLevel(logger.ResolveLevel(cfg.LogLevel, cfg.LogLevelSet, cfg.Verbose, cfg.Quiet))

	return &App{
		cfg:    cfg,
		log:    log,
		Output: output,
	}
}

// Run executes the main application logic
func (a *App) Run() {
	startTime := time.Now() // Start timer for overall execution

	// Show version and exit if requested
	if a.cfg.ShowVersion {
		fmt.Printf("repo-structure version %s\n", a.cfg.Version)
		os.Exit(0)
	}

	// Handle timeout if specified
	var ctx context.Context
	var cancel context.CancelFunc

	if a.cfg.Timeout > 0 {
		ctx, cancel = context.WithTimeout(context.Background(), a.cfg.Timeout)
		defer cancel()

		go func() {
			<-ctx.Done()
			if ctx.Err() == context.DeadlineExceeded {
				fmt.Fprintf(os.Stderr, "\nTimeout of %v reached. Exiting.\n", a.cfg.Timeout)
				os.Exit(1)
			}
		}()
	} else {
		ctx, cancel = context.WithCancel(context.Background())
		defer cancel()
	}

	// Helper for info messages, suppressed by quiet flag
	infoLog := func(format string, args ...interface{}) {
		if !a.cfg.Quiet {
			a.log.Info(format, args...)
		}
	}

	if a.log.IsDebug() {
		a.log.Debug("Verbose mode enabled")
		a.log.Debug("Color output: %v", a.cfg.UseColors)
		a.log.Debug("Repository: %s, Directory: %s", a.cfg.RepoURL, a.cfg.RootDir)
		a.log.Debug("Depth limit: %d", a.cfg.MaxDepth)
		a.log.Debug("Preset: %q, Extra excludes: %q", a.cfg.Preset, a.cfg.Excludes)
	}

	// --- Validate output format ---
	if !printer.ValidFormat(a.cfg.Format) {
		a.log.Error("Unknown output format '%s' (expected 'json' or 'text').", a.cfg.Format)
		os.Exit(1)
	}

	// --- Resolve the repository root ---
	rootDir := a.cfg.RootDir
	if a.cfg.RepoURL != "" {
		var err error
		rootDir, err = a.acquireRepository(ctx)
		if err != nil {
			a.log.Error("Failed to acquire repository: %v", err)
			os.Exit(1)
		}
	} else if rootDir == "" {
		rootDir = "."
	}

	// --- Configure the traversal ---
	traversalOptions, err := setup.ConfigureTraversal(setup.TraversalConfig{
		MaxDepth:     a.cfg.MaxDepth,
		Excludes:     a.cfg.Excludes,
		Preset:       a.cfg.Preset,
		UseGitignore: !a.cfg.NoIgnore,
		Logger:       a.log,
	}, infoLog)
	if err != nil {
		a.log.Error("Invalid traversal settings: %v", err)
		os.Exit(1)
	}

	// --- Build the tree ---
	infoLog("Scanning directory: %s", rootDir)
	node, skippedItems, err := structure.Get(rootDir, traversalOptions...)
	if err != nil {
		a.log.Error("Critical error while building tree: %v", err)
		os.Exit(1)
	}

	// --- Print the result ---
	p := printer.New().
		WithOutput(a.Output).
		WithFormat(printer.Format(a.cfg.Format)).
		WithPretty(a.cfg.Pretty).
		WithColors(a.cfg.UseColors && a.cfg.OutputFile == "")

	if err := p.Print(node); err != nil {
		a.log.Error("Failed to write output: %v", err)
		os.Exit(1)
	}

	// --- Show results summary ---
	duration := time.Since(startTime)
	summary.DisplayResults(a.log, summary.CountNodes(node), duration, a.cfg.Quiet)

	// --- Show Skipped Items (if requested) ---
	if a.cfg.ShowSkipped {
		summary.DisplaySkippedItems(a.log, skippedItems, os.Stderr, a.cfg.Quiet)
	}
}

// acquireRepository clones the configured remote (or reuses an existing
// checkout) and returns the local root directory.
func (a *App) acquireRepository(ctx context.Context) (string, error) {
	clonePath := a.cfg.ClonePath
	if clonePath == "" {
		clonePath = repositoryName(a.cfg.RepoURL)
	}

	var progress io.Writer
	if a.cfg.ShowProgress && !a.cfg.Quiet {
		progress = os.Stderr
	}

	return gitclone.CloneIfNeeded(ctx, gitclone.Options{
		URL:      a.cfg.RepoURL,
		Path:     clonePath,
		Token:    a.cfg.Token,
		Progress: progress,
		Logger:   a.log,
	})
}

// repositoryName derives a local directory name from a remote URL.
func repositoryName(url string) string {
	name := strings.TrimSuffix(path.Base(strings.TrimSuffix(url, "/")), ".git")
	if name == "" || name == "." || name == "/" {
		return "repository"
	}
	return name
}
