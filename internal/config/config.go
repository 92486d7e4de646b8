package config

import (
	"flag"
	"os"
	"time"

	"github.com/mattn/go-isatty"
)

// Config holds all application configuration settings
type Config struct {
	// Source settings
	RepoURL   string
	RootDir   string
	Token     string
	ClonePath string

	// Traversal settings
	MaxDepth int
	Excludes string
	Preset   string
	NoIgnore bool

	// Output settings
	Format     string
	Pretty     bool
	OutputFile string

	// Logging settings
	Verbose     bool
	Quiet       bool
	LogLevel    string
	LogLevelSet bool
	NoColor     bool
	UseColors   bool
	ShowSkipped bool

	// Processing settings
	ShowProgress bool
	Timeout      time.Duration

	// Version info
	ShowVersion bool
	Version     string
}

// New creates a new Config with values from command-line flags
func New() *Config {
	c := &Config{
		Version: "1.0.0", // Update this when releasing new versions
	}

	// Parse command-line flags
	flag.StringVar(&c.RepoURL, "repo", "", "Remote repository URL to clone (e.g. 'https://github.com/org/repo.git')")
	flag.StringVar(&c.RootDir, "dir", "", "Local repository directory to scan (skips cloning)")
	flag.StringVar(&c.ClonePath, "clone-path", "", "Destination directory for the clone (defaults to the repository name)")
	flag.StringVar(&c.Token, "token", "", "Access token for private repositories (or set GITHUB_TOKEN)")
	flag.IntVar(&c.MaxDepth, "depth", -1, "Maximum traversal depth (0 = root only, -1 = unlimited)")
	flag.StringVar(&c.Excludes, "exclude", "", "Extra directory/file names to exclude (comma-separated)")
	flag.StringVar(&c.Preset, "preset", "", "Ecosystem exclusion preset (python, node, java, go)")
	flag.BoolVar(&c.NoIgnore, "no-gitignore", false, "Do not apply the repository's .gitignore rules")
	flag.StringVar(&c.Format, "format", "json", "Output format ('json' or 'text')")
	flag.BoolVar(&c.Pretty, "pretty", false, "Indent JSON output")
	flag.StringVar(&c.OutputFile, "output", "", "Output to file instead of stdout")
	flag.BoolVar(&c.Verbose, "verbose", false, "Enable verbose logging (DEBUG, WARN, ERROR)")
	flag.BoolVar(&c.Quiet, "quiet", false, "Suppress INFO messages (only show WARN, ERROR)")
	flag.StringVar(&c.LogLevel, "log-level", "INFO", "Set the logging level (DEBUG, INFO, WARN, ERROR)")
	flag.BoolVar(&c.NoColor, "no-color", false, "Disable color output")
	flag.BoolVar(&c.ShowProgress, "progress", false, "Show clone transfer progress")
	flag.DurationVar(&c.Timeout, "timeout", 0, "Maximum execution time (e.g., '30s', '5m')")
	flag.BoolVar(&c.ShowSkipped, "show-skipped", false, "Show a list of skipped files/directories and reasons at the end")
	flag.BoolVar(&c.ShowVersion, "version", false, "Show version information")

	flag.Parse()

	// Record whether -log-level was given explicitly; the default value
	// must not override -quiet/-verbose.
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "log-level" {
			c.LogLevelSet = true
		}
	})

	// Fall back to the environment for the token so it never has to appear
	// in shell history.
	if c.Token == "" {
		c.Token = os.Getenv("GITHUB_TOKEN")
	}

	// Determine if colors should be used
	c.UseColors = !c.NoColor && isatty.IsTerminal(os.Stderr.Fd()) && c.OutputFile == ""

	return c
}
