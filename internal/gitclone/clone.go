// Package gitclone materializes a remote repository on local storage.
//
// Cloning, authentication and transfer progress all live here, strictly
// before any traversal runs; the tree builder itself never initiates
// network access.
package gitclone

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bethropolis/repo-structure/internal/utils"
	git "github.com/go-git/go-git/v5"
	githttp "github.com/go-git/go-git/v5/plumbing/transport/http"
)

// Options configures a clone operation.
type Options struct {
	// URL of the remote repository, e.g. "https://github.com/org/repo.git".
	URL string

	// Path is the local destination. When it already holds a .git
	// directory the checkout is reused and no network access happens.
	Path string

	// Token is an access token for private repositories. Requires an
	// https:// URL.
	Token string

	// Progress receives the server's sideband transfer messages; nil
	// disables progress reporting.
	Progress io.Writer

	Logger utils.Logger
}

// ErrMissingURL indicates no remote URL was provided.
var ErrMissingURL = errors.New("gitclone: repository URL is required")

// ErrTokenRequiresHTTPS indicates token auth was requested for a non-https
// remote, which cannot carry it.
var ErrTokenRequiresHTTPS = errors.New("gitclone: token-based clone requires an https:// URL")

// CloneIfNeeded ensures the repository is present at opts.Path, cloning it
// when necessary, and returns the absolute checkout path.
func CloneIfNeeded(ctx context.Context, opts Options) (string, error) {
	log := opts.Logger
	if log == nil {
		log = &utils.NoopLogger{}
	}

	if opts.URL == "" {
		return "", ErrMissingURL
	}
	if opts.Path == "" {
		return "", fmt.Errorf("gitclone: destination path is required for '%s'", opts.URL)
	}

	absPath, err := filepath.Abs(opts.Path)
	if err != nil {
		return "", fmt.Errorf("gitclone: invalid destination path '%s': %w", opts.Path, err)
	}

	if utils.IsDirectory(filepath.Join(absPath, git.GitDirName)) {
		log.Info("Repository already cloned at: %s", absPath)
		return absPath, nil
	}

	if opts.Token != "" && !strings.HasPrefix(opts.URL, "https://") {
		return "", ErrTokenRequiresHTTPS
	}

	existedBefore := utils.IsDirectory(absPath)

	cloneOptions := &git.CloneOptions{
		URL:      opts.URL,
		Progress: opts.Progress,
	}
	if opts.Token != "" {
		// GitHub accepts any non-empty username when a token is supplied.
		cloneOptions.Auth = &githttp.BasicAuth{Username: "git", Password: opts.Token}
	}

	log.Info("Cloning repository from %s into %s", opts.URL, absPath)
	if _, err := git.PlainCloneContext(ctx, absPath, false, cloneOptions); err != nil {
		// A failed clone can leave a partial checkout behind; remove it so
		// a retry does not mistake it for a finished one. Directories that
		// predate the clone are left alone.
		if !existedBefore {
			if removeErr := os.RemoveAll(absPath); removeErr != nil {
				log.Warn("gitclone: could not clean up partial clone at %s: %v", absPath, removeErr)
			}
		}
		return "", fmt.Errorf("gitclone: failed to clone '%s': %w", opts.URL, err)
	}

	log.Debug("gitclone: clone of %s complete", opts.URL)
	return absPath, nil
}
