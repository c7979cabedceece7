package git

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"github.com/insectengine/search.quarkus.io/internal/config"
	"github.com/insectengine/search.quarkus.io/internal/logfields"
)

// Client handles Git operations against the quarkus.io repository.
type Client struct {
	cfg config.GitConfig
}

// NewClient creates a new Git client for the configured repository.
func NewClient(cfg config.GitConfig) *Client {
	return &Client{cfg: cfg}
}

// CloneOrOpen materializes the repository working copy at dir. An existing
// checkout (persistent clone_dir across runs) is opened and fetched; anything
// else is cloned fresh with the source branch checked out.
func (c *Client) CloneOrOpen(dir string) (*gogit.Repository, error) {
	if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
		slog.Debug("Opening existing repository", logfields.Path(dir))
		return c.openAndFetch(dir)
	}

	slog.Debug("Cloning repository", logfields.URL(c.cfg.URL), logfields.Branch(c.cfg.SourceBranch), logfields.Path(dir))

	cloneOptions := &gogit.CloneOptions{
		URL: c.cfg.URL,
		// The pages branch tree is resolved from origin/<branch>, so all
		// remote branches must be fetched, not just the checked-out one.
		SingleBranch:  false,
		ReferenceName: plumbing.NewBranchReferenceName(c.cfg.SourceBranch),
	}

	auth, err := c.getAuthentication(c.cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to setup authentication: %w", err)
	}
	cloneOptions.Auth = auth

	repository, err := gogit.PlainClone(dir, false, cloneOptions)
	if err != nil {
		return nil, classifyCloneError(c.cfg.URL, err)
	}

	if ref, err := repository.Head(); err == nil {
		slog.Info("Repository cloned",
			logfields.URL(c.cfg.URL),
			slog.String("commit", ref.Hash().String()[:8]),
			logfields.Path(dir))
	} else {
		slog.Info("Repository cloned", logfields.URL(c.cfg.URL), logfields.Path(dir))
	}

	return repository, nil
}

// openAndFetch opens an existing working copy and refreshes its remote refs.
func (c *Client) openAndFetch(dir string) (*gogit.Repository, error) {
	repository, err := gogit.PlainOpen(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to open repository: %w", err)
	}

	auth, err := c.getAuthentication(c.cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to setup authentication: %w", err)
	}

	err = repository.Fetch(&gogit.FetchOptions{RemoteName: "origin", Auth: auth})
	if err != nil && err != gogit.NoErrAlreadyUpToDate {
		return nil, classifyFetchError(c.cfg.URL, err)
	}
	if err == gogit.NoErrAlreadyUpToDate {
		slog.Info("Repository already up to date", logfields.Path(dir))
	} else {
		slog.Info("Repository fetched", logfields.Path(dir))
	}

	return repository, nil
}
