package git

import (
	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// FirstExistingTree resolves the tree snapshot of the first revision that
// exists in the repository. Callers pass remote-tracking candidates first
// (e.g. "origin/master", "master") so a fresh clone and a detached test
// fixture both resolve.
func FirstExistingTree(repo *gogit.Repository, revisions ...string) (*object.Tree, error) {
	var lastErr error
	for _, rev := range revisions {
		hash, err := repo.ResolveRevision(plumbing.Revision(rev))
		if err != nil {
			lastErr = err
			continue
		}
		commit, err := repo.CommitObject(*hash)
		if err != nil {
			lastErr = err
			continue
		}
		tree, err := commit.Tree()
		if err != nil {
			lastErr = err
			continue
		}
		return tree, nil
	}
	if lastErr == nil {
		lastErr = plumbing.ErrReferenceNotFound
	}
	return nil, &BranchNotFoundError{Revisions: revisions, Err: lastErr}
}
