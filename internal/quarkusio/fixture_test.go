package quarkusio

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/require"

	"github.com/insectengine/search.quarkus.io/internal/guide"
	"github.com/insectengine/search.quarkus.io/internal/workspace"
)

// newCorpus builds a QuarkusIO over a synthetic working copy (source, keyed
// by slash-relative path) and a repository whose single commit holds the
// pages content. Close is registered as test cleanup, so tests exercising
// Close themselves must tolerate the second call.
func newCorpus(t *testing.T, source, pages map[string]string) *QuarkusIO {
	t.Helper()
	return newCorpusOnBranch(t, source, pages, "")
}

// newCorpusOnBranch is newCorpus with the pages content committed on an
// explicit branch, which is also passed to New. Empty means the default.
func newCorpusOnBranch(t *testing.T, source, pages map[string]string, pagesBranch string) *QuarkusIO {
	t.Helper()

	workDir := t.TempDir()
	for rel, content := range source {
		full := filepath.Join(workDir, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o750))
		require.NoError(t, os.WriteFile(full, []byte(content), 0o600))
	}

	repoBranch := pagesBranch
	if repoBranch == "" {
		repoBranch = PagesBranch
	}
	repo := newPagesRepo(t, repoBranch, pages)

	dir, err := workspace.NewPersistent(workDir)
	require.NoError(t, err)

	q, err := New("https://quarkus.io/", dir, repo, pagesBranch)
	require.NoError(t, err)
	t.Cleanup(func() { _ = q.Close() })
	return q
}

// newPagesRepo builds a repository whose single commit on branch holds the
// pages content.
func newPagesRepo(t *testing.T, branch string, pages map[string]string) *gogit.Repository {
	t.Helper()

	repoDir := t.TempDir()
	repo, err := gogit.PlainInitWithOptions(repoDir, &gogit.PlainInitOptions{
		InitOptions: gogit.InitOptions{DefaultBranch: plumbing.NewBranchReferenceName(branch)},
	})
	require.NoError(t, err)
	wt, err := repo.Worktree()
	require.NoError(t, err)
	for rel, content := range pages {
		full := filepath.Join(repoDir, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o750))
		require.NoError(t, os.WriteFile(full, []byte(content), 0o600))
		_, err = wt.Add(rel)
		require.NoError(t, err)
	}
	_, err = wt.Commit("publish", &gogit.CommitOptions{
		AllowEmptyCommits: true,
		Author:            &object.Signature{Name: "test", Email: "test@example.com", When: time.Now()},
	})
	require.NoError(t, err)
	return repo
}

// collect drains the guide stream, failing the test on any yielded error.
func collect(t *testing.T, q *QuarkusIO) []*guide.Guide {
	t.Helper()
	var out []*guide.Guide
	for g, err := range q.Guides() {
		require.NoError(t, err)
		out = append(out, g)
	}
	return out
}

// byURL indexes collected guides by their (version, url) identity, asserting
// uniqueness along the way.
func byURL(t *testing.T, guides []*guide.Guide) map[[2]string]*guide.Guide {
	t.Helper()
	out := make(map[[2]string]*guide.Guide, len(guides))
	for _, g := range guides {
		key := [2]string{g.Version, g.URL}
		require.NotContains(t, out, key, "duplicate (version, url) pair")
		out[key] = g
	}
	return out
}
