// Package quarkusio resolves the corpus of documentation guides maintained
// in the quarkus.io repository, across every product version and all three
// historical metadata layouts, into one lazy stream of guide records.
package quarkusio

import (
	"iter"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"

	ierrors "github.com/insectengine/search.quarkus.io/internal/errors"
	gitutil "github.com/insectengine/search.quarkus.io/internal/git"
	"github.com/insectengine/search.quarkus.io/internal/guide"
	"github.com/insectengine/search.quarkus.io/internal/logfields"
	"github.com/insectengine/search.quarkus.io/internal/metadata"
	"github.com/insectengine/search.quarkus.io/internal/metrics"
	"github.com/insectengine/search.quarkus.io/internal/workspace"
)

// QuarkusIO owns one checkout of the quarkus.io repository for the duration
// of an indexing run: the working copy on disk, the repository handle, and
// the pages-branch tree snapshot resolved once at construction. Close
// releases everything regardless of how far enumeration got.
type QuarkusIO struct {
	webURL         *url.URL
	dir            *workspace.CloseableDirectory
	repo           *gogit.Repository
	pagesTree      *object.Tree
	guidesMetadata map[GuidesDirectory]metadataFiller
	metrics        metrics.Recorder
}

// New builds a corpus resolver over an already materialized working copy.
// Ownership of dir transfers to the returned QuarkusIO. An empty pagesBranch
// selects the default pages branch; a fork publishing elsewhere (gh-pages)
// passes its own.
func New(webURI string, dir *workspace.CloseableDirectory, repo *gogit.Repository, pagesBranch string) (*QuarkusIO, error) {
	webURL, err := url.Parse(webURI)
	if err != nil {
		return nil, ierrors.Wrap(err, ierrors.CategoryConfig, ierrors.SeverityFatal, "invalid web URI").
			WithContext("uri", webURI)
	}

	if pagesBranch == "" {
		pagesBranch = PagesBranch
	}
	pagesTree, err := gitutil.FirstExistingTree(repo, "origin/"+pagesBranch, pagesBranch)
	if err != nil {
		return nil, ierrors.GitBranchError(pagesBranch, err)
	}

	return &QuarkusIO{
		webURL:         webURL,
		dir:            dir,
		repo:           repo,
		pagesTree:      pagesTree,
		guidesMetadata: map[GuidesDirectory]metadataFiller{},
		metrics:        metrics.NoopRecorder{},
	}, nil
}

// WithMetrics injects a metrics recorder. Returns q for chaining.
func (q *QuarkusIO) WithMetrics(r metrics.Recorder) *QuarkusIO {
	if r != nil {
		q.metrics = r
	}
	return q
}

// Close releases the working copy and drops the resolver cache. Safe to call
// after partial or abandoned enumeration; safe to call more than once.
func (q *QuarkusIO) Close() error {
	q.guidesMetadata = map[GuidesDirectory]metadataFiller{}
	q.pagesTree = nil
	q.repo = nil
	return q.dir.Close()
}

// Guides returns the full lazy guide stream: local guides first, then
// quarkiverse extension guides in current and legacy formats. The sequence
// is single-use and demand-driven; a fatal error is yielded with a nil guide
// and terminates the stream. The sequence itself holds no resources, so a
// consumer abandoning it early only has to Close the QuarkusIO.
func (q *QuarkusIO) Guides() iter.Seq2[*guide.Guide, error] {
	return func(yield func(*guide.Guide, error) bool) {
		if !q.localGuides(yield) {
			return
		}
		q.quarkiverseGuides(yield)
	}
}

// localGuides streams one guide per eligible document under every guide
// directory. Returns false when the consumer stopped or a fatal error was
// yielded.
func (q *QuarkusIO) localGuides(yield func(*guide.Guide, error) bool) bool {
	dirs, err := q.guideDirectories()
	if err != nil {
		yield(nil, err)
		return false
	}

	for _, dir := range dirs {
		entries, err := os.ReadDir(dir.Path)
		if err != nil {
			yield(nil, ierrors.EnumerationError(dir.Path, err))
			return false
		}
		for _, entry := range entries {
			if entry.IsDir() || !eligibleDocument(entry.Name()) {
				continue
			}
			g, err := q.parseGuide(dir, filepath.Join(dir.Path, entry.Name()))
			if err != nil {
				yield(nil, err)
				return false
			}
			q.metrics.IncGuide(g.Origin)
			if !yield(g, nil) {
				return false
			}
		}
	}
	return true
}

// parseGuide assembles one local guide record: version, origin and URL set
// directly, content bound (not read) into the pages tree, and metadata
// filled by the directory's memoized filler.
func (q *QuarkusIO) parseGuide(dir GuidesDirectory, docPath string) (*guide.Guide, error) {
	name := documentName(docPath)

	g := guide.New(dir.Version, guide.OriginQuarkus, q.httpURL(dir.Version, name))
	g.FullContentProvider = gitutil.NewInputProvider(q.pagesTree, HTMLPath(dir.Version, name))

	if err := q.metadataFor(dir)(docPath, g); err != nil {
		return nil, ierrors.Wrap(err, ierrors.CategoryFileSystem, ierrors.SeverityFatal, "failed to fill guide metadata").
			WithContext("document", docPath)
	}
	slog.Debug("Resolved guide",
		logfields.Guide(name),
		logfields.Version(dir.Version),
		logfields.Origin(g.Origin))
	return g, nil
}

// quarkiverseGuides streams extension guides from the current-format files
// first, then from the legacy flat files.
func (q *QuarkusIO) quarkiverseGuides(yield func(*guide.Guide, error) bool) bool {
	dirs, err := q.quarkiverseDirectories()
	if err != nil {
		yield(nil, err)
		return false
	}
	for _, dir := range dirs {
		guides, err := metadata.ParseQuarkiverse(dir.Path, dir.Version)
		if err != nil {
			yield(nil, ierrors.Wrap(err, ierrors.CategoryMetadata, ierrors.SeverityFatal, "failed to parse quarkiverse metadata").
				WithContext("path", dir.Path))
			return false
		}
		if !q.yieldAll(guides, yield) {
			return false
		}
	}

	legacy, err := q.quarkiverseLegacyDirectories()
	if err != nil {
		yield(nil, err)
		return false
	}
	for _, dir := range legacy {
		guides, err := metadata.ParseQuarkiverseLegacy(dir.Path, dir.Version)
		if err != nil {
			yield(nil, ierrors.Wrap(err, ierrors.CategoryMetadata, ierrors.SeverityFatal, "failed to parse legacy quarkiverse metadata").
				WithContext("path", dir.Path))
			return false
		}
		if !q.yieldAll(guides, yield) {
			return false
		}
	}
	return true
}

func (q *QuarkusIO) yieldAll(guides []*guide.Guide, yield func(*guide.Guide, error) bool) bool {
	for _, g := range guides {
		q.metrics.IncGuide(g.Origin)
		slog.Debug("Resolved guide",
			logfields.URL(g.URL),
			logfields.Version(g.Version),
			logfields.Origin(g.Origin))
		if !yield(g, nil) {
			return false
		}
	}
	return true
}

// httpURL resolves a guide's site-relative path against the public site base.
func (q *QuarkusIO) httpURL(version, name string) string {
	return q.webURL.ResolveReference(&url.URL{Path: httpPath(version, name)}).String()
}
