package quarkusio

import (
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/insectengine/search.quarkus.io/internal/asciidoc"
	"github.com/insectengine/search.quarkus.io/internal/guide"
	"github.com/insectengine/search.quarkus.io/internal/logfields"
	"github.com/insectengine/search.quarkus.io/internal/metadata"
	"github.com/insectengine/search.quarkus.io/internal/util/sets"
)

// metadataFiller populates a guide's metadata fields from its document,
// located at the given source path.
type metadataFiller func(docPath string, g *guide.Guide) error

// metadataFor decides, once per directory, how metadata is filled for every
// document in it, and caches that decision. The structured per-version index
// is attempted first; any failure (absent file, malformed YAML) selects the
// source-scanning fallback permanently for that directory. The cache is
// populated and read by the single enumeration pass, so it needs no lock.
func (q *QuarkusIO) metadataFor(dir GuidesDirectory) metadataFiller {
	if filler, ok := q.guidesMetadata[dir]; ok {
		return filler
	}

	var filler metadataFiller
	indexPath := filepath.Join(q.dir.Path(), YAMLMetadataPath(dir.Version))
	index, err := metadata.ParseIndex(indexPath)
	if err != nil {
		// Not all versions (e.g. 2.7) have a quarkus.yaml index. For those
		// every field comes from scanning the document source.
		slog.Debug("Structured metadata unavailable, scanning document sources",
			logfields.Version(dir.Version), logfields.Error(err))
		q.metrics.IncMetadataFallback(dir.Version)
		filler = scanDocumentSource
	} else {
		filler = func(docPath string, g *guide.Guide) error {
			index.AddMetadata(documentName(docPath), g)
			return nil
		}
	}

	q.guidesMetadata[dir] = filler
	return filler
}

// scanDocumentSource fills metadata from the document's own header: the
// title line plus the summary/keywords/categories/topics/extensions
// attributes when present.
func scanDocumentSource(docPath string, g *guide.Guide) error {
	return asciidoc.Parse(docPath,
		func(title string) { g.Title = title },
		map[string]func(string){
			"summary":    func(v string) { g.Summary = v },
			"keywords":   func(v string) { g.Keywords = v },
			"categories": func(v string) { g.Categories = sets.FromCommaList(v) },
			"topics":     func(v string) { g.Topics = sets.FromCommaList(v) },
			"extensions": func(v string) { g.Extensions = sets.FromCommaList(v) },
		})
}

// documentName strips the directory and extension from a document path.
func documentName(docPath string) string {
	base := filepath.Base(docPath)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
