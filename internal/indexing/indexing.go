// Package indexing persists the resolved guide stream into a search index.
//
// The writer is the downstream consumer of the corpus resolver: it is the
// first place a guide's content provider is actually read, so deferred
// NotFound errors surface here rather than during enumeration.
package indexing

import (
	"context"
	"strings"

	"github.com/insectengine/search.quarkus.io/internal/guide"
	"github.com/insectengine/search.quarkus.io/internal/util/sets"
)

// Writer receives fully populated guides, one at a time.
type Writer interface {
	Write(ctx context.Context, g *guide.Guide) error
	Close() error
}

// joinSet renders a set as a deterministic comma-separated column value.
func joinSet(s sets.Set[string]) string {
	return strings.Join(sets.SortedStrings(s), ",")
}
