// Package guide defines the documentation guide record produced by corpus
// enumeration and consumed by the search-index writer.
package guide

import (
	"io"

	"github.com/insectengine/search.quarkus.io/internal/util/sets"
)

// Guide origins. Local guides come from the quarkus.io repository itself;
// quarkiverse guides are metadata-only records pointing at externally hosted
// extension documentation.
const (
	OriginQuarkus     = "quarkus"
	OriginQuarkiverse = "quarkiverse"
)

// InputProvider is a lazily evaluated handle to a guide's rendered content.
// Binding one is cheap and performs no IO; Open defers existence checks and
// reads to the moment the consumer actually wants the bytes.
type InputProvider interface {
	Open() (io.ReadCloser, error)
}

// Guide is one documentation artifact instance. A guide is fully populated
// before it is yielded and never mutated afterwards. (Version, URL) uniquely
// identifies a guide within one enumeration.
type Guide struct {
	Version  string
	Origin   string
	URL      string
	Title    string
	Summary  string
	Keywords string

	Categories sets.Set[string]
	Topics     sets.Set[string]
	Extensions sets.Set[string]

	// FullContentProvider is nil for quarkiverse guides, whose content lives
	// on an external site and is not indexed.
	FullContentProvider InputProvider
}

// New returns a guide with empty (non-nil) set fields so that metadata
// fillers can assign without nil checks.
func New(version, origin, url string) *Guide {
	return &Guide{
		Version:    version,
		Origin:     origin,
		URL:        url,
		Categories: sets.Set[string]{},
		Topics:     sets.Set[string]{},
		Extensions: sets.Set[string]{},
	}
}
