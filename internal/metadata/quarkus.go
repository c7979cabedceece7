// Package metadata parses the pre-authored guide metadata files maintained in
// the quarkus.io repository: the per-version quarkus.yaml index for local
// guides and the quarkiverse extension-guide files in their current and
// legacy shapes.
package metadata

import (
	"fmt"
	"os"
	"path"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/insectengine/search.quarkus.io/internal/guide"
)

// indexFile mirrors the on-disk quarkus.yaml layout: guides grouped by
// display category.
type indexFile struct {
	Categories []struct {
		Category string       `yaml:"category"`
		Guides   []IndexEntry `yaml:"guides"`
	} `yaml:"categories"`
}

// IndexEntry is the structured metadata for one local guide.
type IndexEntry struct {
	Title      string     `yaml:"title"`
	URL        string     `yaml:"url"`
	Summary    string     `yaml:"summary"`
	Keywords   string     `yaml:"keywords"`
	Categories StringList `yaml:"categories"`
	Topics     StringList `yaml:"topics"`
	Extensions StringList `yaml:"extensions"`
}

// Index maps a guide's document name (url basename) to its metadata entry.
type Index struct {
	entries map[string]IndexEntry
}

// ParseIndex reads a per-version quarkus.yaml file. Both a missing file and
// malformed YAML return an error; the caller decides whether that is fatal
// (for local metadata it triggers the source-scanning fallback instead).
func ParseIndex(filePath string) (*Index, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read metadata file %s: %w", filePath, err)
	}

	var file indexFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse metadata file %s: %w", filePath, err)
	}

	index := &Index{entries: map[string]IndexEntry{}}
	for _, cat := range file.Categories {
		for _, entry := range cat.Guides {
			name := documentName(entry.URL)
			if name == "" {
				continue
			}
			index.entries[name] = entry
		}
	}
	return index, nil
}

// AddMetadata copies the fields for the named document onto the guide.
// An unknown document name degrades gracefully and leaves the fields blank.
func (i *Index) AddMetadata(name string, g *guide.Guide) {
	entry, ok := i.entries[name]
	if !ok {
		return
	}
	g.Title = entry.Title
	g.Summary = entry.Summary
	g.Keywords = entry.Keywords
	g.Categories = entry.Categories.ToSet()
	g.Topics = entry.Topics.ToSet()
	g.Extensions = entry.Extensions.ToSet()
}

// Len reports how many documents the index covers.
func (i *Index) Len() int { return len(i.entries) }

// documentName derives the lookup key from a guide URL: the basename of its
// path, extension stripped ("/guides/rest-json" and "rest-json.html" both
// map to "rest-json").
func documentName(url string) string {
	base := path.Base(strings.TrimSuffix(url, "/"))
	if base == "." || base == "/" {
		return ""
	}
	return strings.TrimSuffix(base, path.Ext(base))
}
