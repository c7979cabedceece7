package metadata

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/insectengine/search.quarkus.io/internal/guide"
	"github.com/insectengine/search.quarkus.io/internal/util/sets"
)

// quarkiverseEntry is one externally hosted extension guide in the current
// quarkiverse.yaml shape, grouped under a category key.
type quarkiverseEntry struct {
	Title    string `yaml:"title"`
	URL      string `yaml:"url"`
	Summary  string `yaml:"summary"`
	Keywords string `yaml:"keywords"`
}

// legacyFile is the flat guides-<version>.yaml shape used before versioned
// metadata directories existed. It mixes local and quarkiverse guides.
type legacyFile struct {
	Categories []struct {
		Category string `yaml:"category"`
		Guides   []struct {
			Title       string `yaml:"title"`
			URL         string `yaml:"url"`
			Description string `yaml:"description"`
			Keywords    string `yaml:"keywords"`
		} `yaml:"guides"`
	} `yaml:"categories"`
}

// ParseQuarkiverse reads a current-format quarkiverse.yaml file and returns
// one metadata-only guide per entry, tagged with the given version.
func ParseQuarkiverse(filePath, version string) ([]*guide.Guide, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read quarkiverse metadata %s: %w", filePath, err)
	}

	var byCategory map[string][]quarkiverseEntry
	if err := yaml.Unmarshal(data, &byCategory); err != nil {
		return nil, fmt.Errorf("failed to parse quarkiverse metadata %s: %w", filePath, err)
	}

	var guides []*guide.Guide
	for category, entries := range byCategory {
		for _, entry := range entries {
			if entry.URL == "" {
				continue
			}
			g := guide.New(version, guide.OriginQuarkiverse, entry.URL)
			g.Title = entry.Title
			g.Summary = entry.Summary
			g.Keywords = entry.Keywords
			g.Categories = sets.New(category)
			guides = append(guides, g)
		}
	}
	return guides, nil
}

// ParseQuarkiverseLegacy reads a legacy guides-<version>.yaml file. Only
// entries with an absolute URL become guides: those point at the external
// quarkiverse site, while relative URLs describe local guides that directory
// enumeration already produces (emitting them twice would duplicate a
// (version, url) pair).
func ParseQuarkiverseLegacy(filePath, version string) ([]*guide.Guide, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read legacy quarkiverse metadata %s: %w", filePath, err)
	}

	var file legacyFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse legacy quarkiverse metadata %s: %w", filePath, err)
	}

	var guides []*guide.Guide
	for _, cat := range file.Categories {
		for _, entry := range cat.Guides {
			if !isExternalURL(entry.URL) {
				continue
			}
			g := guide.New(version, guide.OriginQuarkiverse, entry.URL)
			g.Title = entry.Title
			g.Summary = entry.Description
			g.Keywords = entry.Keywords
			if cat.Category != "" {
				g.Categories = sets.New(cat.Category)
			}
			guides = append(guides, g)
		}
	}
	return guides, nil
}

func isExternalURL(url string) bool {
	return strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://")
}
