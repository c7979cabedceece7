package quarkusio

import (
	"path/filepath"
	"strings"

	"github.com/insectengine/search.quarkus.io/internal/config"
)

// PagesBranch is the default branch holding rendered, publishable HTML,
// shared with the configuration defaults so the name has a single definition.
const PagesBranch = config.DefaultPagesBranch

// Latest is the display version of the current, unversioned guide tree.
const Latest = "latest"

// httpPath is the site-relative location of a published guide.
func httpPath(version, name string) string {
	if version == Latest {
		return "guides/" + name
	}
	return "version/" + version + "/guides/" + name
}

// HTMLPath locates a guide's rendered output inside the pages branch tree.
func HTMLPath(version, name string) string {
	return httpPath(version, name) + ".html"
}

// AsciidocPath locates a guide's source document inside the source branch.
func AsciidocPath(version, name string) string {
	if version == Latest {
		return "_guides/" + name + ".adoc"
	}
	return "_versions/" + version + "/guides/" + name + ".adoc"
}

// YAMLMetadataPath locates the structured per-version guide index.
func YAMLMetadataPath(version string) string {
	return filepath.Join("_data", "versioned", versionToDashes(version), "index", "quarkus.yaml")
}

// YAMLQuarkiverseMetadataPath locates the per-version quarkiverse index.
func YAMLQuarkiverseMetadataPath(version string) string {
	return filepath.Join("_data", "versioned", versionToDashes(version), "index", "quarkiverse.yaml")
}

// Version strings use dots ("2.7") while metadata directory names use dashes
// ("2-7"). The two conversions are exact inverses for every version the
// enumerator produces.
func versionToDashes(version string) string {
	return strings.ReplaceAll(version, ".", "-")
}

func dashesToVersion(dashed string) string {
	return strings.ReplaceAll(dashed, "-", ".")
}
