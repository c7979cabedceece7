package quarkusio

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	ierrors "github.com/insectengine/search.quarkus.io/internal/errors"
	"github.com/insectengine/search.quarkus.io/internal/logfields"
)

// GuidesDirectory pairs a logical version with the on-disk location holding
// its guide documents or its extension-metadata file. It is comparable and
// serves as the memoization key for metadata resolution.
type GuidesDirectory struct {
	Version string
	Path    string
}

// guideDirectories lists every location holding local guide documents: the
// current tree under _guides plus one per versioned subtree. Only the
// versions root itself is listed here; per-directory IO is deferred to the
// assembler.
func (q *QuarkusIO) guideDirectories() ([]GuidesDirectory, error) {
	dirs := []GuidesDirectory{{Version: Latest, Path: filepath.Join(q.dir.Path(), "_guides")}}

	versionsRoot := filepath.Join(q.dir.Path(), "_versions")
	entries, err := os.ReadDir(versionsRoot)
	if err != nil {
		return nil, ierrors.EnumerationError(versionsRoot, err)
	}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		version := entry.Name()
		dirs = append(dirs, GuidesDirectory{
			Version: version,
			Path:    filepath.Join(versionsRoot, version, "guides"),
		})
	}
	return dirs, nil
}

// quarkiverseDirectories lists the current-format quarkiverse metadata files,
// one per version directory that actually contains one. Versions without the
// file are silently skipped; so is a repository state predating versioned
// metadata directories entirely.
func (q *QuarkusIO) quarkiverseDirectories() ([]GuidesDirectory, error) {
	versionedRoot := filepath.Join(q.dir.Path(), "_data", "versioned")
	entries, err := os.ReadDir(versionedRoot)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, ierrors.EnumerationError(versionedRoot, err)
	}

	var dirs []GuidesDirectory
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		path := filepath.Join(versionedRoot, entry.Name(), "index", "quarkiverse.yaml")
		if _, err := os.Stat(path); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, ierrors.EnumerationError(path, err)
		}
		dirs = append(dirs, GuidesDirectory{Version: dashesToVersion(entry.Name()), Path: path})
	}
	return dirs, nil
}

// quarkiverseLegacyDirectories lists the flat guides-<version>.yaml files
// that predate versioned metadata directories. The version is reconstructed
// from the filename; a name matching the pattern but yielding no version is
// skipped rather than failing the run.
func (q *QuarkusIO) quarkiverseLegacyDirectories() ([]GuidesDirectory, error) {
	dataRoot := filepath.Join(q.dir.Path(), "_data")
	entries, err := os.ReadDir(dataRoot)
	if err != nil {
		return nil, ierrors.EnumerationError(dataRoot, err)
	}

	var dirs []GuidesDirectory
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, "guides-") || filepath.Ext(name) != ".yaml" {
			continue
		}
		dashed := strings.TrimSuffix(strings.TrimPrefix(name, "guides-"), ".yaml")
		if dashed == "" {
			slog.Warn("Skipping legacy metadata file with unparsable version", logfields.Path(name))
			continue
		}
		dirs = append(dirs, GuidesDirectory{
			Version: dashesToVersion(dashed),
			Path:    filepath.Join(dataRoot, name),
		})
	}
	return dirs, nil
}

// eligibleDocument applies the filename predicates shared by every layout
// generation: hidden files (leading underscore), README files, and anything
// that is not an AsciiDoc document are excluded at enumeration time.
func eligibleDocument(filename string) bool {
	if strings.HasPrefix(filename, "_") {
		return false
	}
	if filepath.Ext(filename) != ".adoc" {
		return false
	}
	return strings.TrimSuffix(filename, filepath.Ext(filename)) != "README"
}
