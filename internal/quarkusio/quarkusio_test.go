package quarkusio

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gitutil "github.com/insectengine/search.quarkus.io/internal/git"
	"github.com/insectengine/search.quarkus.io/internal/guide"
	"github.com/insectengine/search.quarkus.io/internal/metrics"
	"github.com/insectengine/search.quarkus.io/internal/util/sets"
	"github.com/insectengine/search.quarkus.io/internal/workspace"
)

const fooGuide = `= Getting started
:summary: Scanned summary that structured metadata must override.

Body.
`

const barGuide = `= Legacy guide
:summary: Create your first application.
:categories: getting-started, core
:keywords: maven

Body.
`

const latestIndex = `categories:
- category: Web
  guides:
  - title: Getting started with Quarkus
    url: /guides/foo
    summary: Learn the basics.
    keywords: basics
    categories: getting-started
    topics: onboarding
    extensions: io.quarkus:quarkus-core
`

func TestGuideDirectories_OnePerVersionPlusLatest(t *testing.T) {
	q := newCorpus(t, map[string]string{
		"_guides/foo.adoc":              fooGuide,
		"_versions/2.7/guides/bar.adoc": barGuide,
		"_versions/3.2/guides/baz.adoc": barGuide,
	}, nil)

	dirs, err := q.guideDirectories()
	require.NoError(t, err)

	versions := make([]string, 0, len(dirs))
	for _, d := range dirs {
		versions = append(versions, d.Version)
	}
	assert.ElementsMatch(t, []string{Latest, "2.7", "3.2"}, versions)
}

func TestGuideDirectories_MissingVersionsRootIsFatal(t *testing.T) {
	q := newCorpus(t, map[string]string{"_guides/foo.adoc": fooGuide}, nil)

	_, err := q.guideDirectories()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "_versions")
}

func TestLocalGuides_URLAndContentBinding(t *testing.T) {
	q := newCorpus(t, map[string]string{
		"_guides/foo.adoc":              fooGuide,
		"_versions/2.7/guides/bar.adoc": barGuide,
	}, map[string]string{
		"guides/foo.html":             "<html>foo</html>",
		"version/2.7/guides/bar.html": "<html>bar</html>",
	})

	guides := byURL(t, collect(t, q))

	foo := guides[[2]string{Latest, "https://quarkus.io/guides/foo"}]
	require.NotNil(t, foo, "latest guide URL must have no version segment")
	bar := guides[[2]string{"2.7", "https://quarkus.io/version/2.7/guides/bar"}]
	require.NotNil(t, bar, "versioned guide URL must carry the version verbatim")

	for expected, provider := range map[string]guide.InputProvider{
		"<html>foo</html>": foo.FullContentProvider,
		"<html>bar</html>": bar.FullContentProvider,
	} {
		rc, err := provider.Open()
		require.NoError(t, err)
		content, err := io.ReadAll(rc)
		require.NoError(t, err)
		require.NoError(t, rc.Close())
		assert.Equal(t, expected, string(content))
	}
}

func TestLocalGuides_FilenameFiltering(t *testing.T) {
	q := newCorpus(t, map[string]string{
		"_guides/foo.adoc":         fooGuide,
		"_guides/_attributes.adoc": "ignored",
		"_guides/README.adoc":      "ignored",
		"_guides/notes.md":         "ignored",
		"_versions/.keep":          "",
	}, nil)

	guides := collect(t, q)
	require.Len(t, guides, 1)
	assert.Equal(t, "https://quarkus.io/guides/foo", guides[0].URL)
}

func TestStructuredMetadataPreferred(t *testing.T) {
	q := newCorpus(t, map[string]string{
		"_guides/foo.adoc": fooGuide,
		"_data/versioned/latest/index/quarkus.yaml": latestIndex,
		"_versions/.keep": "",
	}, nil)

	guides := collect(t, q)
	require.Len(t, guides, 1)

	foo := guides[0]
	assert.Equal(t, "Getting started with Quarkus", foo.Title)
	assert.Equal(t, "Learn the basics.", foo.Summary)
	assert.Equal(t, "basics", foo.Keywords)
	assert.Equal(t, sets.New("getting-started"), foo.Categories)
	assert.Equal(t, sets.New("onboarding"), foo.Topics)
	assert.Equal(t, sets.New("io.quarkus:quarkus-core"), foo.Extensions)
}

func TestStructuredMetadata_UnknownDocumentDegradesGracefully(t *testing.T) {
	q := newCorpus(t, map[string]string{
		"_guides/foo.adoc":   fooGuide,
		"_guides/other.adoc": "= Other\n",
		"_data/versioned/latest/index/quarkus.yaml": latestIndex,
		"_versions/.keep": "",
	}, nil)

	guides := byURL(t, collect(t, q))

	other := guides[[2]string{Latest, "https://quarkus.io/guides/other"}]
	require.NotNil(t, other)
	assert.Empty(t, other.Title)
	assert.Empty(t, other.Summary)
}

func TestFallbackScanning_FillsFromDocumentSource(t *testing.T) {
	q := newCorpus(t, map[string]string{
		"_versions/2.7/guides/bar.adoc": barGuide,
		"_guides/.keep":                 "",
	}, nil)

	guides := collect(t, q)
	require.Len(t, guides, 1)

	bar := guides[0]
	assert.Equal(t, "Legacy guide", bar.Title)
	assert.Equal(t, "Create your first application.", bar.Summary)
	assert.Equal(t, "maven", bar.Keywords)
	assert.Equal(t, sets.New("getting-started", "core"), bar.Categories)
	assert.Empty(t, bar.Topics)
}

// fallbackCounter counts structured-parse fallback decisions.
type fallbackCounter struct {
	metrics.NoopRecorder
	fallbacks int
}

func (c *fallbackCounter) IncMetadataFallback(string) { c.fallbacks++ }

func TestResolver_MemoizesPerDirectory(t *testing.T) {
	q := newCorpus(t, map[string]string{
		// Malformed index: the structured parse attempt must happen at most
		// once for the directory, then every document uses the fallback.
		"_data/versioned/latest/index/quarkus.yaml": "categories: [broken",
		"_guides/a.adoc": "= A\n:summary: From source A.\n",
		"_guides/b.adoc": "= B\n:summary: From source B.\n",
		"_guides/c.adoc": "= C\n:summary: From source C.\n",
		"_versions/.keep": "",
	}, nil)

	counter := &fallbackCounter{}
	q.WithMetrics(counter)

	guides := collect(t, q)
	require.Len(t, guides, 3)
	for _, g := range guides {
		assert.NotEmpty(t, g.Summary, "every document must be filled via the fallback scanner")
	}
	assert.Equal(t, 1, counter.fallbacks, "structured parse attempted more than once per directory")
}

func TestQuarkiverseGuides_CurrentAndLegacy(t *testing.T) {
	q := newCorpus(t, map[string]string{
		"_guides/.keep":   "",
		"_versions/.keep": "",
		"_data/versioned/3-2/index/quarkiverse.yaml": `messaging:
- title: AMQP 1.0 client
  url: https://docs.quarkiverse.io/quarkus-amqp/dev/index.html
  summary: Connect to AMQP brokers.
`,
		// This versioned directory has no quarkiverse.yaml and must be skipped.
		"_data/versioned/3-8/index/quarkus.yaml": "categories: []",
		"_data/guides-2-7.yaml": `categories:
- category: Messaging
  guides:
  - title: AMQP legacy
    url: https://quarkiverse.github.io/quarkiverse-docs/quarkus-amqp/dev/
    description: Legacy entry.
  - title: Local guide
    url: /guides/rest-json
`,
	}, nil)

	guides := byURL(t, collect(t, q))
	require.Len(t, guides, 2)

	current := guides[[2]string{"3.2", "https://docs.quarkiverse.io/quarkus-amqp/dev/index.html"}]
	require.NotNil(t, current)
	assert.Equal(t, guide.OriginQuarkiverse, current.Origin)
	assert.Equal(t, sets.New("messaging"), current.Categories)

	legacy := guides[[2]string{"2.7", "https://quarkiverse.github.io/quarkiverse-docs/quarkus-amqp/dev/"}]
	require.NotNil(t, legacy)
	assert.Equal(t, "Legacy entry.", legacy.Summary)
}

func TestEndToEnd_StructuredAndFallbackVersions(t *testing.T) {
	q := newCorpus(t, map[string]string{
		"_guides/foo.adoc": fooGuide,
		"_data/versioned/latest/index/quarkus.yaml": latestIndex,
		"_versions/2.7/guides/bar.adoc":             barGuide,
	}, map[string]string{
		"guides/foo.html":             "<html>foo</html>",
		"version/2.7/guides/bar.html": "<html>bar</html>",
	})

	guides := byURL(t, collect(t, q))
	require.Len(t, guides, 2)

	foo := guides[[2]string{Latest, "https://quarkus.io/guides/foo"}]
	require.NotNil(t, foo)
	assert.Equal(t, guide.OriginQuarkus, foo.Origin)
	assert.Equal(t, "Getting started with Quarkus", foo.Title, "metadata must come from the structured file")

	bar := guides[[2]string{"2.7", "https://quarkus.io/version/2.7/guides/bar"}]
	require.NotNil(t, bar)
	assert.Equal(t, "Legacy guide", bar.Title, "metadata must come from source scanning")
	assert.Equal(t, "Create your first application.", bar.Summary)

	// Providers are bound but unread; content flows only on demand.
	for _, g := range []*guide.Guide{foo, bar} {
		require.NotNil(t, g.FullContentProvider)
		rc, err := g.FullContentProvider.Open()
		require.NoError(t, err)
		require.NoError(t, rc.Close())
	}
}

func TestGuides_ContentBindingDoesNotRequirePublishedFile(t *testing.T) {
	// No pages content at all: enumeration must still succeed, with the
	// missing path surfacing only if a consumer opens the provider.
	q := newCorpus(t, map[string]string{
		"_guides/foo.adoc": fooGuide,
		"_versions/.keep":  "",
	}, nil)

	guides := collect(t, q)
	require.Len(t, guides, 1)

	_, err := guides[0].FullContentProvider.Open()
	require.Error(t, err)
	var nf *gitutil.NotFoundError
	require.ErrorAs(t, err, &nf)
}

func TestGuides_AbandonedConsumptionThenClose(t *testing.T) {
	q := newCorpus(t, map[string]string{
		"_guides/a.adoc":  "= A\n",
		"_guides/b.adoc":  "= B\n",
		"_versions/.keep": "",
	}, nil)

	for g, err := range q.Guides() {
		require.NoError(t, err)
		require.NotNil(t, g)
		break // abandon after the first element
	}

	require.NoError(t, q.Close())
	require.NoError(t, q.Close(), "Close must be idempotent")
}

func TestNew_ResolvesConfiguredPagesBranch(t *testing.T) {
	q := newCorpusOnBranch(t, map[string]string{
		"_guides/foo.adoc": fooGuide,
		"_versions/.keep":  "",
	}, map[string]string{
		"guides/foo.html": "<html>foo</html>",
	}, "gh-pages")

	guides := collect(t, q)
	require.Len(t, guides, 1)

	rc, err := guides[0].FullContentProvider.Open()
	require.NoError(t, err)
	defer rc.Close()
	content, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "<html>foo</html>", string(content))
}

func TestNew_DefaultPagesBranchAbsentFails(t *testing.T) {
	repo := newPagesRepo(t, "gh-pages", map[string]string{"guides/foo.html": "x"})
	dir, err := workspace.NewPersistent(t.TempDir())
	require.NoError(t, err)
	defer func() { _ = dir.Close() }()

	_, err = New("https://quarkus.io/", dir, repo, "")
	require.Error(t, err)
}
