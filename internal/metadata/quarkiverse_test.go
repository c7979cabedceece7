package metadata

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/insectengine/search.quarkus.io/internal/guide"
	"github.com/insectengine/search.quarkus.io/internal/util/sets"
)

const quarkiverseCurrent = `messaging:
- title: AMQP 1.0 client
  url: https://docs.quarkiverse.io/quarkus-amqp/dev/index.html
  summary: Connect to AMQP brokers.
  keywords: amqp, messaging
data:
- title: Neo4j
  url: https://docs.quarkiverse.io/quarkus-neo4j/dev/index.html
`

func TestParseQuarkiverse_CurrentFormat(t *testing.T) {
	path := writeYAML(t, "quarkiverse.yaml", quarkiverseCurrent)

	guides, err := ParseQuarkiverse(path, "3.2")
	require.NoError(t, err)
	require.Len(t, guides, 2)

	sort.Slice(guides, func(i, j int) bool { return guides[i].URL < guides[j].URL })

	amqp := guides[0]
	assert.Equal(t, "3.2", amqp.Version)
	assert.Equal(t, guide.OriginQuarkiverse, amqp.Origin)
	assert.Equal(t, "https://docs.quarkiverse.io/quarkus-amqp/dev/index.html", amqp.URL)
	assert.Equal(t, "AMQP 1.0 client", amqp.Title)
	assert.Equal(t, "Connect to AMQP brokers.", amqp.Summary)
	assert.Equal(t, "amqp, messaging", amqp.Keywords)
	assert.Equal(t, sets.New("messaging"), amqp.Categories)
	assert.Nil(t, amqp.FullContentProvider)

	assert.Equal(t, sets.New("data"), guides[1].Categories)
}

const quarkiverseLegacy = `categories:
- category: Messaging
  guides:
  - title: AMQP 1.0 client
    url: https://quarkiverse.github.io/quarkiverse-docs/quarkus-amqp/dev/
    description: Connect to AMQP brokers.
    keywords: amqp
  - title: Writing JSON REST services
    url: /guides/rest-json
    description: A local guide that must not be duplicated here.
`

func TestParseQuarkiverseLegacy_KeepsOnlyExternalURLs(t *testing.T) {
	path := writeYAML(t, "guides-2-7.yaml", quarkiverseLegacy)

	guides, err := ParseQuarkiverseLegacy(path, "2.7")
	require.NoError(t, err)
	require.Len(t, guides, 1)

	g := guides[0]
	assert.Equal(t, "2.7", g.Version)
	assert.Equal(t, guide.OriginQuarkiverse, g.Origin)
	assert.Equal(t, "https://quarkiverse.github.io/quarkiverse-docs/quarkus-amqp/dev/", g.URL)
	assert.Equal(t, "Connect to AMQP brokers.", g.Summary)
	assert.Equal(t, sets.New("Messaging"), g.Categories)
}

func TestParseQuarkiverse_MalformedFails(t *testing.T) {
	path := writeYAML(t, "quarkiverse.yaml", "messaging: {not: [a, list")
	_, err := ParseQuarkiverse(path, "3.2")
	require.Error(t, err)
}
