package newsapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/newscurator/pkg/domain"
)

const sampleResponse = `{
	"data": [
		{
			"title": "Quantum Leap In Computing Announced",
			"description": "Researchers hit a new <b>qubit</b> record.",
			"url": "https://example.com/quantum",
			"source": "example.com",
			"published_at": "2024-03-01T10:00:00Z"
		},
		{
			"title": "Markets Rally On Tech Earnings",
			"description": "Stocks climbed after strong results.",
			"url": "https://example.com/markets",
			"source": "example.com",
			"published_at": "2024-03-01T11:00:00Z"
		}
	]
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	client, err := New(Config{Endpoint: ts.URL, APIKey: "test-key"})
	require.NoError(t, err)
	return client
}

func TestClient_New(t *testing.T) {
	t.Run("requires api key", func(t *testing.T) {
		_, err := New(Config{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "api key")
	})

	t.Run("applies defaults", func(t *testing.T) {
		client, err := New(Config{APIKey: "k"})
		require.NoError(t, err)
		assert.Equal(t, "https://api.thenewsapi.com/v1/news", client.endpoint)
		assert.Equal(t, "en", client.language)
		assert.Equal(t, 10*time.Second, client.client.Timeout)
	})
}

func TestClient_SearchByKeywords(t *testing.T) {
	var gotQuery map[string]string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{}
		for k := range r.URL.Query() {
			gotQuery[k] = r.URL.Query().Get(k)
		}
		w.Write([]byte(sampleResponse))
	})

	articles, err := client.SearchByKeywords(context.Background(), []string{"science", "space"}, 5)
	require.NoError(t, err)
	require.Len(t, articles, 2)

	assert.Equal(t, "science | space", gotQuery["search"])
	assert.Equal(t, "keywords,title,description", gotQuery["search_fields"])
	assert.Equal(t, "relevance_score", gotQuery["sort"])
	assert.Equal(t, "test-key", gotQuery["api_token"])
	assert.Equal(t, "en", gotQuery["language"])
	assert.Equal(t, "5", gotQuery["limit"])
	assert.Equal(t, "entertainment,travel,politics,general,sports", gotQuery["exclude_categories"])

	// normalized article fields
	first := articles[0]
	assert.Equal(t, domain.ArticleID("https://example.com/quantum"), first.ID)
	assert.Equal(t, "Quantum Leap In Computing Announced", first.Title)
	assert.Equal(t, "Researchers hit a new qubit record.", first.Content, "html stripped from description")
	assert.Equal(t, []string{"quantum", "leap", "computing", "announced"}, first.Keywords)
}

func TestClient_SearchByCategory(t *testing.T) {
	var gotCategory string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotCategory = r.URL.Query().Get("categories")
		w.Write([]byte(sampleResponse))
	})

	articles, err := client.SearchByCategory(context.Background(), "science", 3)
	require.NoError(t, err)
	assert.Len(t, articles, 2)
	assert.Equal(t, "science", gotCategory)
}

func TestClient_FetchTrending(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.URL.Query().Get("search"))
		assert.Empty(t, r.URL.Query().Get("categories"))
		w.Write([]byte(sampleResponse))
	})

	articles, err := client.FetchTrending(context.Background(), 2)
	require.NoError(t, err)
	assert.Len(t, articles, 2)
}

func TestClient_FetchErrors(t *testing.T) {
	t.Run("non-200 status", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		})
		_, err := client.FetchTrending(context.Background(), 2)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "429")
	})

	t.Run("malformed body", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("not json"))
		})
		_, err := client.FetchTrending(context.Background(), 2)
		require.Error(t, err)
	})

	t.Run("unreachable server", func(t *testing.T) {
		client, err := New(Config{Endpoint: "http://127.0.0.1:1", APIKey: "k", Timeout: 100 * time.Millisecond})
		require.NoError(t, err)
		_, err = client.FetchTrending(context.Background(), 2)
		require.Error(t, err)
	})
}

func TestClient_TrustedDomains(t *testing.T) {
	sourcesFile := filepath.Join(t.TempDir(), "sources.json")
	content := `{"sources": [{"domain": "a.com"}, {"domain": "b.com"}, {"domain": "a.com"}, {"domain": ""}]}`
	require.NoError(t, os.WriteFile(sourcesFile, []byte(content), 0o600))

	var gotDomains string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotDomains = r.URL.Query().Get("domains")
		w.Write([]byte(`{"data": []}`))
	}))
	defer ts.Close()

	client, err := New(Config{Endpoint: ts.URL, APIKey: "k", SourcesFile: sourcesFile})
	require.NoError(t, err)

	_, err = client.FetchTrending(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "a.com,b.com", gotDomains, "deduplicated, empty domains dropped")
}

func TestClient_MissingSourcesFileTolerated(t *testing.T) {
	client, err := New(Config{APIKey: "k", SourcesFile: "/no/such/file.json"})
	require.NoError(t, err, "missing sources file only disables the domain filter")
	assert.Empty(t, client.domains)
}
