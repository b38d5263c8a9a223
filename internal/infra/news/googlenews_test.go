package news_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"blogsmith/internal/domain/entity"
	"blogsmith/internal/infra/news"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const googleNewsFeed = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>"quantum computing" - Google News</title>
    <link>https://news.google.com/search</link>
    <description>Google News</description>
    <item>
      <title>Quantum chip breakthrough - TechWire</title>
      <link>https://news.google.com/rss/articles/one</link>
      <pubDate>Mon, 24 Aug 2026 12:00:00 GMT</pubDate>
      <description><![CDATA[<a href="https://example.com/1">A new qubit design shows promise.</a>]]></description>
    </item>
    <item>
      <title></title>
      <link>https://news.google.com/rss/articles/untitled</link>
      <description><![CDATA[untitled entries are skipped]]></description>
    </item>
    <item>
      <title>Error correction milestone - Science Daily</title>
      <link>https://news.google.com/rss/articles/two</link>
      <description><![CDATA[<b>Logical qubits</b> demonstrated at scale.]]></description>
    </item>
    <item>
      <title>Fourth story - Wire Service</title>
      <link>https://news.google.com/rss/articles/three</link>
      <description><![CDATA[beyond the item cap]]></description>
    </item>
  </channel>
</rss>`

func testFeedConfig(baseURL string) news.Config {
	return news.Config{
		BaseURL:     baseURL,
		FeedBaseURL: baseURL,
		Language:    "en",
		MaxItems:    2,
		Timeout:     5 * time.Second,
	}
}

func TestGoogleNewsFetchNews_Success(t *testing.T) {
	var gotQuery map[string]string
	var gotUserAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{
			"q":    r.URL.Query().Get("q"),
			"hl":   r.URL.Query().Get("hl"),
			"gl":   r.URL.Query().Get("gl"),
			"ceid": r.URL.Query().Get("ceid"),
		}
		gotUserAgent = r.Header.Get("User-Agent")

		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = w.Write([]byte(googleNewsFeed))
	}))
	t.Cleanup(server.Close)

	client := news.NewGoogleNewsClient(testFeedConfig(server.URL), server.Client())

	items, err := client.FetchNews(context.Background(), "quantum computing")

	require.NoError(t, err)
	require.Len(t, items, 2, "cap at MaxItems after skipping untitled entries")
	assert.Equal(t, "Quantum chip breakthrough - TechWire", items[0].Title)
	assert.Equal(t, "A new qubit design shows promise.", items[0].Summary,
		"HTML markup is stripped from descriptions")
	assert.Equal(t, "Error correction milestone - Science Daily", items[1].Title)
	assert.Equal(t, "Logical qubits demonstrated at scale.", items[1].Summary)

	assert.Equal(t, "quantum computing", gotQuery["q"])
	assert.Equal(t, "en-US", gotQuery["hl"])
	assert.Equal(t, "US", gotQuery["gl"])
	assert.Equal(t, "US:en", gotQuery["ceid"])
	assert.Equal(t, "blogsmith/1.0 (news fetcher)", gotUserAgent)
}

func TestGoogleNewsFetchNews_EmptyFeed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<?xml version="1.0"?><rss version="2.0"><channel><title>empty</title></channel></rss>`))
	}))
	t.Cleanup(server.Close)

	client := news.NewGoogleNewsClient(testFeedConfig(server.URL), server.Client())

	items, err := client.FetchNews(context.Background(), "extremely obscure topic")

	require.NoError(t, err, "an empty feed is a valid outcome")
	assert.Empty(t, items)
}

func TestGoogleNewsFetchNews_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	t.Cleanup(server.Close)

	client := news.NewGoogleNewsClient(testFeedConfig(server.URL), server.Client())

	_, err := client.FetchNews(context.Background(), "anything")

	var upstreamErr *entity.UpstreamError
	require.ErrorAs(t, err, &upstreamErr)
	assert.Equal(t, "google-news", upstreamErr.Provider)
	assert.Equal(t, http.StatusNotFound, upstreamErr.StatusCode)
}

func TestGoogleNewsFetchNews_MalformedFeed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("this is not a feed"))
	}))
	t.Cleanup(server.Close)

	client := news.NewGoogleNewsClient(testFeedConfig(server.URL), server.Client())

	_, err := client.FetchNews(context.Background(), "anything")

	var upstreamErr *entity.UpstreamError
	require.ErrorAs(t, err, &upstreamErr)
	assert.Equal(t, "google-news", upstreamErr.Provider)
	assert.Zero(t, upstreamErr.StatusCode, "parse failures carry no HTTP status")
}
