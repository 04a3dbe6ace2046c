package fetcher_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"election_dashboard/internal/fetcher"
	"election_dashboard/internal/models"

	"github.com/stretchr/testify/require"
)

func newFeedServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestFetchNews(t *testing.T) {
	testCases := []struct {
		name     string
		xml      string
		expected []models.NewsItem
	}{
		{
			name: "valid rss",
			xml: `<?xml version="1.0" encoding="UTF-8"?>
			<rss version="2.0">
				<channel>
					<title>Election Feed</title>
					<item>
						<title>Exit poll published</title>
						<description>Labour on course for a majority</description>
						<pubDate>Thu, 04 Jul 2024 22:00:00 +0100</pubDate>
						<link>http://example.com/exit-poll</link>
					</item>
				</channel>
			</rss>`,
			expected: []models.NewsItem{
				{
					Title:       "Exit poll published",
					Link:        "http://example.com/exit-poll",
					PubDate:     "Thu, 04 Jul 2024 22:00:00 +0100",
					Description: "Labour on course for a majority",
					Summary:     "Labour on course for a majority",
				},
			},
		},
		{
			name: "missing fields use defaults",
			xml: `<rss version="2.0"><channel>
					<item><link>http://example.com/1</link></item>
					<item><title>Only title</title></item>
				</channel></rss>`,
			expected: []models.NewsItem{
				{
					Title:       models.DefaultTitle,
					Link:        "http://example.com/1",
					PubDate:     models.DefaultPubDate,
					Description: models.DefaultDescription,
					Summary:     models.DefaultDescription,
				},
				{
					Title:       "Only title",
					Link:        models.DefaultLink,
					PubDate:     models.DefaultPubDate,
					Description: models.DefaultDescription,
					Summary:     models.DefaultDescription,
				},
			},
		},
		{
			name: "empty element is kept empty",
			xml:  `<rss><channel><item><title></title><description/></item></channel></rss>`,
			expected: []models.NewsItem{
				{
					Title:       "",
					Link:        models.DefaultLink,
					PubDate:     models.DefaultPubDate,
					Description: "",
					Summary:     "",
				},
			},
		},
		{
			name: "html description is summarized",
			xml: `<rss><channel><item>
					<title>Count update</title>
					<description><![CDATA[<p>Turnout is <b>high</b> in Sunderland.</p><img src="x.png"/>]]></description>
				</item></channel></rss>`,
			expected: []models.NewsItem{
				{
					Title:       "Count update",
					Link:        models.DefaultLink,
					PubDate:     models.DefaultPubDate,
					Description: `<p>Turnout is <b>high</b> in Sunderland.</p><img src="x.png"/>`,
					Summary:     "Turnout is high in Sunderland.",
				},
			},
		},
		{
			name: "namespaced extensions do not override item fields",
			xml: `<rss version="2.0" xmlns:media="http://search.yahoo.com/mrss/" xmlns:dc="http://purl.org/dc/elements/1.1/">
				<channel><item>
					<title>Real headline</title>
					<media:title>Thumbnail caption</media:title>
					<dc:description>Credit line</dc:description>
					<link>http://example.com/real</link>
					<link>http://example.com/duplicate</link>
				</item></channel></rss>`,
			expected: []models.NewsItem{
				{
					Title:       "Real headline",
					Link:        "http://example.com/real",
					PubDate:     models.DefaultPubDate,
					Description: models.DefaultDescription,
					Summary:     models.DefaultDescription,
				},
			},
		},
		{
			name: "latin-1 encoded feed",
			xml: "<?xml version=\"1.0\" encoding=\"ISO-8859-1\"?>\n" +
				"<rss version=\"2.0\"><channel><item><title>Caf\xe9 opens polling station</title></item></channel></rss>\n" +
				"<!-- generated -->\n",
			expected: []models.NewsItem{
				{
					Title:       "Café opens polling station",
					Link:        models.DefaultLink,
					PubDate:     models.DefaultPubDate,
					Description: models.DefaultDescription,
					Summary:     models.DefaultDescription,
				},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			server := newFeedServer(t, http.StatusOK, tc.xml)

			client := fetcher.NewClient(server.URL, time.Second, 150)
			items, err := client.FetchNews(context.Background())
			require.NoError(t, err)
			require.Equal(t, tc.expected, items)
		})
	}
}

func TestFetchNews_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		status  int
		xml     string
		wantErr error
	}{
		{
			name:    "non-200 status",
			status:  http.StatusBadGateway,
			xml:     `<rss><channel><item><title>x</title></item></channel></rss>`,
			wantErr: fetcher.ErrFetch,
		},
		{
			name:    "malformed xml",
			status:  http.StatusOK,
			xml:     `<rss><channel><item><title>broken`,
			wantErr: fetcher.ErrParse,
		},
		{
			name:    "not xml at all",
			status:  http.StatusOK,
			xml:     ``,
			wantErr: fetcher.ErrParse,
		},
		{
			name:    "trailing garbage after root",
			status:  http.StatusOK,
			xml:     `<rss><channel><item><title>x</title></item></channel></rss><<<not xml`,
			wantErr: fetcher.ErrParse,
		},
		{
			name:    "second root element",
			status:  http.StatusOK,
			xml:     `<rss><channel><item><title>x</title></item></channel></rss><rss/>`,
			wantErr: fetcher.ErrParse,
		},
		{
			name:    "missing items",
			status:  http.StatusOK,
			xml:     `<rss><channel><title>Empty</title></channel></rss>`,
			wantErr: fetcher.ErrFormat,
		},
		{
			name:    "missing channel",
			status:  http.StatusOK,
			xml:     `<rss version="2.0"></rss>`,
			wantErr: fetcher.ErrFormat,
		},
		{
			name:    "atom feed",
			status:  http.StatusOK,
			xml:     `<feed xmlns="http://www.w3.org/2005/Atom"><entry><title>x</title></entry></feed>`,
			wantErr: fetcher.ErrFormat,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			server := newFeedServer(t, tc.status, tc.xml)

			client := fetcher.NewClient(server.URL, time.Second, 150)
			items, err := client.FetchNews(context.Background())
			require.ErrorIs(t, err, tc.wantErr)
			require.Nil(t, items)
		})
	}
}

func TestFetchNews_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	client := fetcher.NewClient(url, time.Second, 150)
	_, err := client.FetchNews(context.Background())
	require.ErrorIs(t, err, fetcher.ErrFetch)
}

func TestFetchNews_ContextCancelled(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	client := fetcher.NewClient(server.URL, 5*time.Second, 150)
	_, err := client.FetchNews(ctx)
	require.ErrorIs(t, err, fetcher.ErrFetch)
}

func TestSummarize(t *testing.T) {
	long := strings.Repeat("a", 200)

	testCases := []struct {
		name  string
		in    string
		limit int
		want  string
	}{
		{"plain short", "Polls close at 10pm", 150, "Polls close at 10pm"},
		{"strips tags and entities", "<div>Swing &amp; turnout</div><p>rising</p>", 150, "Swing & turnout rising"},
		{"drops scripts", "Result<script>alert(1)</script> declared", 150, "Result declared"},
		{"truncates", long, 150, strings.Repeat("a", 150) + "..."},
		{"counts runes", "Stoke–on-Trent Central", 5, "Stoke..."},
		{"trims before ellipsis", "Red Wall seats", 4, "Red..."},
		{"no limit", long, 0, long},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, fetcher.Summarize(tc.in, tc.limit))
		})
	}
}
