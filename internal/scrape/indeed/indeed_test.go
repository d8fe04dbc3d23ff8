package indeed

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"jobalert-engine/internal/config"
	"jobalert-engine/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const feedXML = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
<channel>
  <title>Indeed Search</title>
  <item>
    <title>Data Engineer - Growth Team</title>
    <link>https://in.example.com/viewjob?jk=1</link>
    <description>Join us. 0-2 years experience required.</description>
    <pubDate>Mon, 31 Aug 2026 06:00:00 GMT</pubDate>
  </item>
  <item>
    <title>Senior Frontend Developer</title>
    <link>https://in.example.com/viewjob?jk=2</link>
    <description>React role.</description>
  </item>
  <item>
    <title>Data Engineer II</title>
    <link></link>
  </item>
</channel>
</rss>`

func testConfig(url string) config.Config {
	cfg, _ := config.Load("/dev/null")
	cfg.Sources.IndeedRSS.Enabled = true
	cfg.Sources.IndeedRSS.URL = url
	return cfg
}

func TestFetchParsesFeed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		fmt.Fprint(w, feedXML)
	}))
	defer srv.Close()

	res, err := New(testConfig(srv.URL), nil, "test-agent").Fetch(context.Background())
	require.NoError(t, err)

	// keyword filter drops the frontend item, the linkless one is a typed skip
	require.Len(t, res.Records, 1)
	rec := res.Records[0]
	assert.Equal(t, "Data Engineer - Growth Team", rec.Title)
	assert.Equal(t, domain.CheckPosting, rec.Company)
	assert.Equal(t, "India", rec.Location)
	assert.Equal(t, "Indeed RSS", rec.Source)
	assert.Equal(t, "Mon, 31 Aug 2026 06:00:00 GMT", rec.PostedDate)
	assert.Empty(t, rec.Salary)
	assert.Contains(t, rec.Experience, "0-2 years")

	require.Len(t, res.Skipped, 1)
	assert.Contains(t, res.Skipped[0].Error(), "missing title or link")
}

func TestFetchBadFeed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "not xml at all {")
	}))
	defer srv.Close()

	res, err := New(testConfig(srv.URL), nil, "test-agent").Fetch(context.Background())
	assert.Error(t, err)
	assert.Empty(t, res.Records)
}

func TestFetchServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := New(testConfig(srv.URL), nil, "test-agent").Fetch(context.Background())
	assert.Error(t, err)
}
