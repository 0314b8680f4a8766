package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Ptr234/christheartMinistrieswebsitegg/config"
	"github.com/Ptr234/christheartMinistrieswebsitegg/data"
)

// fakeYouTube serves the two API endpoints GetSermons depends on and counts
// upstream hits per endpoint.
func fakeYouTube(t *testing.T) (*httptest.Server, map[string]int) {
	t.Helper()
	hits := map[string]int{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case strings.HasPrefix(r.URL.Path, "/channels"):
			hits["channels"]++
			fmt.Fprint(w, `{"items": [{"contentDetails": {"relatedPlaylists": {"uploads": "UUtest-uploads"}}}]}`)
		case strings.HasPrefix(r.URL.Path, "/playlistItems"):
			hits["playlistItems"]++
			if r.URL.Query().Get("playlistId") != "UUtest-uploads" {
				http.Error(w, `{"error": {"message": "playlist not found"}}`, http.StatusNotFound)
				return
			}
			fmt.Fprint(w, `{
				"items": [
					{"snippet": {
						"title": "The Power of Faith",
						"description": "Sunday main service message.",
						"publishedAt": "2026-03-15T12:00:00Z",
						"thumbnails": {
							"medium": {"url": "https://i.ytimg.com/vi/abc123/mqdefault.jpg"},
							"high": {"url": "https://i.ytimg.com/vi/abc123/hqdefault.jpg"}
						},
						"resourceId": {"videoId": "abc123"}
					}},
					{"snippet": {
						"title": "Private video",
						"resourceId": {"videoId": "hidden1"}
					}},
					{"snippet": {
						"title": "Walking in Grace",
						"publishedAt": "2026-03-08T12:00:00Z",
						"thumbnails": {
							"default": {"url": "https://i.ytimg.com/vi/def456/default.jpg"}
						},
						"resourceId": {"videoId": "def456"}
					}}
				],
				"nextPageToken": "PAGE2"
			}`)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)
	return server, hits
}

func getSermons(t *testing.T, target string) SermonPage {
	t.Helper()
	w := httptest.NewRecorder()
	GetSermons(w, httptest.NewRequest("GET", target, nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	var page SermonPage
	if err := json.NewDecoder(w.Body).Decode(&page); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	return page
}

func TestGetSermonsFromYouTube(t *testing.T) {
	server, hits := fakeYouTube(t)
	t.Setenv("YOUTUBE_API_KEY", "test-key")
	t.Setenv("YOUTUBE_API_BASE", server.URL)
	config.InitCache()

	page := getSermons(t, "/api/v1/sermons")

	if page.Source != "youtube" {
		t.Fatalf("source = %s, want youtube", page.Source)
	}
	if len(page.Sermons) != 2 {
		t.Fatalf("expected 2 sermons (private video dropped), got %d", len(page.Sermons))
	}
	if page.Sermons[0].VideoID != "abc123" || page.Sermons[1].VideoID != "def456" {
		t.Errorf("unexpected video ids: %s, %s", page.Sermons[0].VideoID, page.Sermons[1].VideoID)
	}
	if page.Sermons[0].Thumbnail != "https://i.ytimg.com/vi/abc123/mqdefault.jpg" {
		t.Errorf("thumbnail should prefer medium, got %s", page.Sermons[0].Thumbnail)
	}
	if page.Sermons[0].ThumbnailHigh != "https://i.ytimg.com/vi/abc123/hqdefault.jpg" {
		t.Errorf("high thumbnail = %s", page.Sermons[0].ThumbnailHigh)
	}
	// Second sermon only has a default thumbnail
	if page.Sermons[1].Thumbnail != "https://i.ytimg.com/vi/def456/default.jpg" {
		t.Errorf("thumbnail fallback chain broken: %s", page.Sermons[1].Thumbnail)
	}
	if page.NextPageToken != "PAGE2" {
		t.Errorf("next page token = %s, want PAGE2", page.NextPageToken)
	}
	if hits["channels"] != 1 || hits["playlistItems"] != 1 {
		t.Errorf("upstream hits = %v, want one per endpoint", hits)
	}
}

func TestGetSermonsCachesByQuery(t *testing.T) {
	server, hits := fakeYouTube(t)
	t.Setenv("YOUTUBE_API_KEY", "test-key")
	t.Setenv("YOUTUBE_API_BASE", server.URL)
	config.InitCache()

	getSermons(t, "/api/v1/sermons")
	getSermons(t, "/api/v1/sermons")
	if hits["playlistItems"] != 1 {
		t.Errorf("repeat request hit upstream %d times, want 1", hits["playlistItems"])
	}

	// A different query string is a different cache entry
	getSermons(t, "/api/v1/sermons?limit=5")
	if hits["playlistItems"] != 2 {
		t.Errorf("distinct query should miss the cache, upstream hits = %d", hits["playlistItems"])
	}

	// The uploads playlist lookup is cached across all of the above
	if hits["channels"] != 1 {
		t.Errorf("uploads playlist resolved %d times, want 1", hits["channels"])
	}
}

func TestGetSermonsFallback(t *testing.T) {
	// No API key configured: the static list must be served
	t.Setenv("YOUTUBE_API_KEY", "")
	config.InitCache()

	page := getSermons(t, "/api/v1/sermons")

	if page.Source != "fallback" {
		t.Fatalf("source = %s, want fallback", page.Source)
	}
	if len(page.Sermons) != len(data.FallbackSermons) {
		t.Errorf("expected %d fallback sermons, got %d", len(data.FallbackSermons), len(page.Sermons))
	}
}

func TestGetSermonsFallbackNotCached(t *testing.T) {
	// First request fails and falls back; once the upstream works, the next
	// request must not be stuck on a cached fallback page.
	server, _ := fakeYouTube(t)
	t.Setenv("YOUTUBE_API_BASE", server.URL)
	t.Setenv("YOUTUBE_API_KEY", "")
	config.InitCache()

	if page := getSermons(t, "/api/v1/sermons"); page.Source != "fallback" {
		t.Fatalf("source = %s, want fallback", page.Source)
	}

	t.Setenv("YOUTUBE_API_KEY", "test-key")
	if page := getSermons(t, "/api/v1/sermons"); page.Source != "youtube" {
		t.Errorf("source = %s, want youtube after upstream recovers", page.Source)
	}
}
