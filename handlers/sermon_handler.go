package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/Ptr234/christheartMinistrieswebsitegg/config"
	"github.com/Ptr234/christheartMinistrieswebsitegg/data"
	"github.com/Ptr234/christheartMinistrieswebsitegg/models"
)

var youtubeClient = &http.Client{Timeout: 10 * time.Second}

type SermonPage struct {
	Sermons       []models.Sermon `json:"sermons"`
	NextPageToken string          `json:"next_page_token,omitempty"`
	Source        string          `json:"source"`
}

type youtubeError struct {
	Message string `json:"message"`
}

type youtubeChannelResponse struct {
	Items []struct {
		ContentDetails struct {
			RelatedPlaylists struct {
				Uploads string `json:"uploads"`
			} `json:"relatedPlaylists"`
		} `json:"contentDetails"`
	} `json:"items"`
	Error *youtubeError `json:"error"`
}

type youtubeThumbnail struct {
	URL string `json:"url"`
}

type youtubeSnippet struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	PublishedAt string `json:"publishedAt"`
	Thumbnails  struct {
		High    *youtubeThumbnail `json:"high"`
		Medium  *youtubeThumbnail `json:"medium"`
		Default *youtubeThumbnail `json:"default"`
	} `json:"thumbnails"`
	ResourceID struct {
		VideoID string `json:"videoId"`
	} `json:"resourceId"`
}

type youtubePlaylistResponse struct {
	Items []struct {
		Snippet youtubeSnippet `json:"snippet"`
	} `json:"items"`
	NextPageToken string        `json:"nextPageToken"`
	Error         *youtubeError `json:"error"`
}

// GetSermons proxies one page of the channel's uploads playlist. Responses
// are cached keyed by the request query string; any upstream failure falls
// back to the static sermon list so the page is never empty.
func GetSermons(w http.ResponseWriter, r *http.Request) {
	cacheKey := config.GetCacheKey("sermons", r.URL.RawQuery)
	if config.SermonCache != nil {
		if cached, found := config.SermonCache.Get(cacheKey); found {
			if page, ok := cached.(SermonPage); ok {
				log.Printf("GetSermons: cache hit for %q", cacheKey)
				writeSermonPage(w, page)
				return
			}
		}
	}

	pageToken := r.URL.Query().Get("page_token")
	limit := config.GetSermonPageSize()
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 && parsed <= 50 {
			limit = parsed
		}
	}

	page, err := fetchSermonPage(pageToken, limit)
	if err != nil {
		log.Printf("GetSermons: YouTube API unavailable, using fallback data: %v", err)
		writeSermonPage(w, SermonPage{Sermons: data.FallbackSermons, Source: "fallback"})
		return
	}

	if config.SermonCache != nil {
		config.SermonCache.Set(cacheKey, page, cache.DefaultExpiration)
	}
	writeSermonPage(w, page)
}

func writeSermonPage(w http.ResponseWriter, page SermonPage) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(page)
}

// fetchSermonPage resolves the channel's uploads playlist (cached) and
// fetches a single page of it. Fetches are sequential; there is never more
// than one upstream request in flight per incoming request.
func fetchSermonPage(pageToken string, limit int) (SermonPage, error) {
	apiKey := config.GetYouTubeAPIKey()
	if apiKey == "" {
		return SermonPage{}, fmt.Errorf("no API key configured")
	}

	playlistID, err := resolveUploadsPlaylist(apiKey)
	if err != nil {
		return SermonPage{}, err
	}

	query := url.Values{}
	query.Set("part", "snippet")
	query.Set("playlistId", playlistID)
	query.Set("maxResults", strconv.Itoa(limit))
	query.Set("key", apiKey)
	if pageToken != "" {
		query.Set("pageToken", pageToken)
	}

	var response youtubePlaylistResponse
	if err := fetchJSON(config.GetYouTubeBaseURL()+"/playlistItems?"+query.Encode(), &response); err != nil {
		return SermonPage{}, err
	}
	if response.Error != nil {
		return SermonPage{}, fmt.Errorf("playlistItems error: %s", response.Error.Message)
	}

	sermons := make([]models.Sermon, 0, len(response.Items))
	for _, item := range response.Items {
		if sermon, ok := mapSermon(item.Snippet); ok {
			sermons = append(sermons, sermon)
		}
	}

	return SermonPage{
		Sermons:       sermons,
		NextPageToken: response.NextPageToken,
		Source:        "youtube",
	}, nil
}

func resolveUploadsPlaylist(apiKey string) (string, error) {
	channelID := config.GetYouTubeChannelID()
	cacheKey := config.GetCacheKey("uploads", channelID)
	if config.SermonCache != nil {
		if cached, found := config.SermonCache.Get(cacheKey); found {
			if id, ok := cached.(string); ok {
				return id, nil
			}
		}
	}

	query := url.Values{}
	query.Set("part", "contentDetails")
	query.Set("id", channelID)
	query.Set("key", apiKey)

	var response youtubeChannelResponse
	if err := fetchJSON(config.GetYouTubeBaseURL()+"/channels?"+query.Encode(), &response); err != nil {
		return "", err
	}
	if response.Error != nil {
		return "", fmt.Errorf("channels error: %s", response.Error.Message)
	}
	if len(response.Items) == 0 {
		return "", fmt.Errorf("could not find uploads playlist for channel %s", channelID)
	}

	playlistID := response.Items[0].ContentDetails.RelatedPlaylists.Uploads
	if playlistID == "" {
		return "", fmt.Errorf("could not find uploads playlist for channel %s", channelID)
	}

	if config.SermonCache != nil {
		// Playlist ids are effectively permanent for a channel.
		config.SermonCache.Set(cacheKey, playlistID, cache.NoExpiration)
	}
	return playlistID, nil
}

func fetchJSON(requestURL string, out interface{}) error {
	resp, err := youtubeClient.Get(requestURL)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// mapSermon converts a playlist item into a sermon entry, dropping entries
// that YouTube masks out.
func mapSermon(snippet youtubeSnippet) (models.Sermon, bool) {
	if snippet.Title == "Private video" || snippet.Title == "Deleted video" {
		return models.Sermon{}, false
	}

	description := snippet.Description
	if len(description) > 200 {
		description = description[:200]
	}

	thumbnail := ""
	thumbnailHigh := ""
	if snippet.Thumbnails.Medium != nil {
		thumbnail = snippet.Thumbnails.Medium.URL
	} else if snippet.Thumbnails.High != nil {
		thumbnail = snippet.Thumbnails.High.URL
	} else if snippet.Thumbnails.Default != nil {
		thumbnail = snippet.Thumbnails.Default.URL
	}
	if snippet.Thumbnails.High != nil {
		thumbnailHigh = snippet.Thumbnails.High.URL
	} else {
		thumbnailHigh = thumbnail
	}

	id := snippet.ResourceID.VideoID
	if id == "" {
		id = snippet.Title
	}

	return models.Sermon{
		ID:            id,
		Title:         snippet.Title,
		Preacher:      "Christ's Heart Ministries",
		Date:          snippet.PublishedAt,
		Description:   description,
		Type:          "video",
		VideoID:       snippet.ResourceID.VideoID,
		Thumbnail:     thumbnail,
		ThumbnailHigh: thumbnailHigh,
	}, true
}

// RefreshSermonCache drops cached sermon pages and re-warms the first page.
// Wired to the background cron schedule.
func RefreshSermonCache() {
	if config.SermonCache == nil {
		return
	}
	config.SermonCache.Flush()

	page, err := fetchSermonPage("", config.GetSermonPageSize())
	if err != nil {
		log.Printf("RefreshSermonCache: warm fetch failed: %v", err)
		return
	}
	config.SermonCache.Set(config.GetCacheKey("sermons", ""), page, cache.DefaultExpiration)
	log.Printf("RefreshSermonCache: warmed first page with %d sermons", len(page.Sermons))
}
