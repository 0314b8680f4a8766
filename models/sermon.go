package models

// Sermon is one entry in the sermons listing. When the YouTube proxy is
// healthy these come from the channel's uploads playlist; otherwise the
// static fallback list is served.
type Sermon struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Preacher      string `json:"preacher"`
	Date          string `json:"date"`
	Description   string `json:"description"`
	Type          string `json:"type"`
	VideoID       string `json:"video_id,omitempty"`
	Thumbnail     string `json:"thumbnail,omitempty"`
	ThumbnailHigh string `json:"thumbnail_high,omitempty"`
	DownloadURL   string `json:"download_url,omitempty"`
}
