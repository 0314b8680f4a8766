package data

import "github.com/Ptr234/christheartMinistrieswebsitegg/models"

// FallbackSermons is served when the YouTube API is unreachable or the
// channel lookup fails, so the sermons page is never empty.
var FallbackSermons = []models.Sermon{
	{
		ID:          "1",
		Title:       "Walking in Divine Purpose",
		Preacher:    "Apostle Isaiah Mbuga",
		Date:        "2026-02-09",
		Description: "A powerful message about discovering and walking in the purpose God has ordained for your life.",
		Type:        "audio",
		DownloadURL: "#",
	},
	{
		ID:          "2",
		Title:       "The Power of Faith",
		Preacher:    "Apostle Isaiah Mbuga",
		Date:        "2026-02-02",
		Description: "Understanding the transformative power of faith and how it moves mountains in our daily lives.",
		Type:        "audio",
		DownloadURL: "#",
	},
	{
		ID:          "3",
		Title:       "Raising an Apostolic Generation",
		Preacher:    "Apostle Isaiah Mbuga",
		Date:        "2026-01-26",
		Description: "The vision and mandate for raising a generation that walks in apostolic authority and power.",
		Type:        "video",
		DownloadURL: "#",
	},
}
