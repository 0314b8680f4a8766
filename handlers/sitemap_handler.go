package handlers

import (
	"encoding/xml"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/Ptr234/christheartMinistrieswebsitegg/config"
	"github.com/Ptr234/christheartMinistrieswebsitegg/data"
)

type URL struct {
	XMLName    xml.Name `xml:"url"`
	Loc        string   `xml:"loc"`
	LastMod    string   `xml:"lastmod,omitempty"`
	ChangeFreq string   `xml:"changefreq,omitempty"`
	Priority   float64  `xml:"priority,omitempty"`
}

type URLSet struct {
	XMLName xml.Name `xml:"urlset"`
	XMLNS   string   `xml:"xmlns,attr"`
	URLs    []URL    `xml:"url"`
}

type SitemapIndex struct {
	XMLName  xml.Name  `xml:"sitemapindex"`
	XMLNS    string    `xml:"xmlns,attr"`
	Sitemaps []Sitemap `xml:"sitemap"`
}

type Sitemap struct {
	XMLName xml.Name `xml:"sitemap"`
	Loc     string   `xml:"loc"`
	LastMod string   `xml:"lastmod,omitempty"`
}

const (
	sitemapXMLNS = "http://www.sitemaps.org/schemas/sitemap/0.9"
	xmlHeader    = `<?xml version="1.0" encoding="UTF-8"?>`
)

// GetSitemapIndex lists the section sitemaps.
func GetSitemapIndex(w http.ResponseWriter, r *http.Request) {
	base := config.GetSiteBaseURL()
	lastMod := timeNow().Format("2006-01-02")

	index := SitemapIndex{
		XMLNS: sitemapXMLNS,
		Sitemaps: []Sitemap{
			{Loc: base + "/api/v1/sitemaps/branches", LastMod: lastMod},
			{Loc: base + "/api/v1/sitemaps/events", LastMod: lastMod},
			{Loc: base + "/api/v1/sitemaps/services", LastMod: lastMod},
		},
	}
	writeSitemap(w, index)
}

// GetBranchesSitemap lists the branch detail pages.
func GetBranchesSitemap(w http.ResponseWriter, r *http.Request) {
	urls := []URL{{Loc: config.GetSiteBaseURL() + "/branches", ChangeFreq: "monthly", Priority: 0.8}}
	for _, branch := range data.Branches {
		urls = append(urls, URL{
			Loc:        fmt.Sprintf("%s/branches/%s", config.GetSiteBaseURL(), branch.ID),
			ChangeFreq: "monthly",
			Priority:   0.6,
		})
	}
	writeSitemap(w, URLSet{XMLNS: sitemapXMLNS, URLs: urls})
}

// GetEventsSitemap lists the event detail pages. Events cycle yearly, so
// they are marked for weekly recrawl.
func GetEventsSitemap(w http.ResponseWriter, r *http.Request) {
	urls := []URL{{Loc: config.GetSiteBaseURL() + "/events", ChangeFreq: "weekly", Priority: 0.8}}
	for _, event := range data.Events {
		urls = append(urls, URL{
			Loc:        fmt.Sprintf("%s/events/%s", config.GetSiteBaseURL(), event.ID),
			ChangeFreq: "weekly",
			Priority:   0.7,
		})
	}
	writeSitemap(w, URLSet{XMLNS: sitemapXMLNS, URLs: urls})
}

// GetServicesSitemap lists the service detail pages.
func GetServicesSitemap(w http.ResponseWriter, r *http.Request) {
	urls := []URL{{Loc: config.GetSiteBaseURL() + "/services", ChangeFreq: "monthly", Priority: 0.8}}
	for _, service := range data.Services {
		urls = append(urls, URL{
			Loc:        fmt.Sprintf("%s/services/%s", config.GetSiteBaseURL(), service.ID),
			ChangeFreq: "monthly",
			Priority:   0.6,
		})
	}
	writeSitemap(w, URLSet{XMLNS: sitemapXMLNS, URLs: urls})
}

func writeSitemap(w http.ResponseWriter, payload interface{}) {
	output, err := xml.MarshalIndent(payload, "", "  ")
	if err != nil {
		log.Printf("writeSitemap: error marshaling sitemap: %v", err)
		http.Error(w, "Error generating sitemap", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.Header().Set("Cache-Control", fmt.Sprintf("max-age=%d", int((24*time.Hour).Seconds())))
	w.Write([]byte(xmlHeader + "\n"))
	w.Write(output)
}
