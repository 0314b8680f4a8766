package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/Ptr234/christheartMinistrieswebsitegg/models"
)

// GeocodeCache is the lookup cache collaborator. Keys are the raw address
// query strings; values are "lat,lon" pairs.
type GeocodeCache interface {
	Get(key string) (string, bool)
	Set(key, value string)
}

// Geocoder resolves a free-text address to coordinates via a
// Nominatim-compatible endpoint, consulting the injected cache first.
type Geocoder struct {
	BaseURL string
	Client  *http.Client
	Cache   GeocodeCache
}

func NewGeocoder(baseURL string, cache GeocodeCache) *Geocoder {
	return &Geocoder{
		BaseURL: baseURL,
		Client:  &http.Client{Timeout: 10 * time.Second},
		Cache:   cache,
	}
}

type geocodeResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// Lookup geocodes an address. Cached results are returned without a network
// round trip; misses are fetched and cached on success.
func (g *Geocoder) Lookup(address string) (models.GeoPoint, error) {
	if g.Cache != nil {
		if cached, found := g.Cache.Get(address); found {
			if point, err := parsePoint(cached); err == nil {
				return point, nil
			}
		}
	}

	query := url.Values{}
	query.Set("q", address)
	query.Set("format", "json")
	query.Set("limit", "1")

	req, err := http.NewRequest("GET", g.BaseURL+"?"+query.Encode(), nil)
	if err != nil {
		return models.GeoPoint{}, err
	}
	req.Header.Set("User-Agent", "christsheart-site/1.0")

	resp, err := g.Client.Do(req)
	if err != nil {
		return models.GeoPoint{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return models.GeoPoint{}, fmt.Errorf("geocoder returned status %d", resp.StatusCode)
	}

	var results []geocodeResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return models.GeoPoint{}, fmt.Errorf("error decoding geocoder response: %v", err)
	}
	if len(results) == 0 {
		return models.GeoPoint{}, fmt.Errorf("no results for address %q", address)
	}

	lat, err1 := strconv.ParseFloat(results[0].Lat, 64)
	lon, err2 := strconv.ParseFloat(results[0].Lon, 64)
	if err1 != nil || err2 != nil {
		return models.GeoPoint{}, fmt.Errorf("geocoder returned malformed coordinates for %q", address)
	}

	point := models.GeoPoint{Latitude: lat, Longitude: lon}
	if g.Cache != nil {
		g.Cache.Set(address, fmt.Sprintf("%v,%v", lat, lon))
	}
	return point, nil
}

func parsePoint(s string) (models.GeoPoint, error) {
	var lat, lon float64
	if _, err := fmt.Sscanf(s, "%f,%f", &lat, &lon); err != nil {
		return models.GeoPoint{}, err
	}
	return models.GeoPoint{Latitude: lat, Longitude: lon}, nil
}
