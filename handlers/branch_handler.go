package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/patrickmn/go-cache"

	"github.com/Ptr234/christheartMinistrieswebsitegg/config"
	"github.com/Ptr234/christheartMinistrieswebsitegg/data"
	"github.com/Ptr234/christheartMinistrieswebsitegg/models"
	"github.com/Ptr234/christheartMinistrieswebsitegg/utils"
)

const defaultNearestCount = 3

// geocoder is initialized by Init and replaced in tests.
var geocoder *utils.Geocoder

// Init wires handler dependencies that need runtime configuration.
func Init() {
	geocoder = utils.NewGeocoder(config.GetGeocoderURL(), geocodeStore{})
}

// geocodeStore adapts the shared go-cache instance to the geocoder's cache
// collaborator.
type geocodeStore struct{}

func (geocodeStore) Get(key string) (string, bool) {
	if config.GeocodeCache == nil {
		return "", false
	}
	if value, found := config.GeocodeCache.Get(config.GetCacheKey("geocode", key)); found {
		if s, ok := value.(string); ok {
			return s, true
		}
	}
	return "", false
}

func (geocodeStore) Set(key, value string) {
	if config.GeocodeCache == nil {
		return
	}
	config.GeocodeCache.Set(config.GetCacheKey("geocode", key), value, cache.DefaultExpiration)
}

type NearestRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address,omitempty"`
	Count     int     `json:"count,omitempty"`
}

type NearestResponse struct {
	Origin  models.GeoPoint      `json:"origin"`
	Results []utils.RankedBranch `json:"results"`
}

func GetBranches(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(data.Branches)
}

func GetBranchDetails(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	branch := data.BranchByID(id)
	if branch == nil {
		log.Printf("GetBranchDetails: no branch with id %q", id)
		http.Error(w, "Branch not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(branch)
}

// FindNearestBranches ranks branches by distance from the visitor. The
// origin comes either from device coordinates or from a free-text address
// that is geocoded (with caching) first.
func FindNearestBranches(w http.ResponseWriter, r *http.Request) {
	var req NearestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("FindNearestBranches: error decoding request body: %v", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	origin := models.GeoPoint{Latitude: req.Latitude, Longitude: req.Longitude}
	if req.Address != "" {
		if geocoder == nil {
			log.Printf("FindNearestBranches: geocoder not initialized")
			http.Error(w, "Geocoder not available", http.StatusInternalServerError)
			return
		}
		point, err := geocoder.Lookup(req.Address)
		if err != nil {
			log.Printf("FindNearestBranches: geocode failed for %q: %v", req.Address, err)
			http.Error(w, "Could not resolve address", http.StatusBadGateway)
			return
		}
		log.Printf("FindNearestBranches: geocoded %q to (%f, %f)", req.Address, point.Latitude, point.Longitude)
		origin = point
	} else if origin.IsUnknown() {
		http.Error(w, "Either coordinates or an address is required", http.StatusBadRequest)
		return
	}

	count := req.Count
	if count <= 0 {
		count = defaultNearestCount
	}

	results := utils.Nearest(origin, data.Branches, count)
	log.Printf("FindNearestBranches: returning %d of %d branches for origin (%f, %f)",
		len(results), len(data.Branches), origin.Latitude, origin.Longitude)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(NearestResponse{Origin: origin, Results: results})
}
