package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Ptr234/christheartMinistrieswebsitegg/data"
	"github.com/Ptr234/christheartMinistrieswebsitegg/utils"
)

func postNearest(t *testing.T, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("POST", "/api/v1/branches/nearest", bytes.NewBufferString(body))
	w := httptest.NewRecorder()
	FindNearestBranches(w, req)
	return w
}

func TestFindNearestBranches(t *testing.T) {
	// Query from the Mukono branch's own coordinates
	w := postNearest(t, `{"latitude": 0.3533, "longitude": 32.7553, "count": 5}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var response NearestResponse
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if len(response.Results) != 5 {
		t.Fatalf("expected 5 results, got %d", len(response.Results))
	}
	if response.Results[0].Branch.ID != "mukono" {
		t.Errorf("nearest branch = %s, want mukono", response.Results[0].Branch.ID)
	}
	if response.Results[0].DistanceKm > 0.001 {
		t.Errorf("distance to own coordinates = %f, want ~0", response.Results[0].DistanceKm)
	}
	for i := 1; i < len(response.Results); i++ {
		if response.Results[i].DistanceKm < response.Results[i-1].DistanceKm {
			t.Error("results are not in ascending distance order")
		}
	}
}

func TestFindNearestExcludesUnknownLocations(t *testing.T) {
	valid := 0
	for _, b := range data.Branches {
		if !b.Location.IsUnknown() {
			valid++
		}
	}

	w := postNearest(t, `{"latitude": 0.3136, "longitude": 32.5811, "count": 100}`)
	var response NearestResponse
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if len(response.Results) != valid {
		t.Errorf("expected %d results, got %d", valid, len(response.Results))
	}
	for _, r := range response.Results {
		if r.Branch.Location.IsUnknown() {
			t.Errorf("branch %s has the sentinel location and must not be ranked", r.Branch.ID)
		}
	}
}

func TestFindNearestRequiresOrigin(t *testing.T) {
	w := postNearest(t, `{}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400 without coordinates or address, got %d", w.Code)
	}
}

type mapCache struct {
	entries map[string]string
}

func (c *mapCache) Get(key string) (string, bool) {
	value, found := c.entries[key]
	return value, found
}

func (c *mapCache) Set(key, value string) {
	c.entries[key] = value
}

func TestFindNearestByAddressUsesGeocodeCache(t *testing.T) {
	hits := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"lat": "0.3533", "lon": "32.7553"}]`))
	}))
	defer server.Close()

	oldGeocoder := geocoder
	geocoder = utils.NewGeocoder(server.URL, &mapCache{entries: map[string]string{}})
	defer func() { geocoder = oldGeocoder }()

	for i := 0; i < 2; i++ {
		w := postNearest(t, `{"address": "Mukono Town", "count": 1}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", w.Code)
		}
		var response NearestResponse
		if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
			t.Fatalf("error decoding response: %v", err)
		}
		if len(response.Results) != 1 || response.Results[0].Branch.ID != "mukono" {
			t.Fatalf("expected mukono as the single result")
		}
	}

	if hits != 1 {
		t.Errorf("geocoder was queried %d times, want 1 (second lookup should be cached)", hits)
	}
}

func TestGetBranchDetails(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/v1/branches/kampala", nil)
	w := httptest.NewRecorder()

	router := newTestRouter()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	var branch struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	if err := json.NewDecoder(w.Body).Decode(&branch); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if branch.ID != "kampala" {
		t.Errorf("branch id = %s, want kampala", branch.ID)
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/v1/branches/nowhere", nil))
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 for unknown branch, got %d", w.Code)
	}
}
