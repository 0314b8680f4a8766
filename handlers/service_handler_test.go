package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestGetLiveServiceOvernight(t *testing.T) {
	// Friday 23:00, one hour into the all-night prayer
	pinClock(t, time.Date(2026, time.March, 20, 23, 0, 0, 0, time.Local))

	w := httptest.NewRecorder()
	GetLiveService(w, httptest.NewRequest("GET", "/api/v1/services/live", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	var response LiveServiceResponse
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if !response.Live {
		t.Fatal("expected a live service on Friday night")
	}
	if response.Service == nil || response.Service.ID != "overnight-prayers" {
		t.Errorf("live service = %+v, want overnight-prayers", response.Service)
	}

	// Saturday 04:00, the overnight window is still open
	pinClock(t, time.Date(2026, time.March, 21, 4, 0, 0, 0, time.Local))
	w = httptest.NewRecorder()
	GetLiveService(w, httptest.NewRequest("GET", "/api/v1/services/live", nil))
	response = LiveServiceResponse{}
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if !response.Live || response.Service == nil || response.Service.ID != "overnight-prayers" {
		t.Error("overnight service should still be live early Saturday morning")
	}
}

func TestGetLiveServiceNothingOn(t *testing.T) {
	// Saturday 06:00, after the overnight window closes
	pinClock(t, time.Date(2026, time.March, 21, 6, 0, 0, 0, time.Local))

	w := httptest.NewRecorder()
	GetLiveService(w, httptest.NewRequest("GET", "/api/v1/services/live", nil))
	var response LiveServiceResponse
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if response.Live {
		t.Error("no service should be live at 6am Saturday")
	}
	if response.Service != nil {
		t.Errorf("service should be omitted when nothing is live, got %+v", response.Service)
	}
}

func TestGetNextService(t *testing.T) {
	// Saturday noon, after the New Believers' class has started
	pinClock(t, time.Date(2026, time.March, 21, 12, 30, 0, 0, time.Local))

	w := httptest.NewRecorder()
	GetNextService(w, httptest.NewRequest("GET", "/api/v1/services/next", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	var response NextServiceResponse
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if response.Service.ID != "sunday-early" {
		t.Errorf("next service = %s, want sunday-early", response.Service.ID)
	}
	if response.Start != "2026-03-22T07:00:00" {
		t.Errorf("start = %s, want 2026-03-22T07:00:00", response.Start)
	}
	if !response.Scheduled {
		t.Error("expected a scheduled occurrence, not the fallback")
	}
	// 18.5 hours out
	if response.Countdown.Days != 0 || response.Countdown.Hours != 18 || response.Countdown.Minutes != 30 {
		t.Errorf("countdown = %+v, want 0d 18h 30m", response.Countdown)
	}
}

func TestGetServiceDetails(t *testing.T) {
	router := newTestRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/v1/services/home-cells", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	var service struct {
		ID            string `json:"id"`
		CellLocations []struct {
			Area string `json:"area"`
		} `json:"cell_locations"`
	}
	if err := json.NewDecoder(w.Body).Decode(&service); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if service.ID != "home-cells" {
		t.Errorf("service id = %s, want home-cells", service.ID)
	}
	if len(service.CellLocations) == 0 {
		t.Error("home cells page should list cell locations")
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/v1/services/no-such-service", nil))
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 for unknown service, got %d", w.Code)
	}
}
