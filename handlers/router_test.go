package handlers

import (
	"testing"
	"time"

	"github.com/gorilla/mux"
)

// newTestRouter mirrors the route registration in main.go for the handlers
// under test here.
func newTestRouter() *mux.Router {
	r := mux.NewRouter()
	api := r.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/branches", GetBranches).Methods("GET")
	api.HandleFunc("/branches/nearest", FindNearestBranches).Methods("POST")
	api.HandleFunc("/branches/{id}", GetBranchDetails).Methods("GET")

	api.HandleFunc("/events", GetEvents).Methods("GET")
	api.HandleFunc("/events/upcoming", GetUpcomingEvents).Methods("GET")
	api.HandleFunc("/events/promo", GetPromoEvent).Methods("GET")
	api.HandleFunc("/events/calendar.ics", GetEventsCalendar).Methods("GET")
	api.HandleFunc("/events/{id}", GetEventDetails).Methods("GET")

	api.HandleFunc("/services", GetServices).Methods("GET")
	api.HandleFunc("/services/live", GetLiveService).Methods("GET")
	api.HandleFunc("/services/next", GetNextService).Methods("GET")
	api.HandleFunc("/services/{id}", GetServiceDetails).Methods("GET")

	api.HandleFunc("/sermons", GetSermons).Methods("GET")

	api.HandleFunc("/sitemaps", GetSitemapIndex).Methods("GET")
	api.HandleFunc("/sitemaps/branches", GetBranchesSitemap).Methods("GET")

	return r
}

// pinClock fixes the handler clock for the duration of a test.
func pinClock(t *testing.T, instant time.Time) {
	t.Helper()
	old := timeNow
	timeNow = func() time.Time { return instant }
	t.Cleanup(func() { timeNow = old })
}
