package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Ptr234/christheartMinistrieswebsitegg/data"
	"github.com/Ptr234/christheartMinistrieswebsitegg/models"
	"github.com/Ptr234/christheartMinistrieswebsitegg/utils"
)

// EventView is an event plus the display fields derived from the clock.
type EventView struct {
	models.ChurchEvent
	Upcoming  bool   `json:"upcoming"`
	Countdown string `json:"countdown,omitempty"`
}

func makeEventView(ev models.ChurchEvent) EventView {
	now := timeNow()
	return EventView{
		ChurchEvent: ev,
		Upcoming:    utils.IsUpcoming(ev, now),
		Countdown:   utils.CountdownText(ev, now),
	}
}

func GetEvents(w http.ResponseWriter, r *http.Request) {
	views := make([]EventView, 0, len(data.Events))
	for _, ev := range data.Events {
		views = append(views, makeEventView(ev))
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(views)
}

func GetEventDetails(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	event := data.EventByID(id)
	if event == nil {
		log.Printf("GetEventDetails: no event with id %q", id)
		http.Error(w, "Event not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(makeEventView(*event))
}

// GetUpcomingEvents returns events still worth promoting, soonest first.
func GetUpcomingEvents(w http.ResponseWriter, r *http.Request) {
	now := timeNow()
	upcoming := utils.UpcomingEvents(data.Events, now)
	views := make([]EventView, 0, len(upcoming))
	for _, ev := range upcoming {
		views = append(views, makeEventView(ev))
	}
	log.Printf("GetUpcomingEvents: %d of %d events upcoming", len(views), len(data.Events))
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(views)
}

// GetPromoEvent returns the single event the promotional popup should show,
// or 404 when nothing starts within the promo window.
func GetPromoEvent(w http.ResponseWriter, r *http.Request) {
	event, ok := utils.PromoEvent(data.Events, timeNow())
	if !ok {
		http.Error(w, "No event within the promotional window", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(makeEventView(event))
}
