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

type LiveServiceResponse struct {
	Live    bool                     `json:"live"`
	Service *models.RecurringService `json:"service,omitempty"`
}

type NextServiceResponse struct {
	Service   models.RecurringService `json:"service"`
	Start     string                  `json:"start"`
	Scheduled bool                    `json:"scheduled"`
	Countdown CountdownParts          `json:"countdown"`
}

// CountdownParts mirrors the homepage countdown widget.
type CountdownParts struct {
	Days    int `json:"days"`
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
	Seconds int `json:"seconds"`
}

func GetServices(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(data.Services)
}

func GetServiceDetails(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	service := data.ServiceByID(id)
	if service == nil {
		log.Printf("GetServiceDetails: no service with id %q", id)
		http.Error(w, "Service not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(service)
}

// GetLiveService reports which service, if any, is in progress right now.
func GetLiveService(w http.ResponseWriter, r *http.Request) {
	service, live := utils.ActiveService(data.WeeklySchedule, timeNow())

	response := LiveServiceResponse{Live: live}
	if live {
		response.Service = &service
		log.Printf("GetLiveService: %s (%s) is live", service.Title, service.ID)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// GetNextService returns the next service to start and a countdown to it.
func GetNextService(w http.ResponseWriter, r *http.Request) {
	now := timeNow()
	occurrence, scheduled := utils.NextOccurrence(data.WeeklySchedule, now)
	if !scheduled {
		// Only reachable with a broken schedule; LoadData warns at startup.
		log.Printf("GetNextService: no occurrence within scan window, serving default fallback")
	}

	days, hours, minutes, seconds := utils.SplitCountdown(occurrence.Start.Sub(now))
	response := NextServiceResponse{
		Service:   occurrence.Service,
		Start:     occurrence.Start.Format("2006-01-02T15:04:05"),
		Scheduled: scheduled,
		Countdown: CountdownParts{Days: days, Hours: hours, Minutes: minutes, Seconds: seconds},
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}
