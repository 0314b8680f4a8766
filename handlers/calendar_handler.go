package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/Ptr234/christheartMinistrieswebsitegg/data"
	"github.com/Ptr234/christheartMinistrieswebsitegg/utils"
)

// GetEventsCalendar serves the promoted events as a downloadable iCalendar
// file for import into the visitor's calendar app.
func GetEventsCalendar(w http.ResponseWriter, r *http.Request) {
	document := utils.BuildCalendar(data.Events, timeNow())

	blocks := strings.Count(document, "BEGIN:VEVENT")
	log.Printf("GetEventsCalendar: exporting %d of %d events", blocks, len(data.Events))

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="christs-heart-events.ics"`)
	w.Write([]byte(document))
}
