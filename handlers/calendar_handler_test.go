package handlers

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestGetEventsCalendar(t *testing.T) {
	pinClock(t, time.Date(2026, time.March, 1, 10, 0, 0, 0, time.Local))

	w := httptest.NewRecorder()
	GetEventsCalendar(w, httptest.NewRequest("GET", "/api/v1/events/calendar.ics", nil))

	if got := w.Header().Get("Content-Type"); got != "text/calendar; charset=utf-8" {
		t.Errorf("content type = %q", got)
	}
	if got := w.Header().Get("Content-Disposition"); !strings.Contains(got, "christs-heart-events.ics") {
		t.Errorf("content disposition = %q", got)
	}

	body := w.Body.String()
	if !strings.HasPrefix(body, "BEGIN:VCALENDAR\r\n") {
		t.Error("body should start with BEGIN:VCALENDAR")
	}
	// Every dataset event has a parseable date, so all of them export
	if got := strings.Count(body, "BEGIN:VEVENT"); got != 4 {
		t.Errorf("expected 4 event blocks, got %d", got)
	}
	if !strings.Contains(body, "UID:men-of-action-2026@christsheartministries.org") {
		t.Error("missing UID for the March conference")
	}
	if !strings.Contains(body, "DTSTART;VALUE=DATE:20260321") {
		t.Error("missing all-day start for the March conference")
	}
}
