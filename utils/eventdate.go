package utils

import (
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/Ptr234/christheartMinistrieswebsitegg/models"
)

var monthNames = []string{
	"january", "february", "march", "april", "may", "june",
	"july", "august", "september", "october", "november", "december",
}

// ParseEventDate parses a human-readable event date string into a concrete
// date at local midnight. It handles "February 2026", "21st February 2026"
// and ranges like "8th–10th May 2026", returning the first day mentioned
// (or the 1st if no day is found). The second return is false when no month
// name or no 4-digit year is present.
func ParseEventDate(text string) (time.Time, bool) {
	lower := strings.ToLower(text)

	var month time.Month
	for i, name := range monthNames {
		if strings.Contains(lower, name) {
			month = time.Month(i + 1)
			break
		}
	}
	if month == 0 {
		return time.Time{}, false
	}

	year := 0
	day := 0
	for _, run := range digitRuns(text) {
		if year == 0 && len(run) == 4 && strings.HasPrefix(run, "20") {
			year, _ = strconv.Atoi(run)
			continue
		}
		if day == 0 && len(run) <= 2 {
			day, _ = strconv.Atoi(run)
		}
	}
	if year == 0 {
		return time.Time{}, false
	}
	if day == 0 {
		day = 1
	}

	return time.Date(year, month, day, 0, 0, 0, 0, time.Local), true
}

// digitRuns returns the maximal runs of consecutive digits in s, in order.
// Ordinal suffixes (21st, 8th) need no special handling since letters end a
// run.
func digitRuns(s string) []string {
	var runs []string
	start := -1
	for i, r := range s {
		if r >= '0' && r <= '9' {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			runs = append(runs, s[start:i])
			start = -1
		}
	}
	if start >= 0 {
		runs = append(runs, s[start:])
	}
	return runs
}

// IsUpcoming reports whether the event is still worth promoting at the given
// instant. An event stays upcoming through the last second of its parsed
// month, so "November 2026" is promoted for the whole of November.
// Unparseable dates are kept (fail-open) so a typo never hides an event.
func IsUpcoming(event models.ChurchEvent, now time.Time) bool {
	d, ok := ParseEventDate(event.Date)
	if !ok {
		return true
	}
	monthEnd := time.Date(d.Year(), d.Month()+1, 0, 23, 59, 59, 0, d.Location())
	return !monthEnd.Before(now)
}

// UpcomingEvents filters to events still upcoming at now and sorts them
// soonest first. Events with equal or unparseable dates keep their input
// order, and the input slice is never modified.
func UpcomingEvents(events []models.ChurchEvent, now time.Time) []models.ChurchEvent {
	upcoming := make([]models.ChurchEvent, 0, len(events))
	for _, ev := range events {
		if IsUpcoming(ev, now) {
			upcoming = append(upcoming, ev)
		}
	}
	sort.SliceStable(upcoming, func(i, j int) bool {
		di, oki := ParseEventDate(upcoming[i].Date)
		dj, okj := ParseEventDate(upcoming[j].Date)
		if !oki || !okj {
			return false
		}
		return di.Before(dj)
	})
	return upcoming
}

// CountdownText renders the promotional countdown phrase for an event.
// The week/month thresholds are display heuristics, not calendar math.
func CountdownText(event models.ChurchEvent, now time.Time) string {
	if !IsUpcoming(event, now) {
		return ""
	}
	d, ok := ParseEventDate(event.Date)
	if !ok {
		return ""
	}
	days := int(math.Ceil(d.Sub(now).Hours() / 24))
	switch {
	case days <= 0:
		return "Happening this month!"
	case days == 1:
		return "Starts tomorrow!"
	case days <= 7:
		return "Starts in " + strconv.Itoa(days) + " days!"
	case days <= 28:
		weeks := days / 7
		return strconv.Itoa(weeks) + " week" + plural(weeks) + " away"
	default:
		months := int(math.Round(float64(days) / 30))
		return strconv.Itoa(months) + " month" + plural(months) + " away"
	}
}

// PromoEvent picks the soonest upcoming event starting within the next 60
// days, for the one-time promotional popup. Returns false when nothing
// qualifies.
func PromoEvent(events []models.ChurchEvent, now time.Time) (models.ChurchEvent, bool) {
	for _, ev := range UpcomingEvents(events, now) {
		d, ok := ParseEventDate(ev.Date)
		if !ok {
			continue
		}
		if d.Sub(now).Hours()/24 <= 60 {
			return ev, true
		}
	}
	return models.ChurchEvent{}, false
}

func plural(n int) string {
	if n > 1 {
		return "s"
	}
	return ""
}
