package utils

import (
	"time"

	"github.com/Ptr234/christheartMinistrieswebsitegg/models"
)

// Occurrence is a concrete start instant for a recurring service.
type Occurrence struct {
	Service models.RecurringService `json:"service"`
	Start   time.Time               `json:"start"`
}

// defaultOccurrenceService backs the next-service fallback when the weekly
// schedule yields nothing within the scan window. That only happens with a
// broken (empty) schedule, which LoadData already warns about.
var defaultOccurrenceService = models.RecurringService{
	ID:          "sunday-main",
	Title:       "Sunday Service",
	Session:     "Main Service",
	Days:        []time.Weekday{time.Sunday},
	StartMinute: 11 * 60,
	EndMinute:   14 * 60,
	Location:    "All Branches",
}

// ActiveService returns the service in progress at now, if any. Services are
// checked in declared order and the first match wins; the schedule is
// non-overlapping by construction, so order only matters if the
// configuration is wrong. An overnight service matches both the tail of its
// start day and the early hours of the following day.
func ActiveService(services []models.RecurringService, now time.Time) (models.RecurringService, bool) {
	minute := now.Hour()*60 + now.Minute()
	for _, svc := range services {
		if !svc.Overnight {
			if svc.OnDay(now.Weekday()) && minute >= svc.StartMinute && minute < svc.EndMinute {
				return svc, true
			}
			continue
		}
		if svc.OnDay(now.Weekday()) && minute >= svc.StartMinute {
			return svc, true
		}
		if svc.OnDay(previousWeekday(now.Weekday())) && minute < svc.EndMinute {
			return svc, true
		}
	}
	return models.RecurringService{}, false
}

// NextOccurrence finds the earliest service start strictly after now,
// scanning up to 8 days ahead to cover a full week plus the current partial
// day. The boolean reports whether a scheduled occurrence was found; when it
// is false the returned occurrence is the hard-coded default one week out.
func NextOccurrence(services []models.RecurringService, now time.Time) (Occurrence, bool) {
	for offset := 0; offset <= 8; offset++ {
		day := now.AddDate(0, 0, offset)
		var best *Occurrence
		for _, svc := range services {
			if !svc.OnDay(day.Weekday()) {
				continue
			}
			start := time.Date(day.Year(), day.Month(), day.Day(),
				svc.StartMinute/60, svc.StartMinute%60, 0, 0, now.Location())
			if !start.After(now) {
				continue
			}
			if best == nil || start.Before(best.Start) {
				best = &Occurrence{Service: svc, Start: start}
			}
		}
		if best != nil {
			return *best, true
		}
	}

	week := now.AddDate(0, 0, 7)
	svc := defaultOccurrenceService
	start := time.Date(week.Year(), week.Month(), week.Day(),
		svc.StartMinute/60, svc.StartMinute%60, 0, 0, now.Location())
	return Occurrence{Service: svc, Start: start}, false
}

// SplitCountdown breaks a duration into the days/hours/minutes/seconds shown
// by the homepage countdown. Negative durations clamp to zero.
func SplitCountdown(d time.Duration) (days, hours, minutes, seconds int) {
	if d < 0 {
		d = 0
	}
	total := int(d.Seconds())
	days = total / 86400
	hours = (total % 86400) / 3600
	minutes = (total % 3600) / 60
	seconds = total % 60
	return
}

func previousWeekday(d time.Weekday) time.Weekday {
	return (d + 6) % 7
}
