package models

import "time"

// RecurringService is one weekly time window in the church calendar.
// StartMinute/EndMinute are minutes after local midnight in [0,1440).
// For overnight services the end minute falls on the day after each
// weekday in Days (e.g. Friday 22:00 to Saturday 05:00).
type RecurringService struct {
	ID          string         `json:"id" yaml:"id"`
	Title       string         `json:"title" yaml:"title"`
	Session     string         `json:"session,omitempty" yaml:"session,omitempty"`
	Days        []time.Weekday `json:"days" yaml:"days"`
	StartMinute int            `json:"start_minute" yaml:"start_minute"`
	EndMinute   int            `json:"end_minute" yaml:"end_minute"`
	Location    string         `json:"location" yaml:"location"`
	Overnight   bool           `json:"overnight,omitempty" yaml:"overnight,omitempty"`
	StreamLinks []string       `json:"stream_links,omitempty" yaml:"stream_links,omitempty"`
}

// OnDay reports whether the service is scheduled to start on day.
func (s RecurringService) OnDay(day time.Weekday) bool {
	for _, d := range s.Days {
		if d == day {
			return true
		}
	}
	return false
}

type ScheduleEntry struct {
	Day     string `json:"day" yaml:"day"`
	Time    string `json:"time" yaml:"time"`
	Details string `json:"details" yaml:"details"`
}

type BranchSchedule struct {
	BranchID   string `json:"branch_id" yaml:"branch_id"`
	BranchName string `json:"branch_name" yaml:"branch_name"`
	City       string `json:"city" yaml:"city"`
	Times      string `json:"times" yaml:"times"`
}

type CellLocation struct {
	Area    string `json:"area" yaml:"area"`
	City    string `json:"city" yaml:"city"`
	Day     string `json:"day" yaml:"day"`
	Time    string `json:"time" yaml:"time"`
	Leader  string `json:"leader" yaml:"leader"`
	Contact string `json:"contact" yaml:"contact"`
}

// ServiceInfo is the editorial page content for a service type, including
// the per-branch schedule table shown on the service detail page.
type ServiceInfo struct {
	ID              string           `json:"id" yaml:"id"`
	Title           string           `json:"title" yaml:"title"`
	ShortDesc       string           `json:"short_desc" yaml:"short_desc"`
	Description     []string         `json:"description,omitempty" yaml:"description,omitempty"`
	Schedule        []ScheduleEntry  `json:"schedule,omitempty" yaml:"schedule,omitempty"`
	BranchSchedules []BranchSchedule `json:"branch_schedules,omitempty" yaml:"branch_schedules,omitempty"`
	CellLocations   []CellLocation   `json:"cell_locations,omitempty" yaml:"cell_locations,omitempty"`
}
