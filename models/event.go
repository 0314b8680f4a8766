package models

// ChurchEvent is a dated gathering promoted on the site. Date and Time are
// free-text strings as written by the media team ("21st February 2026",
// "8th–10th May 2026", "November 2026"); parsing is best-effort downstream.
type ChurchEvent struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Date        string `json:"date" yaml:"date"`
	Time        string `json:"time" yaml:"time"`
	Location    string `json:"location" yaml:"location"`
	Description string `json:"description" yaml:"description"`
	Category    string `json:"category,omitempty" yaml:"category,omitempty"`
	Image       string `json:"image,omitempty" yaml:"image,omitempty"`
}
