package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/Ptr234/christheartMinistrieswebsitegg/models"
)

const (
	ICSProductID = "-//Christ's Heart Ministries//Church Events//EN"
	icsUIDDomain = "christsheartministries.org"

	// Calendar apps only need a teaser; long descriptions are cut here.
	icsDescriptionLimit = 300
)

// BuildCalendar serializes events into an iCalendar document with one
// all-day VEVENT per event. Events whose date string cannot be parsed are
// skipped: an event that cannot be placed on a date cannot be scheduled.
// The whole document is built in memory and returned as one string.
func BuildCalendar(events []models.ChurchEvent, now time.Time) string {
	var b strings.Builder

	writeLine(&b, "BEGIN:VCALENDAR")
	writeLine(&b, "VERSION:2.0")
	writeLine(&b, "PRODID:"+ICSProductID)
	writeLine(&b, "CALSCALE:GREGORIAN")
	writeLine(&b, "METHOD:PUBLISH")
	writeLine(&b, "X-WR-CALNAME:Christ's Heart Ministries Events")

	stamp := now.UTC().Format("20060102T150405Z")
	for _, ev := range events {
		start, ok := ParseEventDate(ev.Date)
		if !ok {
			continue
		}
		end := start.AddDate(0, 0, 1) // exclusive end makes a one-day all-day block

		writeLine(&b, "BEGIN:VEVENT")
		writeLine(&b, fmt.Sprintf("UID:%s-%d@%s", ev.ID, start.Year(), icsUIDDomain))
		writeLine(&b, "DTSTAMP:"+stamp)
		writeLine(&b, "DTSTART;VALUE=DATE:"+start.Format("20060102"))
		writeLine(&b, "DTEND;VALUE=DATE:"+end.Format("20060102"))
		writeLine(&b, "SUMMARY:"+escapeICSText(ev.Name))
		writeLine(&b, "DESCRIPTION:"+escapeICSText(truncate(ev.Description, icsDescriptionLimit)))
		writeLine(&b, "LOCATION:"+escapeICSText(ev.Location))
		if ev.Category != "" {
			writeLine(&b, "CATEGORIES:"+escapeICSText(ev.Category))
		}
		writeLine(&b, "END:VEVENT")
	}

	writeLine(&b, "END:VCALENDAR")
	return b.String()
}

// writeLine appends one content line with the CRLF terminator the format
// requires.
func writeLine(b *strings.Builder, line string) {
	b.WriteString(line)
	b.WriteString("\r\n")
}

// escapeICSText escapes text property values per RFC 5545: backslash,
// semicolon and comma are backslash-escaped, newlines become literal \n.
func escapeICSText(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, ";", `\;`)
	s = strings.ReplaceAll(s, ",", `\,`)
	s = strings.ReplaceAll(s, "\r\n", `\n`)
	s = strings.ReplaceAll(s, "\n", `\n`)
	return s
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
