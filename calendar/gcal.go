package calendar

import (
	"net/url"
	"strings"
	"time"
)

const (
	defaultDetails  = "Event via Campus Sync"
	defaultLocation = "College Campus"
)

// GoogleCalendarLink builds a Google Calendar "quick add" URL for the
// event. Google treats the end date as exclusive, so the inclusive
// EndDate is pushed forward by one calendar day; the start is encoded
// as-is. Pure string construction, no I/O.
func GoogleCalendarLink(ev Event) string {
	start := strings.ReplaceAll(ev.StartDate, "-", "")

	end := start
	if t, err := time.Parse(dayLayout, ev.EndDate); err == nil {
		end = t.AddDate(0, 0, 1).Format("20060102")
	} else if t, err := time.Parse(dayLayout, ev.StartDate); err == nil {
		end = t.AddDate(0, 0, 1).Format("20060102")
	}

	details := ev.Desc
	if details == "" {
		details = defaultDetails
	}
	location := ev.Venue
	if location == "" {
		location = defaultLocation
	}

	v := url.Values{}
	v.Set("action", "TEMPLATE")
	v.Set("text", ev.Title)
	v.Set("dates", start+"/"+end)
	v.Set("details", details)
	v.Set("location", location)

	return "https://calendar.google.com/calendar/render?" + v.Encode()
}
