package calendar

import (
	"sort"
	"time"

	ics "github.com/arran4/golang-ical"
)

// ICSFeed renders the index as an iCalendar document: one all-day
// VEVENT per distinct event, DTEND exclusive per RFC 5545.
func ICSFeed(idx Index) string {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//Campus Sync//Calendar//EN")

	days := make([]string, 0, len(idx))
	for day := range idx {
		days = append(days, day)
	}
	sort.Strings(days)

	seen := map[string]bool{}
	for _, day := range days {
		for _, ev := range idx[day] {
			if seen[ev.ID] {
				continue
			}
			seen[ev.ID] = true

			start, err := time.Parse(dayLayout, ev.StartDate)
			if err != nil {
				continue
			}
			end := start
			if t, err := time.Parse(dayLayout, ev.EndDate); err == nil {
				end = t
			}

			entry := cal.AddEvent(ev.ID)
			entry.SetSummary(ev.Title)
			entry.SetAllDayStartAt(start)
			entry.SetAllDayEndAt(end.AddDate(0, 0, 1))
			if ev.Desc != "" {
				entry.SetDescription(ev.Desc)
			}
			if ev.Venue != "" {
				entry.SetLocation(ev.Venue)
			}
		}
	}

	return cal.Serialize()
}
