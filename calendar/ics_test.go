package calendar

import (
	"strings"
	"testing"
)

func TestICSFeed(t *testing.T) {
	idx := Index{}
	ev := Event{
		ID:        "c1",
		Type:      "competitions",
		Title:     "Robotics League",
		Desc:      "Inter-college robotics",
		Venue:     "Main Auditorium",
		StartDate: "2025-02-27",
		EndDate:   "2025-03-01",
	}
	for _, day := range DatesInRange(ev.StartDate, ev.EndDate) {
		idx[day] = append(idx[day], ev)
	}

	feed := ICSFeed(idx)

	if !strings.Contains(feed, "BEGIN:VCALENDAR") || !strings.Contains(feed, "END:VCALENDAR") {
		t.Fatalf("not a calendar document:\n%s", feed)
	}
	// One VEVENT per distinct event, even though the span covers 3 days.
	if got := strings.Count(feed, "BEGIN:VEVENT"); got != 1 {
		t.Fatalf("got %d VEVENTs, want 1:\n%s", got, feed)
	}
	if !strings.Contains(feed, "UID:c1") {
		t.Fatalf("missing UID:\n%s", feed)
	}
	if !strings.Contains(feed, "SUMMARY:Robotics League") {
		t.Fatalf("missing summary:\n%s", feed)
	}
	if !strings.Contains(feed, "DTSTART;VALUE=DATE:20250227") {
		t.Fatalf("missing all-day start:\n%s", feed)
	}
	// Exclusive end: the day after the inclusive span.
	if !strings.Contains(feed, "DTEND;VALUE=DATE:20250302") {
		t.Fatalf("missing exclusive end:\n%s", feed)
	}
	if !strings.Contains(feed, "LOCATION:Main Auditorium") {
		t.Fatalf("missing location:\n%s", feed)
	}
}

func TestICSFeedSkipsBadDates(t *testing.T) {
	idx := Index{
		"2025-06-03": {{ID: "x1", Title: "Broken", StartDate: "not-a-date"}},
	}
	feed := ICSFeed(idx)
	if strings.Contains(feed, "BEGIN:VEVENT") {
		t.Fatalf("undated event serialized:\n%s", feed)
	}
}
