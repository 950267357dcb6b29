package calendar

import (
	"net/url"
	"strings"
	"testing"
)

func parseLink(t *testing.T, link string) url.Values {
	t.Helper()
	u, err := url.Parse(link)
	if err != nil {
		t.Fatalf("bad link %q: %v", link, err)
	}
	return u.Query()
}

func TestGoogleCalendarLinkSingleDay(t *testing.T) {
	link := GoogleCalendarLink(Event{
		ID:        "n1",
		Title:     "Tech Talk",
		Desc:      "Guest lecture",
		Venue:     "Seminar Hall",
		StartDate: "2025-05-10",
		EndDate:   "2025-05-10",
	})

	if !strings.HasPrefix(link, "https://calendar.google.com/calendar/render?") {
		t.Fatalf("unexpected link prefix: %q", link)
	}

	q := parseLink(t, link)
	if got := q.Get("action"); got != "TEMPLATE" {
		t.Fatalf("action = %q", got)
	}
	if got := q.Get("text"); got != "Tech Talk" {
		t.Fatalf("text = %q", got)
	}
	// End is exclusive: a one-day event ends the following day.
	if got := q.Get("dates"); got != "20250510/20250511" {
		t.Fatalf("dates = %q, want 20250510/20250511", got)
	}
	if got := q.Get("details"); got != "Guest lecture" {
		t.Fatalf("details = %q", got)
	}
	if got := q.Get("location"); got != "Seminar Hall" {
		t.Fatalf("location = %q", got)
	}
}

func TestGoogleCalendarLinkMultiDay(t *testing.T) {
	link := GoogleCalendarLink(Event{
		Title:     "Hack Week",
		StartDate: "2025-06-01",
		EndDate:   "2025-06-03",
	})
	q := parseLink(t, link)
	if got := q.Get("dates"); got != "20250601/20250604" {
		t.Fatalf("dates = %q, want 20250601/20250604", got)
	}
}

func TestGoogleCalendarLinkDefaults(t *testing.T) {
	link := GoogleCalendarLink(Event{
		Title:     "Orientation",
		StartDate: "2025-08-01",
		EndDate:   "2025-08-01",
	})
	q := parseLink(t, link)
	if got := q.Get("details"); got != "Event via Campus Sync" {
		t.Fatalf("details = %q", got)
	}
	if got := q.Get("location"); got != "College Campus" {
		t.Fatalf("location = %q", got)
	}
}
