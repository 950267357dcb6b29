package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/sreeraksha0123/campus-sync/calendar"
)

type stubSource struct {
	name    string
	records []calendar.RawRecord
	err     error
}

func (s *stubSource) Name() string { return s.name }

func (s *stubSource) Fetch(ctx context.Context) ([]calendar.RawRecord, error) {
	return s.records, s.err
}

func newCalendarHandler(t *testing.T, sources ...calendar.Source) *CalendarHandler {
	t.Helper()
	agg, err := calendar.NewAggregator(sources...)
	if err != nil {
		t.Fatal(err)
	}
	return NewCalendarHandler(agg)
}

func calendarRequest(path string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestGetIndex(t *testing.T) {
	h := newCalendarHandler(t, &stubSource{name: "notices", records: []calendar.RawRecord{
		{ID: "n1", Fields: map[string]string{"title": "Holiday", "date": "2025-06-03"}},
	}})

	c, rec := calendarRequest("/calendar")
	if err := h.GetIndex(c); err != nil {
		t.Fatal(err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var body struct {
		Events map[string][]calendar.Event `json:"events"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	events := body.Events["2025-06-03"]
	if len(events) != 1 || events[0].Title != "Holiday" {
		t.Fatalf("unexpected index: %+v", body.Events)
	}
}

func TestGetIndexFetchFailure(t *testing.T) {
	h := newCalendarHandler(t, &stubSource{name: "notices", err: errors.New("db down")})

	c, _ := calendarRequest("/calendar")
	err := h.GetIndex(c)
	he, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected HTTPError, got %v", err)
	}
	if he.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", he.Code)
	}
}

func TestGetDay(t *testing.T) {
	h := newCalendarHandler(t, &stubSource{name: "notices", records: []calendar.RawRecord{
		{ID: "n1", Fields: map[string]string{"title": "Holiday", "date": "2025-06-03"}},
	}})

	c, rec := calendarRequest("/calendar/day/2025-06-04")
	c.SetParamNames("date")
	c.SetParamValues("2025-06-04")
	if err := h.GetDay(c); err != nil {
		t.Fatal(err)
	}

	// A day with nothing on it is an empty list, not null.
	if !strings.Contains(rec.Body.String(), `"events":[]`) {
		t.Fatalf("empty day should serialize as []: %s", rec.Body.String())
	}
}

func TestGetDayInvalidDate(t *testing.T) {
	h := newCalendarHandler(t, &stubSource{name: "notices"})

	c, _ := calendarRequest("/calendar/day/June-3rd")
	c.SetParamNames("date")
	c.SetParamValues("June-3rd")
	err := h.GetDay(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestGetLink(t *testing.T) {
	h := newCalendarHandler(t, &stubSource{name: "notices", records: []calendar.RawRecord{
		{ID: "n1", Fields: map[string]string{"title": "Holiday", "date": "2025-06-03"}},
	}})

	c, rec := calendarRequest("/calendar/link/n1")
	c.SetParamNames("id")
	c.SetParamValues("n1")
	if err := h.GetLink(c); err != nil {
		t.Fatal(err)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(body["url"], "https://calendar.google.com/calendar/render?") {
		t.Fatalf("url = %q", body["url"])
	}
}

func TestGetLinkNotFound(t *testing.T) {
	h := newCalendarHandler(t, &stubSource{name: "notices"})

	c, _ := calendarRequest("/calendar/link/ghost")
	c.SetParamNames("id")
	c.SetParamValues("ghost")
	err := h.GetLink(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %v", err)
	}
}

func TestGetICS(t *testing.T) {
	h := newCalendarHandler(t, &stubSource{name: "notices", records: []calendar.RawRecord{
		{ID: "n1", Fields: map[string]string{"title": "Holiday", "date": "2025-06-03"}},
	}})

	c, rec := calendarRequest("/calendar/feed.ics")
	if err := h.GetICS(c); err != nil {
		t.Fatal(err)
	}
	if ct := rec.Header().Get(echo.HeaderContentType); !strings.HasPrefix(ct, "text/calendar") {
		t.Fatalf("content type = %q", ct)
	}
	if !strings.Contains(rec.Body.String(), "BEGIN:VCALENDAR") {
		t.Fatalf("not an ics document: %s", rec.Body.String())
	}
}
