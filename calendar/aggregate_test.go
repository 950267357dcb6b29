package calendar

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

type stubSource struct {
	name    string
	records []RawRecord
	err     error
}

func (s *stubSource) Name() string { return s.name }

func (s *stubSource) Fetch(ctx context.Context) ([]RawRecord, error) {
	return s.records, s.err
}

func TestNewAggregatorRequiresSources(t *testing.T) {
	if _, err := NewAggregator(); err == nil {
		t.Fatal("expected error for zero sources")
	}
}

func TestBuildMergesSources(t *testing.T) {
	notices := &stubSource{name: "notices", records: []RawRecord{
		{ID: "n1", Fields: map[string]string{
			"title":   "Hackathon Registration",
			"details": "Register by Friday",
			"date":    "3rd June 2025",
		}},
	}}
	placements := &stubSource{name: "placements", records: []RawRecord{
		{ID: "p1", Fields: map[string]string{
			"company": "Acme Corp",
			"role":    "SDE Intern",
			"date":    "2025-06-01",
			"endDate": "2025-06-03",
		}},
	}}

	agg, err := NewAggregator(notices, placements)
	if err != nil {
		t.Fatal(err)
	}
	idx, err := agg.Build(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	if got := len(idx.Day("2025-06-01")); got != 1 {
		t.Fatalf("June 1: got %d events, want 1", got)
	}
	if got := len(idx.Day("2025-06-02")); got != 1 {
		t.Fatalf("June 2: got %d events, want 1", got)
	}
	if got := len(idx.Day("2025-06-03")); got != 2 {
		t.Fatalf("June 3: got %d events, want 2", got)
	}

	ev, ok := idx.Find("p1")
	if !ok {
		t.Fatal("placement event not found")
	}
	if ev.Type != "placements" || ev.Title != "Acme Corp" || ev.Desc != "SDE Intern" {
		t.Fatalf("unexpected placement event: %+v", ev)
	}
	if ev.StartDate != "2025-06-01" || ev.EndDate != "2025-06-03" {
		t.Fatalf("unexpected placement span: %+v", ev)
	}
}

func TestBuildMultiDaySpanAppearsOncePerDay(t *testing.T) {
	src := &stubSource{name: "competitions", records: []RawRecord{
		{ID: "c1", Fields: map[string]string{
			"eventName": "Robotics League",
			"date":      "2025-02-27",
			"endDate":   "2025-03-01",
		}},
	}}
	agg, _ := NewAggregator(src)
	idx, err := agg.Build(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	if len(idx) != 3 {
		t.Fatalf("got %d day keys, want 3", len(idx))
	}
	for _, day := range []string{"2025-02-27", "2025-02-28", "2025-03-01"} {
		events := idx.Day(day)
		if len(events) != 1 || events[0].ID != "c1" {
			t.Fatalf("day %s: got %+v, want single c1", day, events)
		}
	}
}

func TestBuildDeduplicatesByID(t *testing.T) {
	// The same record arriving twice from a source must not double up on
	// any day.
	rec := RawRecord{ID: "n1", Fields: map[string]string{
		"title": "Exam Schedule",
		"date":  "2025-06-03",
	}}
	src := &stubSource{name: "notices", records: []RawRecord{rec, rec}}
	agg, _ := NewAggregator(src)
	idx, err := agg.Build(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if got := len(idx.Day("2025-06-03")); got != 1 {
		t.Fatalf("got %d events, want 1", got)
	}
}

func TestBuildSkipsUnparseableDates(t *testing.T) {
	src := &stubSource{name: "notices", records: []RawRecord{
		{ID: "n1", Fields: map[string]string{"title": "Soon", "date": "TBD"}},
		{ID: "n2", Fields: map[string]string{"title": "Fixed", "date": "2025-06-03"}},
	}}
	agg, _ := NewAggregator(src)
	idx, err := agg.Build(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := idx.Find("n1"); ok {
		t.Fatal("undated record leaked into the index")
	}
	if _, ok := idx.Find("n2"); !ok {
		t.Fatal("dated record missing from the index")
	}
}

func TestBuildFallsBackToCreatedAt(t *testing.T) {
	created := time.Date(2025, 6, 10, 14, 30, 0, 0, time.UTC)
	src := &stubSource{name: "notices", records: []RawRecord{
		{ID: "n1", CreatedAt: created, Fields: map[string]string{"title": "No Date"}},
	}}
	agg, _ := NewAggregator(src)
	idx, err := agg.Build(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	events := idx.Day("2025-06-10")
	if len(events) != 1 || events[0].ID != "n1" {
		t.Fatalf("got %+v, want n1 on creation day", events)
	}
}

func TestBuildUntitledFallback(t *testing.T) {
	src := &stubSource{name: "notices", records: []RawRecord{
		{ID: "n1", Fields: map[string]string{"date": "2025-06-03"}},
	}}
	agg, _ := NewAggregator(src)
	idx, err := agg.Build(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if ev, _ := idx.Find("n1"); ev.Title != "Untitled Event" {
		t.Fatalf("got title %q, want Untitled Event", ev.Title)
	}
}

func TestBuildFailsAtomically(t *testing.T) {
	ok := &stubSource{name: "notices", records: []RawRecord{
		{ID: "n1", Fields: map[string]string{"title": "Fine", "date": "2025-06-03"}},
	}}
	broken := &stubSource{name: "placements", err: errors.New("connection refused")}

	agg, _ := NewAggregator(ok, broken)
	idx, err := agg.Build(context.Background())
	if err == nil {
		t.Fatal("expected error when a source fails")
	}
	if idx != nil {
		t.Fatalf("got partial index %v, want nil", idx)
	}
	if !strings.Contains(err.Error(), "placements") {
		t.Fatalf("error %q does not name the failed source", err)
	}
}
