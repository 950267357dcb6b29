package calendar

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/sreeraksha0123/campus-sync/metrics"
)

// RawRecord is a board record as handed over by a Source: an opaque
// identifier, loosely-typed field values, and the row creation time
// (used as a last-resort start date).
type RawRecord struct {
	ID        string
	Fields    map[string]string
	CreatedAt time.Time
}

// Source is one board feeding the calendar.
type Source interface {
	Name() string
	Fetch(ctx context.Context) ([]RawRecord, error)
}

// resolution is the ordered field lookup per board type: the first
// present key wins. Declared once here instead of ad hoc at call sites.
type resolution struct {
	title []string
	desc  []string
	start []string
	end   []string
}

var resolutions = map[string]resolution{
	"notices": {
		title: []string{"title"},
		desc:  []string{"details", "description"},
		start: []string{"date"},
		end:   []string{"endDate"},
	},
	"clubs": {
		title: []string{"eventName", "name", "title"},
		desc:  []string{"details", "desc", "description"},
		start: []string{"date", "eventDate"},
		end:   []string{"endDate", "toDate"},
	},
	"competitions": {
		title: []string{"eventName", "name", "title"},
		desc:  []string{"details", "description"},
		start: []string{"date", "eventDate"},
		end:   []string{"endDate", "toDate"},
	},
	"placements": {
		title: []string{"company", "title"},
		desc:  []string{"role", "details", "description"},
		start: []string{"deadline", "date", "startDate"},
		end:   []string{"endDate", "deadline"},
	},
}

var fallbackResolution = resolution{
	title: []string{"title", "name", "eventName", "company"},
	desc:  []string{"details", "desc", "role", "description"},
	start: []string{"date", "startDate", "eventDate", "deadline"},
	end:   []string{"endDate", "toDate", "deadline"},
}

func resolutionFor(typ string) resolution {
	if r, ok := resolutions[typ]; ok {
		return r
	}
	return fallbackResolution
}

func firstField(fields map[string]string, keys []string) string {
	for _, k := range keys {
		if v := fields[k]; v != "" {
			return v
		}
	}
	return ""
}

// Aggregator merges independent board sources into a day-indexed view.
type Aggregator struct {
	sources []Source
}

// NewAggregator builds an aggregator over the provided sources.
func NewAggregator(sources ...Source) (*Aggregator, error) {
	if len(sources) == 0 {
		return nil, errors.New("calendar: at least one source is required")
	}
	return &Aggregator{sources: sources}, nil
}

// Build fetches every source concurrently, waits for all of them, then
// merges the records into a fresh Index. A single record that cannot be
// dated is logged and skipped; a failed source fetch fails the whole
// pass so callers never see a partial-silent result.
func (a *Aggregator) Build(ctx context.Context) (Index, error) {
	type fetched struct {
		name    string
		records []RawRecord
		err     error
	}

	results := make([]fetched, len(a.sources))
	var wg sync.WaitGroup
	for i, src := range a.sources {
		wg.Add(1)
		go func(i int, src Source) {
			defer wg.Done()
			records, err := src.Fetch(ctx)
			results[i] = fetched{name: src.Name(), records: records, err: err}
		}(i, src)
	}
	wg.Wait()

	for _, r := range results {
		if r.err != nil {
			metrics.CalendarFetchFailures.Inc()
			return nil, fmt.Errorf("calendar: fetch %s: %w", r.name, r.err)
		}
	}

	idx := Index{}
	for _, r := range results {
		for _, rec := range r.records {
			mergeRecord(idx, r.name, rec)
		}
	}

	metrics.CalendarBuilds.Inc()
	return idx, nil
}

func mergeRecord(idx Index, typ string, rec RawRecord) {
	res := resolutionFor(typ)

	rawStart := firstField(rec.Fields, res.start)
	if rawStart == "" && !rec.CreatedAt.IsZero() {
		rawStart = rec.CreatedAt.Format(dayLayout)
	}
	start, ok := NormalizeDate(rawStart)
	if !ok {
		metrics.CalendarParseFailures.Inc()
		log.Printf("calendar: skipping %s record %s: unparseable date %q", typ, rec.ID, rawStart)
		return
	}

	end := start
	if rawEnd := firstField(rec.Fields, res.end); rawEnd != "" {
		if e, ok := NormalizeDate(rawEnd); ok {
			end = e
		}
	}

	title := firstField(rec.Fields, res.title)
	if title == "" {
		title = "Untitled Event"
	}

	ev := Event{
		ID:        rec.ID,
		Type:      typ,
		Title:     title,
		Desc:      firstField(rec.Fields, res.desc),
		Time:      rec.Fields["time"],
		Venue:     rec.Fields["venue"],
		StartDate: start,
		EndDate:   end,
	}

	days := []string{start}
	if end != start {
		days = DatesInRange(start, end)
	}
	for _, day := range days {
		if hasEvent(idx[day], ev.ID) {
			continue
		}
		idx[day] = append(idx[day], ev)
	}
}

func hasEvent(events []Event, id string) bool {
	for _, ev := range events {
		if ev.ID == id {
			return true
		}
	}
	return false
}
