package calendar

// Event is the uniform representation of any board record once its date
// span has been canonicalised. ID is the source record's opaque
// identifier and is what per-day deduplication keys on.
type Event struct {
	ID        string `json:"id"`
	Type      string `json:"type"` // notices | clubs | competitions | placements
	Title     string `json:"title"`
	Desc      string `json:"desc"`
	Time      string `json:"time,omitempty"`
	Venue     string `json:"venue,omitempty"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// Index maps a canonical YYYY-MM-DD key to the events whose span covers
// that day. It is rebuilt in full on every aggregation pass and never
// persisted.
type Index map[string][]Event

// Day returns the events covering the given canonical date key.
func (idx Index) Day(date string) []Event {
	return idx[date]
}

// Find returns the first event carrying the given identifier, scanning
// day lists in no particular order.
func (idx Index) Find(id string) (Event, bool) {
	for _, events := range idx {
		for _, ev := range events {
			if ev.ID == id {
				return ev, true
			}
		}
	}
	return Event{}, false
}
