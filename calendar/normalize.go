package calendar

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const dayLayout = "2006-01-02"

var (
	reISODate       = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	reWeekdayPrefix = regexp.MustCompile(`(?i)^(sun|mon|tue|wed|thu|fri|sat)[a-z]*,?\s*`)
	reOrdinal       = regexp.MustCompile(`(?i)(\d+)(st|nd|rd|th)`)
	reDMY           = regexp.MustCompile(`^(\d{1,2})[/-](\d{1,2})[/-](\d{4})$`)
)

// Layouts tried after the structured rewrites above have been applied.
var looseLayouts = []string{
	"2 January 2006",
	"2 January, 2006",
	"2 Jan 2006",
	"2 Jan, 2006",
	"January 2, 2006",
	"January 2 2006",
	"Jan 2, 2006",
	"Jan 2 2006",
	"2006/01/02",
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// NormalizeDate converts an arbitrary raw date string into a canonical
// YYYY-MM-DD key. It never fails hard: unparseable input reports ok=false.
//
// Slash/dash dates of the form D/M/YYYY are read day-first (regional
// convention of the campus, not month-first).
func NormalizeDate(raw string) (string, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", false
	}

	// Already canonical: returned unchanged, no calendar validation.
	if reISODate.MatchString(s) {
		return s, true
	}

	s = reWeekdayPrefix.ReplaceAllString(s, "")
	s = reOrdinal.ReplaceAllString(s, "$1")
	s = strings.TrimSpace(s)

	if m := reDMY.FindStringSubmatch(s); m != nil {
		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		return fmt.Sprintf("%s-%02d-%02d", m[3], month, day), true
	}

	for _, layout := range looseLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t.Format(dayLayout), true
		}
	}

	return "", false
}
