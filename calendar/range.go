package calendar

import "time"

// DatesInRange returns every calendar day from start to end inclusive as
// canonical YYYY-MM-DD keys. Month, year and leap-day rollover come from
// time.AddDate. An end before start yields an empty range; input that is
// not canonical yields nil.
func DatesInRange(start, end string) []string {
	from, err := time.Parse(dayLayout, start)
	if err != nil {
		return nil
	}
	to, err := time.Parse(dayLayout, end)
	if err != nil {
		return nil
	}

	var days []string
	for cur := from; !cur.After(to); cur = cur.AddDate(0, 0, 1) {
		days = append(days, cur.Format(dayLayout))
	}
	return days
}
