package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	CalendarBuilds = promauto.NewCounter(prometheus.CounterOpts{
		Name: "campus_calendar_builds_total",
		Help: "Completed calendar aggregation passes.",
	})

	CalendarParseFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "campus_calendar_parse_failures_total",
		Help: "Records dropped from the calendar because no date could be normalised.",
	})

	CalendarFetchFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "campus_calendar_fetch_failures_total",
		Help: "Aggregation passes aborted by a source fetch error.",
	})

	PosterExtractions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "campus_poster_extractions_total",
		Help: "Poster extraction attempts by outcome.",
	}, []string{"status"})
)
