package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sreeraksha0123/campus-sync/calendar"
)

// CalendarHandler serves the derived day-indexed view. The index is
// rebuilt in full on every request; nothing is cached or persisted.
type CalendarHandler struct {
	Agg *calendar.Aggregator
}

func NewCalendarHandler(agg *calendar.Aggregator) *CalendarHandler {
	return &CalendarHandler{Agg: agg}
}

// GET /calendar
func (h *CalendarHandler) GetIndex(c echo.Context) error {
	idx, err := h.Agg.Build(c.Request().Context())
	if err != nil {
		// All sources are one atomic unit: any fetch failure surfaces as
		// an empty result plus the error flag, never a partial index.
		return echo.NewHTTPError(http.StatusBadGateway, map[string]any{"error": "CALENDAR_FETCH_FAILED"})
	}
	return c.JSON(http.StatusOK, map[string]any{"events": idx})
}

// GET /calendar/day/:date
func (h *CalendarHandler) GetDay(c echo.Context) error {
	date := c.Param("date")
	if !isDateYYYYMMDD(date) {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]string{"error": "INVALID_DATE"})
	}

	idx, err := h.Agg.Build(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusBadGateway, map[string]any{"error": "CALENDAR_FETCH_FAILED"})
	}

	events := idx.Day(date)
	if events == nil {
		events = []calendar.Event{}
	}
	return c.JSON(http.StatusOK, map[string]any{"date": date, "events": events})
}

// GET /calendar/link/:id
func (h *CalendarHandler) GetLink(c echo.Context) error {
	idx, err := h.Agg.Build(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusBadGateway, map[string]any{"error": "CALENDAR_FETCH_FAILED"})
	}

	ev, ok := idx.Find(c.Param("id"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, map[string]string{"error": "NOT_FOUND"})
	}
	return c.JSON(http.StatusOK, map[string]string{"url": calendar.GoogleCalendarLink(ev)})
}

// GET /calendar/feed.ics
func (h *CalendarHandler) GetICS(c echo.Context) error {
	idx, err := h.Agg.Build(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusBadGateway, map[string]any{"error": "CALENDAR_FETCH_FAILED"})
	}
	return c.Blob(http.StatusOK, "text/calendar; charset=utf-8", []byte(calendar.ICSFeed(idx)))
}
