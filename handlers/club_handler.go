package handlers

import (
	"net/http"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/sreeraksha0123/campus-sync/calendar"
	"github.com/sreeraksha0123/campus-sync/database"
	"github.com/sreeraksha0123/campus-sync/models"
)

type ClubHandler struct{}

func NewClubHandler() *ClubHandler { return &ClubHandler{} }

/* ====================== Profiles ====================== */

// GET /clubs
func (h *ClubHandler) ListProfiles(c echo.Context) error {
	var clubs []models.ClubProfile
	if err := database.DB.Order("name").Find(&clubs).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]string{"error": "DB_QUERY_FAILED"})
	}
	return c.JSON(http.StatusOK, clubs)
}

// POST /admin/clubs
func (h *ClubHandler) CreateProfile(c echo.Context) error {
	var v models.ClubProfile
	if err := c.Bind(&v); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]string{"error": "INVALID_PAYLOAD"})
	}

	fields := map[string]string{}
	if strings.TrimSpace(v.Name) == "" {
		fields["name"] = "name is required"
	}
	if strings.TrimSpace(v.Desc) == "" {
		fields["desc"] = "description is required"
	}
	if len(fields) > 0 {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "VALIDATION_ERROR", "fields": fields})
	}

	v.PublicID = uuid.NewString()
	if err := database.DB.Create(&v).Error; err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, map[string]any{"id": v.ID, "public_id": v.PublicID})
}

// PUT /admin/clubs/:id
func (h *ClubHandler) UpdateProfile(c echo.Context) error {
	id, err := mustID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]string{"error": "INVALID_ID"})
	}
	var it models.ClubProfile
	if err := database.DB.First(&it, "id = ?", id).Error; err != nil {
		return echo.NewHTTPError(http.StatusNotFound, map[string]string{"error": "NOT_FOUND"})
	}
	var p models.ClubProfile
	if err := c.Bind(&p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]string{"error": "INVALID_PAYLOAD"})
	}

	if p.Name != "" {
		it.Name = p.Name
	}
	if p.Category != "" {
		it.Category = p.Category
	}
	if p.Desc != "" {
		it.Desc = p.Desc
	}
	if p.MeetingRule != "" {
		it.MeetingRule = p.MeetingRule
	}
	if p.MeetingVenue != "" {
		it.MeetingVenue = p.MeetingVenue
	}
	if p.MeetingTime != "" {
		it.MeetingTime = p.MeetingTime
	}

	if err := database.DB.Save(&it).Error; err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, it)
}

// DELETE /admin/clubs/:id
func (h *ClubHandler) DeleteProfile(c echo.Context) error {
	id, err := mustID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]string{"error": "INVALID_ID"})
	}
	tx := database.DB.Delete(&models.ClubProfile{}, "id = ?", id)
	if tx.Error != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]string{"error": "DB_DELETE_FAILED"})
	}
	if tx.RowsAffected == 0 {
		return echo.NewHTTPError(http.StatusNotFound, map[string]string{"error": "NOT_FOUND"})
	}
	return c.NoContent(http.StatusNoContent)
}

/* ====================== Events ====================== */

// GET /clubs/:id/events
//
// Organizer names arrive in slightly different spellings depending on
// who posted the event, so matching is normalized either-direction
// substring containment rather than equality.
func (h *ClubHandler) ListClubEvents(c echo.Context) error {
	id, err := mustID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]string{"error": "INVALID_ID"})
	}
	var club models.ClubProfile
	if err := database.DB.First(&club, "id = ?", id).Error; err != nil {
		return echo.NewHTTPError(http.StatusNotFound, map[string]string{"error": "NOT_FOUND"})
	}

	var events []models.ClubEvent
	if err := database.DB.Find(&events).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]string{"error": "DB_QUERY_FAILED"})
	}

	clubName := normalizeText(club.Name)
	mine := make([]models.ClubEvent, 0, len(events))
	for _, ev := range events {
		org := normalizeText(ev.Organizer)
		if org == "" {
			continue
		}
		if strings.Contains(org, clubName) || strings.Contains(clubName, org) {
			mine = append(mine, ev)
		}
	}

	sort.SliceStable(mine, func(i, j int) bool {
		di, _ := calendar.NormalizeDate(mine[i].Date)
		dj, _ := calendar.NormalizeDate(mine[j].Date)
		return di < dj
	})

	return c.JSON(http.StatusOK, mine)
}

// POST /admin/clubs/events
func (h *ClubHandler) CreateEvent(c echo.Context) error {
	var v models.ClubEvent
	if err := c.Bind(&v); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]string{"error": "INVALID_PAYLOAD"})
	}

	fields := map[string]string{}
	if strings.TrimSpace(v.EventName) == "" {
		fields["event_name"] = "event name is required"
	}
	if strings.TrimSpace(v.Organizer) == "" {
		fields["organizer"] = "organizer is required"
	}
	if len(fields) > 0 {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "VALIDATION_ERROR", "fields": fields})
	}

	v.PublicID = uuid.NewString()
	if err := database.DB.Create(&v).Error; err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, map[string]any{"id": v.ID, "public_id": v.PublicID})
}

// PUT /admin/clubs/events/:id
func (h *ClubHandler) UpdateEvent(c echo.Context) error {
	id, err := mustID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]string{"error": "INVALID_ID"})
	}
	var it models.ClubEvent
	if err := database.DB.First(&it, "id = ?", id).Error; err != nil {
		return echo.NewHTTPError(http.StatusNotFound, map[string]string{"error": "NOT_FOUND"})
	}
	var p models.ClubEvent
	if err := c.Bind(&p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]string{"error": "INVALID_PAYLOAD"})
	}

	if p.EventName != "" {
		it.EventName = p.EventName
	}
	if p.Organizer != "" {
		it.Organizer = p.Organizer
	}
	if p.Details != "" {
		it.Details = p.Details
	}
	if p.Date != "" {
		it.Date = p.Date
	}
	if p.EndDate != "" {
		it.EndDate = p.EndDate
	}
	if p.Time != "" {
		it.Time = p.Time
	}
	if p.Venue != "" {
		it.Venue = p.Venue
	}

	if err := database.DB.Save(&it).Error; err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, it)
}

// DELETE /admin/clubs/events/:id
func (h *ClubHandler) DeleteEvent(c echo.Context) error {
	id, err := mustID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]string{"error": "INVALID_ID"})
	}
	tx := database.DB.Delete(&models.ClubEvent{}, "id = ?", id)
	if tx.Error != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]string{"error": "DB_DELETE_FAILED"})
	}
	if tx.RowsAffected == 0 {
		return echo.NewHTTPError(http.StatusNotFound, map[string]string{"error": "NOT_FOUND"})
	}
	return c.NoContent(http.StatusNoContent)
}
