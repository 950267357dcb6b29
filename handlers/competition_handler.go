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

type CompetitionHandler struct{}

func NewCompetitionHandler() *CompetitionHandler { return &CompetitionHandler{} }

// GET /competitions?q=
func (h *CompetitionHandler) List(c echo.Context) error {
	var items []models.Competition
	if err := database.DB.Find(&items).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]string{"error": "DB_QUERY_FAILED"})
	}

	if search := normalizeText(c.QueryParam("q")); search != "" {
		filtered := make([]models.Competition, 0, len(items))
		for _, it := range items {
			if strings.Contains(normalizeText(it.EventName), search) ||
				strings.Contains(normalizeText(it.Organizer), search) ||
				strings.Contains(normalizeText(it.Details), search) {
				filtered = append(filtered, it)
			}
		}
		items = filtered
	}

	sort.SliceStable(items, func(i, j int) bool {
		di, _ := calendar.NormalizeDate(items[i].Date)
		dj, _ := calendar.NormalizeDate(items[j].Date)
		return di < dj
	})

	return c.JSON(http.StatusOK, items)
}

// POST /admin/competitions
func (h *CompetitionHandler) Create(c echo.Context) error {
	var v models.Competition
	if err := c.Bind(&v); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]string{"error": "INVALID_PAYLOAD"})
	}

	if strings.TrimSpace(v.EventName) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{
			"error":  "VALIDATION_ERROR",
			"fields": map[string]string{"event_name": "event name is required"},
		})
	}

	v.PublicID = uuid.NewString()
	if err := database.DB.Create(&v).Error; err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, map[string]any{"id": v.ID, "public_id": v.PublicID})
}

// PUT /admin/competitions/:id
func (h *CompetitionHandler) Update(c echo.Context) error {
	id, err := mustID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]string{"error": "INVALID_ID"})
	}
	var it models.Competition
	if err := database.DB.First(&it, "id = ?", id).Error; err != nil {
		return echo.NewHTTPError(http.StatusNotFound, map[string]string{"error": "NOT_FOUND"})
	}
	var p models.Competition
	if err := c.Bind(&p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]string{"error": "INVALID_PAYLOAD"})
	}

	if p.EventName != "" {
		it.EventName = p.EventName
	}
	if p.Organizer != "" {
		it.Organizer = p.Organizer
	}
	if p.Scope != "" {
		it.Scope = p.Scope
	}
	if p.Prizes != "" {
		it.Prizes = p.Prizes
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

// DELETE /admin/competitions/:id
func (h *CompetitionHandler) Delete(c echo.Context) error {
	id, err := mustID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]string{"error": "INVALID_ID"})
	}
	tx := database.DB.Delete(&models.Competition{}, "id = ?", id)
	if tx.Error != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]string{"error": "DB_DELETE_FAILED"})
	}
	if tx.RowsAffected == 0 {
		return echo.NewHTTPError(http.StatusNotFound, map[string]string{"error": "NOT_FOUND"})
	}
	return c.NoContent(http.StatusNoContent)
}
