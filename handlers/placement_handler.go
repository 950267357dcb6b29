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

type PlacementHandler struct{}

func NewPlacementHandler() *PlacementHandler { return &PlacementHandler{} }

// GET /placements?q=
func (h *PlacementHandler) List(c echo.Context) error {
	var jobs []models.Placement
	if err := database.DB.Find(&jobs).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]string{"error": "DB_QUERY_FAILED"})
	}

	if search := normalizeText(c.QueryParam("q")); search != "" {
		filtered := make([]models.Placement, 0, len(jobs))
		for _, j := range jobs {
			if strings.Contains(normalizeText(j.Company), search) ||
				strings.Contains(normalizeText(j.Role), search) {
				filtered = append(filtered, j)
			}
		}
		jobs = filtered
	}

	// Nearest deadline first.
	sort.SliceStable(jobs, func(i, j int) bool {
		di, _ := calendar.NormalizeDate(firstNonEmptyString(jobs[i].Deadline, jobs[i].Date))
		dj, _ := calendar.NormalizeDate(firstNonEmptyString(jobs[j].Deadline, jobs[j].Date))
		return di < dj
	})

	return c.JSON(http.StatusOK, jobs)
}

func firstNonEmptyString(a, b string) string {
	if a != "" {
		return a
	}
	return b
}

// POST /admin/placements
func (h *PlacementHandler) Create(c echo.Context) error {
	var v models.Placement
	if err := c.Bind(&v); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]string{"error": "INVALID_PAYLOAD"})
	}

	if strings.TrimSpace(v.Company) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{
			"error":  "VALIDATION_ERROR",
			"fields": map[string]string{"company": "company is required"},
		})
	}

	v.PublicID = uuid.NewString()
	if err := database.DB.Create(&v).Error; err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, map[string]any{"id": v.ID, "public_id": v.PublicID})
}

// PUT /admin/placements/:id
func (h *PlacementHandler) Update(c echo.Context) error {
	id, err := mustID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]string{"error": "INVALID_ID"})
	}
	var it models.Placement
	if err := database.DB.First(&it, "id = ?", id).Error; err != nil {
		return echo.NewHTTPError(http.StatusNotFound, map[string]string{"error": "NOT_FOUND"})
	}
	var p models.Placement
	if err := c.Bind(&p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]string{"error": "INVALID_PAYLOAD"})
	}

	if p.Company != "" {
		it.Company = p.Company
	}
	if p.Role != "" {
		it.Role = p.Role
	}
	if p.CTC != "" {
		it.CTC = p.CTC
	}
	if p.Eligibility != "" {
		it.Eligibility = p.Eligibility
	}
	if p.Details != "" {
		it.Details = p.Details
	}
	if p.Deadline != "" {
		it.Deadline = p.Deadline
	}
	if p.Date != "" {
		it.Date = p.Date
	}
	if p.EndDate != "" {
		it.EndDate = p.EndDate
	}

	if err := database.DB.Save(&it).Error; err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, it)
}

// DELETE /admin/placements/:id
func (h *PlacementHandler) Delete(c echo.Context) error {
	id, err := mustID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]string{"error": "INVALID_ID"})
	}
	tx := database.DB.Delete(&models.Placement{}, "id = ?", id)
	if tx.Error != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]string{"error": "DB_DELETE_FAILED"})
	}
	if tx.RowsAffected == 0 {
		return echo.NewHTTPError(http.StatusNotFound, map[string]string{"error": "NOT_FOUND"})
	}
	return c.NoContent(http.StatusNoContent)
}
