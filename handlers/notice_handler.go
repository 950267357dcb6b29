package handlers

import (
	"net/http"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/sreeraksha0123/campus-sync/calendar"
	"github.com/sreeraksha0123/campus-sync/database"
	"github.com/sreeraksha0123/campus-sync/llm"
	"github.com/sreeraksha0123/campus-sync/models"
)

type NoticeHandler struct{}

func NewNoticeHandler() *NoticeHandler { return &NoticeHandler{} }

// GET /notices?dept=&year=&q=
//
// Filter rule (kept from the original deployment, confirmed policy):
// dept=All shows only general notices, while a specific department
// shows that department's notices plus general ones. Year works the
// same way around "General". Filters default to the caller's claims.
func (h *NoticeHandler) List(c echo.Context) error {
	dept := strings.TrimSpace(c.QueryParam("dept"))
	if dept == "" {
		if d, _ := c.Get("department").(string); d != "" {
			dept = d
		} else {
			dept = "All"
		}
	}
	year := strings.TrimSpace(c.QueryParam("year"))
	if year == "" {
		if y, _ := c.Get("year").(string); y != "" {
			year = llm.SanitizeTargetYear(y)
		} else {
			year = "All"
		}
	}
	search := normalizeText(c.QueryParam("q"))

	var notices []models.Notice
	if err := database.DB.Find(&notices).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]string{"error": "DB_QUERY_FAILED"})
	}

	filtered := make([]models.Notice, 0, len(notices))
	for _, n := range notices {
		var deptMatch bool
		if dept == "All" {
			deptMatch = n.TargetDept == "All"
		} else {
			deptMatch = n.TargetDept == "All" || n.TargetDept == dept
		}

		var yearMatch bool
		if year == "All" {
			yearMatch = n.TargetYear == "General"
		} else {
			yearMatch = n.TargetYear == "General" || n.TargetYear == year
		}

		searchMatch := search == "" ||
			strings.Contains(normalizeText(n.Title), search) ||
			strings.Contains(normalizeText(n.Details), search)

		if deptMatch && yearMatch && searchMatch {
			filtered = append(filtered, n)
		}
	}

	// Newest first by canonical date; undated notices sink to the end.
	sort.SliceStable(filtered, func(i, j int) bool {
		di, _ := calendar.NormalizeDate(filtered[i].Date)
		dj, _ := calendar.NormalizeDate(filtered[j].Date)
		return di > dj
	})

	return c.JSON(http.StatusOK, filtered)
}

// POST /admin/notices
func (h *NoticeHandler) Create(c echo.Context) error {
	var v models.Notice
	if err := c.Bind(&v); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]string{"error": "INVALID_PAYLOAD"})
	}

	fields := map[string]string{}
	if strings.TrimSpace(v.Title) == "" {
		fields["title"] = "title is required"
	}
	if isDateYYYYMMDD(v.Date) && isDateYYYYMMDD(v.EndDate) && v.EndDate < v.Date {
		fields["end_date"] = "must not precede the start date"
	}
	if len(fields) > 0 {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "VALIDATION_ERROR", "fields": fields})
	}

	if v.TargetDept == "" {
		v.TargetDept = "All"
	}
	if v.TargetYear == "" {
		v.TargetYear = "General"
	}
	v.PublicID = uuid.NewString()

	if err := database.DB.Create(&v).Error; err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, map[string]any{"id": v.ID, "public_id": v.PublicID})
}

// PUT /admin/notices/:id
func (h *NoticeHandler) Update(c echo.Context) error {
	id, err := mustID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]string{"error": "INVALID_ID"})
	}
	var it models.Notice
	if err := database.DB.First(&it, "id = ?", id).Error; err != nil {
		return echo.NewHTTPError(http.StatusNotFound, map[string]string{"error": "NOT_FOUND"})
	}
	var p models.Notice
	if err := c.Bind(&p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]string{"error": "INVALID_PAYLOAD"})
	}

	if p.Title != "" {
		it.Title = p.Title
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
	if p.TargetDept != "" {
		it.TargetDept = p.TargetDept
	}
	if p.TargetYear != "" {
		it.TargetYear = p.TargetYear
	}

	if err := database.DB.Save(&it).Error; err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, it)
}

// DELETE /admin/notices/:id
func (h *NoticeHandler) Delete(c echo.Context) error {
	id, err := mustID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]string{"error": "INVALID_ID"})
	}
	tx := database.DB.Delete(&models.Notice{}, "id = ?", id)
	if tx.Error != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]string{"error": "DB_DELETE_FAILED"})
	}
	if tx.RowsAffected == 0 {
		return echo.NewHTTPError(http.StatusNotFound, map[string]string{"error": "NOT_FOUND"})
	}
	return c.NoContent(http.StatusNoContent)
}
