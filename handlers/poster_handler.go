package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/sreeraksha0123/campus-sync/database"
	"github.com/sreeraksha0123/campus-sync/llm"
	"github.com/sreeraksha0123/campus-sync/metrics"
	"github.com/sreeraksha0123/campus-sync/models"
)

// PosterHandler runs AI-assisted poster extraction for admins. The
// result is a draft for review; this endpoint never writes records.
type PosterHandler struct {
	Extractor *llm.Extractor
}

func NewPosterHandler(ex *llm.Extractor) *PosterHandler {
	return &PosterHandler{Extractor: ex}
}

type ExtractPosterReq struct {
	Category string `json:"category"`  // notices | clubs | competitions | placements
	MimeType string `json:"mime_type"` // e.g. image/png
	Data     string `json:"data"`      // base64 image payload
}

// POST /admin/posters/extract
func (h *PosterHandler) Extract(c echo.Context) error {
	var req ExtractPosterReq
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]string{"error": "INVALID_PAYLOAD"})
	}
	if strings.TrimSpace(req.Data) == "" || strings.TrimSpace(req.MimeType) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]string{"error": "MISSING_FIELDS"})
	}

	// Registered club names pin the extracted clubName field.
	var clubs []models.ClubProfile
	if err := database.DB.Select("name").Find(&clubs).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]string{"error": "DB_QUERY_FAILED"})
	}
	names := make([]string, 0, len(clubs))
	for _, club := range clubs {
		names = append(names, club.Name)
	}

	fields, err := h.Extractor.ExtractPoster(c.Request().Context(), req.Category, req.MimeType, req.Data, names)
	if err != nil {
		metrics.PosterExtractions.WithLabelValues("error").Inc()
		return echo.NewHTTPError(http.StatusBadGateway, map[string]string{"error": "EXTRACTION_FAILED", "message": err.Error()})
	}

	metrics.PosterExtractions.WithLabelValues("ok").Inc()
	return c.JSON(http.StatusOK, map[string]any{"category": req.Category, "fields": fields})
}
