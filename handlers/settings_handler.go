package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sreeraksha0123/campus-sync/database"
	"github.com/sreeraksha0123/campus-sync/models"
)

const themeKey = "theme"

// SettingsHandler persists per-user preferences (currently the theme)
// instead of leaving them in ambient client storage.
type SettingsHandler struct{}

func NewSettingsHandler() *SettingsHandler { return &SettingsHandler{} }

type ThemeReq struct {
	Theme string `json:"theme"`
}

// GET /settings/theme
func (h *SettingsHandler) GetTheme(c echo.Context) error {
	userID, _ := c.Get("user_id").(uint)

	var s models.Setting
	if err := database.DB.Where("user_id = ? AND key = ?", userID, themeKey).First(&s).Error; err != nil {
		return c.JSON(http.StatusOK, map[string]string{"theme": "light"})
	}
	return c.JSON(http.StatusOK, map[string]string{"theme": s.Value})
}

// PUT /settings/theme
func (h *SettingsHandler) PutTheme(c echo.Context) error {
	userID, _ := c.Get("user_id").(uint)

	var req ThemeReq
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]string{"error": "INVALID_PAYLOAD"})
	}
	if req.Theme != "light" && req.Theme != "dark" {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]string{"error": "INVALID_THEME"})
	}

	var s models.Setting
	err := database.DB.Where("user_id = ? AND key = ?", userID, themeKey).First(&s).Error
	if err != nil {
		s = models.Setting{UserID: userID, Key: themeKey, Value: req.Theme}
		if err := database.DB.Create(&s).Error; err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, map[string]string{"error": "DB_WRITE_FAILED"})
		}
	} else {
		s.Value = req.Theme
		if err := database.DB.Save(&s).Error; err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, map[string]string{"error": "DB_WRITE_FAILED"})
		}
	}

	return c.JSON(http.StatusOK, map[string]string{"theme": s.Value})
}
