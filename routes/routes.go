package routes

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/sreeraksha0123/campus-sync/calendar"
	"github.com/sreeraksha0123/campus-sync/config"
	"github.com/sreeraksha0123/campus-sync/database"
	"github.com/sreeraksha0123/campus-sync/handlers"
	"github.com/sreeraksha0123/campus-sync/llm"
	"github.com/sreeraksha0123/campus-sync/middlewares"
)

// Register wires all HTTP routes.
func Register(e *echo.Echo, cfg *config.Config) {
	// ===== Handlers (shared singletons) =====
	auth := handlers.NewAuthHandler(cfg.JWTSecret)
	notice := handlers.NewNoticeHandler()
	club := handlers.NewClubHandler()
	comp := handlers.NewCompetitionHandler()
	plc := handlers.NewPlacementHandler()
	set := handlers.NewSettingsHandler()

	now := time.Now()
	agg, err := calendar.NewAggregator(
		&calendar.NoticeSource{DB: database.DB},
		&calendar.ClubEventSource{DB: database.DB},
		&calendar.CompetitionSource{DB: database.DB},
		&calendar.PlacementSource{DB: database.DB},
		&calendar.RecurrenceSource{DB: database.DB, From: now.AddDate(0, -6, 0), To: now.AddDate(0, 6, 0)},
	)
	if err != nil {
		log.Fatalf("calendar aggregator: %v", err)
	}
	cal := handlers.NewCalendarHandler(agg)

	extractor := &llm.Extractor{
		Client: llm.NewClient(cfg.GeminiAPIKey),
		Model:  cfg.GeminiModel,
	}
	poster := handlers.NewPosterHandler(extractor)

	// ===== Public =====
	e.GET("/health", handlers.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	e.POST("/auth/signup", auth.Signup)
	e.POST("/auth/login", auth.Login)
	e.POST("/admin/login", auth.AdminLogin)

	authMW := middlewares.RequireAuth(cfg.JWTSecret)

	// ===== Signed-in users (student or admin) =====
	app := e.Group("", authMW, middlewares.RequireRole("student", "admin"))

	app.GET("/notices", notice.List)
	app.GET("/clubs", club.ListProfiles)
	app.GET("/clubs/:id/events", club.ListClubEvents)
	app.GET("/competitions", comp.List)
	app.GET("/placements", plc.List)

	app.GET("/calendar", cal.GetIndex)
	app.GET("/calendar/day/:date", cal.GetDay)
	app.GET("/calendar/link/:id", cal.GetLink)
	app.GET("/calendar/feed.ics", cal.GetICS)

	app.GET("/settings/theme", set.GetTheme)
	app.PUT("/settings/theme", set.PutTheme)

	// ===== Admin =====
	admin := e.Group("/admin", authMW, middlewares.RequireRole("admin"))

	admin.POST("/notices", notice.Create)
	admin.PUT("/notices/:id", notice.Update)
	admin.DELETE("/notices/:id", notice.Delete)

	admin.POST("/clubs", club.CreateProfile)
	admin.PUT("/clubs/:id", club.UpdateProfile)
	admin.DELETE("/clubs/:id", club.DeleteProfile)

	admin.POST("/clubs/events", club.CreateEvent)
	admin.PUT("/clubs/events/:id", club.UpdateEvent)
	admin.DELETE("/clubs/events/:id", club.DeleteEvent)

	admin.POST("/competitions", comp.Create)
	admin.PUT("/competitions/:id", comp.Update)
	admin.DELETE("/competitions/:id", comp.Delete)

	admin.POST("/placements", plc.Create)
	admin.PUT("/placements/:id", plc.Update)
	admin.DELETE("/placements/:id", plc.Delete)

	admin.POST("/posters/extract", poster.Extract)
}
