package route

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	announcementRoute "ainexus_backend/internals/features/announcements/route"
	clubRoute "ainexus_backend/internals/features/clubs/route"
	collegeRoute "ainexus_backend/internals/features/colleges/route"
	coordinatorRoute "ainexus_backend/internals/features/coordinators/route"
	dashboardRoute "ainexus_backend/internals/features/dashboard/route"
	eventRoute "ainexus_backend/internals/features/events/route"
	memberRoute "ainexus_backend/internals/features/members/route"
)

// SetupRoutes mounts every feature under /api.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api")

	api.Get("/health", func(c *fiber.Ctx) error {
		sqlDB, err := db.DB()
		dbOK := err == nil && sqlDB.Ping() == nil
		return c.JSON(fiber.Map{
			"status": true,
			"data": fiber.Map{
				"service": "ai-nexus",
				"db":      dbOK,
				"time":    time.Now().Format("2006-01-02T15:04:05"),
			},
		})
	})

	dashboardRoute.DashboardRoutes(api, db)
	clubRoute.ClubRoutes(api, db)
	collegeRoute.CollegeRoutes(api, db)
	coordinatorRoute.CoordinatorRoutes(api, db)
	eventRoute.EventRoutes(api, db)
	memberRoute.MemberRoutes(api, db)
	announcementRoute.AnnouncementRoutes(api, db)
}
