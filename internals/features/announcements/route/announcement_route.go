package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ainexus_backend/internals/features/announcements/controller"
)

func AnnouncementRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAnnouncementController(db)
	announcements := api.Group("/announcements")
	announcements.Get("/", ctrl.List)
	announcements.Post("/", ctrl.Create)
	announcements.Get("/:id", ctrl.GetByID)
	announcements.Put("/:id", ctrl.Update)
	announcements.Delete("/:id", ctrl.Delete)
}
