package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ainexus_backend/internals/features/events/controller"
)

func EventRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewEventController(db)
	events := api.Group("/events")
	events.Get("/", ctrl.List)
	events.Post("/", ctrl.Create)
	events.Get("/:id", ctrl.GetByID)
	events.Put("/:id", ctrl.Update)
	events.Delete("/:id", ctrl.Delete)
	events.Post("/:id/image", ctrl.UploadImage)
}
