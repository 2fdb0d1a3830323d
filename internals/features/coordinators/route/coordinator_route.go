package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ainexus_backend/internals/features/coordinators/controller"
)

func CoordinatorRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewCoordinatorController(db)
	coordinators := api.Group("/coordinators")
	coordinators.Get("/", ctrl.List)
	coordinators.Post("/", ctrl.Create)
	coordinators.Get("/:id", ctrl.GetByID)
	coordinators.Put("/:id", ctrl.Update)
	coordinators.Delete("/:id", ctrl.Delete)
	coordinators.Post("/:id/image", ctrl.UploadImage)
}
