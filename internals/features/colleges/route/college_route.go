package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ainexus_backend/internals/features/colleges/controller"
)

func CollegeRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewCollegeController(db)
	colleges := api.Group("/colleges")
	colleges.Get("/", ctrl.List)
	colleges.Post("/", ctrl.Create)
	colleges.Get("/:id", ctrl.GetByID)
	colleges.Put("/:id", ctrl.Update)
	colleges.Delete("/:id", ctrl.Delete)
}
