package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ainexus_backend/internals/features/clubs/controller"
)

func ClubRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewClubController(db)
	clubs := api.Group("/clubs")
	clubs.Get("/", ctrl.List)
	clubs.Post("/", ctrl.Create)
	clubs.Get("/:id", ctrl.GetByID)
	clubs.Put("/:id", ctrl.Update)
	clubs.Delete("/:id", ctrl.Delete)
	clubs.Post("/:id/image", ctrl.UploadLogo)
}
