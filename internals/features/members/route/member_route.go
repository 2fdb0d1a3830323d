package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ainexus_backend/internals/features/members/controller"
)

func MemberRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewMemberController(db)
	members := api.Group("/members")
	members.Get("/", ctrl.List)
	members.Post("/", ctrl.Create)
	members.Get("/:id", ctrl.GetByID)
	members.Put("/:id", ctrl.Update)
	members.Delete("/:id", ctrl.Delete)
	members.Post("/:id/image", ctrl.UploadImage)
}
