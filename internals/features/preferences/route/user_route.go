package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	prefController "skillmatch_backend/internals/features/preferences/controller"
)

func PreferenceUserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := prefController.NewUserPreferenceController(db)

	prefRoutes := api.Group("/preferences")
	prefRoutes.Get("/:key", ctrl.Get)
	prefRoutes.Put("/:key", ctrl.Put)
}
