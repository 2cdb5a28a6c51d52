package details

import (
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	authflowRoute "skillmatch_backend/internals/features/authflow/route"
	identityRoute "skillmatch_backend/internals/features/identity/route"
	"skillmatch_backend/internals/upstream"
)

// PublicRoutes: resolve session (guest-only), verify email, reset password.
func PublicRoutes(app *fiber.App, db *gorm.DB, rdb *redis.Client, apiClient *upstream.Client) {
	identityRoute.SessionRoutes(app, db, rdb, apiClient)
	authflowRoute.AuthFlowRoutes(app, apiClient)
}
