package details

import (
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"

	adminRoute "skillmatch_backend/internals/features/admin/route"
	rateLimiter "skillmatch_backend/internals/middlewares"
	authMiddleware "skillmatch_backend/internals/middlewares/auth"
	"skillmatch_backend/internals/upstream"
)

func AdminRoutes(app *fiber.App, rdb *redis.Client, apiClient *upstream.Client) {
	// 🔐 Prefix admin: /api/a/... — auth di group, guard role per-fitur
	adminGroup := app.Group("/api/a",
		rateLimiter.GlobalRateLimiter(),
		authMiddleware.AuthMiddleware(rdb),
	)
	adminRoute.AdminRoutes(adminGroup, apiClient)
}
