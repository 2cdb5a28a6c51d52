package route

import (
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	identityController "skillmatch_backend/internals/features/identity/controller"
	rateLimiter "skillmatch_backend/internals/middlewares"
	authMiddleware "skillmatch_backend/internals/middlewares/auth"
	"skillmatch_backend/internals/upstream"
)

// SessionRoutes route identity: resolve (guest-only), me/logout/profile (authed),
// dev switch-role (dev mode).
func SessionRoutes(app *fiber.App, db *gorm.DB, rdb *redis.Client, apiClient *upstream.Client) {
	ctrl := identityController.NewSessionController(db, rdb, apiClient)

	// 🔓 Resolve session = padanan halaman login: hanya untuk guest
	app.Post("/api/auth/session",
		rateLimiter.SessionRateLimiter(),
		authMiddleware.GuestOnly(),
		ctrl.Resolve,
	)

	// 🧪 Dev tools (404 kalau bukan dev mode)
	app.Post("/api/session/dev/switch-role", ctrl.DevSwitchRole)

	// 🔐 Session info & profil
	session := app.Group("/api/session", authMiddleware.AuthMiddleware(rdb))
	session.Get("/me", ctrl.Me)
	session.Post("/logout", ctrl.Logout)
	session.Put("/profile", ctrl.UpdateProfile)
	session.Put("/profile/avatar", ctrl.UploadAvatar)
}
