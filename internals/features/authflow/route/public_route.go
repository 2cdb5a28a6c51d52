package route

import (
	"github.com/gofiber/fiber/v2"

	authflowController "skillmatch_backend/internals/features/authflow/controller"
	rateLimiter "skillmatch_backend/internals/middlewares"
	"skillmatch_backend/internals/upstream"
)

// AuthFlowRoutes endpoint publik (tanpa session) dengan rate limiter ketat.
func AuthFlowRoutes(app *fiber.App, apiClient *upstream.Client) {
	ctrl := authflowController.NewAuthFlowController(apiClient)

	app.Post("/api/auth/verify/:token",
		rateLimiter.VerifyRateLimiter(),
		ctrl.VerifyEmail,
	)
	app.Post("/api/auth/reset-password/:token",
		rateLimiter.ResetPasswordRateLimiter(),
		ctrl.ResetPassword,
	)
}
