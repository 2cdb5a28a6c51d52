package details

import (
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"skillmatch_backend/internals/constants"
	prefRoute "skillmatch_backend/internals/features/preferences/route"
	resultRoute "skillmatch_backend/internals/features/results/route"
	surveyRoute "skillmatch_backend/internals/features/surveys/route"
	surveyService "skillmatch_backend/internals/features/surveys/service"
	rateLimiter "skillmatch_backend/internals/middlewares"
	authMiddleware "skillmatch_backend/internals/middlewares/auth"
	"skillmatch_backend/internals/upstream"
)

func UserRoutes(app *fiber.App, db *gorm.DB, rdb *redis.Client,
	store *surveyService.AttemptStore, apiClient *upstream.Client) {

	// 👤 Prefix user: /api/u/... — guard USER strict
	userGroup := app.Group("/api/u",
		rateLimiter.GlobalRateLimiter(),
		authMiddleware.AuthMiddleware(rdb),
		authMiddleware.OnlyRoles(
			constants.RoleErrorUser("pengerjaan survey"),
			constants.UserOnly...,
		),
	)
	surveyRoute.SurveyUserRoutes(userGroup, db, store, apiClient)
	resultRoute.ResultUserRoutes(userGroup, apiClient)

	// 🎨 Preferensi UI berlaku untuk semua role yang login
	meGroup := app.Group("/api/me",
		rateLimiter.GlobalRateLimiter(),
		authMiddleware.AuthMiddleware(rdb),
	)
	prefRoute.PreferenceUserRoutes(meGroup, db)
}
