// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"skillmatch_backend/internals/configs"
	surveyService "skillmatch_backend/internals/features/surveys/service"
	routeDetails "skillmatch_backend/internals/route/details"
	"skillmatch_backend/internals/upstream"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB, rdb *redis.Client) {
	startTime = time.Now()

	apiClient := upstream.NewClient(configs.BackendBaseURL, 10*time.Second)
	attemptStore := surveyService.NewAttemptStore(rdb, configs.AttemptTTL)

	BaseRoutes(app)

	// ===================== PUBLIC (guest / rate-limited) =====================
	log.Println("[INFO] Setting up AuthFlow & Session routes...")
	routeDetails.PublicRoutes(app, db, rdb, apiClient)

	// ===================== PRIVATE (USER) =====================
	log.Println("[INFO] Setting up USER group...")
	routeDetails.UserRoutes(app, db, rdb, attemptStore, apiClient)

	// ===================== ADMIN =====================
	log.Println("[INFO] Setting up ADMIN group...")
	routeDetails.AdminRoutes(app, rdb, apiClient)

	// ===================== PROXY =====================
	log.Println("[INFO] Setting up Proxy routes...")
	routeDetails.ProxyRoutes(app)
}
