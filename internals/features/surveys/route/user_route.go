package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	surveyController "skillmatch_backend/internals/features/surveys/controller"
	"skillmatch_backend/internals/features/surveys/service"
	"skillmatch_backend/internals/upstream"
)

// SurveyUserRoutes route pengerjaan survey (guard USER dipasang di group).
func SurveyUserRoutes(api fiber.Router, db *gorm.DB, store *service.AttemptStore, apiClient *upstream.Client) {
	browseCtrl := surveyController.NewSurveyBrowseController(apiClient)
	attemptCtrl := surveyController.NewAttemptController(db, store, apiClient)

	// 📋 Daftar survey yang bisa dikerjakan
	surveyRoutes := api.Group("/surveys")
	surveyRoutes.Get("/", browseCtrl.GetAll)

	// 📝 Attempt state machine
	attemptRoutes := api.Group("/attempts")
	attemptRoutes.Post("/:surveyId/start", attemptCtrl.Start)
	attemptRoutes.Get("/:surveyId", attemptCtrl.State)
	attemptRoutes.Get("/:surveyId/current", attemptCtrl.Current)
	attemptRoutes.Post("/:surveyId/answers", attemptCtrl.SelectOption)
	attemptRoutes.Post("/:surveyId/advance", attemptCtrl.Advance)
	attemptRoutes.Post("/:surveyId/retreat", attemptCtrl.Retreat)
	attemptRoutes.Post("/:surveyId/submit", attemptCtrl.Submit)
}
