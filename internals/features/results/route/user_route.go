package route

import (
	"github.com/gofiber/fiber/v2"

	resultController "skillmatch_backend/internals/features/results/controller"
	"skillmatch_backend/internals/upstream"
)

func ResultUserRoutes(api fiber.Router, apiClient *upstream.Client) {
	ctrl := resultController.NewResultController(apiClient)

	resultRoutes := api.Group("/results")
	resultRoutes.Get("/", ctrl.History)
	resultRoutes.Post("/:surveyId/calculate", ctrl.Calculate)
	resultRoutes.Get("/:surveyId", ctrl.Get)
}
