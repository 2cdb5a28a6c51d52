package route

import (
	"github.com/gofiber/fiber/v2"

	proxyController "skillmatch_backend/internals/features/proxy/controller"
)

func ProxyRoutes(app *fiber.App, targetBaseURL string) {
	ctrl := proxyController.NewProxyController(targetBaseURL)
	app.All("/api/proxy/*", ctrl.Forward)
}
