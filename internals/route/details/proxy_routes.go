package details

import (
	"github.com/gofiber/fiber/v2"

	"skillmatch_backend/internals/configs"
	proxyRoute "skillmatch_backend/internals/features/proxy/route"
)

func ProxyRoutes(app *fiber.App) {
	proxyRoute.ProxyRoutes(app, configs.ProxyTargetBaseURL)
}
