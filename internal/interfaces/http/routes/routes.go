package routes

import (
	"github.com/PavaniTiago/felice-endomarketing-api/internal/interfaces/http/handlers"
	"github.com/PavaniTiago/felice-endomarketing-api/internal/interfaces/http/middleware"
	"github.com/gofiber/fiber/v2"
)

// Version é exibida no health check
const Version = "1.0.0"

func SetupRoutes(app *fiber.App, h *handlers.Handlers, authMiddleware fiber.Handler) {
	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "healthy",
			"version": Version,
		})
	})

	middleware.SetupRouteGroups(app, authMiddleware,
		func(public fiber.Router) {
			RegisterKioskRoutes(public, h)
		},
		func(admin fiber.Router) {
			RegisterAdminRoutes(admin, h)
		},
	)
}
