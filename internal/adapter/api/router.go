package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRouter(app *fiber.App, handler *PostHandler) {
	app.Use(logger.New())

	app.Get("/health", handler.HandleHealth)

	v1 := app.Group("/v1")
	v1.Post("/posts", handler.HandleGenerate)
	v1.Get("/usage", handler.HandleUsage)
	v1.Post("/usage/reset", handler.HandleUsageReset)
}
