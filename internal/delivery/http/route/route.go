package route

import (
	"github.com/evandrarf/words7000-bot/internal/delivery/http/handler"
	"github.com/evandrarf/words7000-bot/internal/delivery/http/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

type RouteConfig struct {
	Api            *fiber.App
	Middleware     *middleware.Middleware
	WebhookHandler handler.WebhookHandler
}

func Setup(c *RouteConfig) {
	c.Api.Use(recover.New())
	c.Api.Use(c.Middleware.RequestIDMiddleware())
	c.Api.Use(logger.New(logger.Config{
		Format: "[${ip}]:${port} ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
	}))
	c.Api.Use(c.Middleware.CorsMiddleware())

	SetupWebhookRoute(c.Api, c.WebhookHandler, c.Middleware)
}
