package route

import (
	"github.com/evandrarf/words7000-bot/internal/delivery/http/handler"
	"github.com/evandrarf/words7000-bot/internal/delivery/http/middleware"
	"github.com/gofiber/fiber/v2"
)

func SetupWebhookRoute(api *fiber.App, handler handler.WebhookHandler, m *middleware.Middleware) {
	api.Get("/", handler.Landing)
	api.Post("/callback", m.BodyLimit(), handler.Callback)
}
