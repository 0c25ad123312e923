package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/segmentio/ksuid"
	"github.com/sirupsen/logrus"
)

// RequestIDMiddleware tags every request with a sortable ksuid, stored in
// the "requestid" local and echoed in the X-Request-ID header.
func (m *Middleware) RequestIDMiddleware() fiber.Handler {
	return requestid.New(requestid.Config{
		Header: fiber.HeaderXRequestID,
		Generator: func() string {
			return ksuid.New().String()
		},
	})
}

// BodyLimit rejects webhook bodies larger than api.webhook.max_body bytes.
func (m *Middleware) BodyLimit() fiber.Handler {
	limit := m.getInt("api.webhook.max_body", 1<<20)
	return func(ctx *fiber.Ctx) error {
		if n := len(ctx.Body()); n > limit {
			m.logger().WithFields(logrus.Fields{
				"request_id": ctx.Locals("requestid"),
				"size":       n,
				"limit":      limit,
			}).Warn("webhook body too large")
			return fiber.ErrRequestEntityTooLarge
		}
		return ctx.Next()
	}
}
