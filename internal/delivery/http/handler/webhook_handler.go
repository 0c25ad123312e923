package handler

import (
	"html"

	"github.com/evandrarf/words7000-bot/internal/delivery/http/domain"
	"github.com/evandrarf/words7000-bot/internal/delivery/http/entity"
	"github.com/evandrarf/words7000-bot/internal/delivery/http/usecase"
	"github.com/evandrarf/words7000-bot/internal/pkg/response"
	"github.com/evandrarf/words7000-bot/internal/pkg/validate"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
)

type (
	WebhookHandler interface {
		Callback(ctx *fiber.Ctx) error
		Landing(ctx *fiber.Ctx) error
	}

	webhookHandler struct {
		validator  *validate.Validator
		logger     *logrus.Logger
		usecase    usecase.BotUsecase
		landingURL string
	}
)

func NewWebhookHandler(validator *validate.Validator, logger *logrus.Logger, usecase usecase.BotUsecase, landingURL string) WebhookHandler {
	return &webhookHandler{
		validator:  validator,
		logger:     logger,
		usecase:    usecase,
		landingURL: landingURL,
	}
}

// POST /callback
func (h *webhookHandler) Callback(ctx *fiber.Ctx) error {
	var req entity.WebhookRequest
	if err := h.validator.ParseAndValidate(ctx, &req); err != nil {
		return response.NewFailed(domain.WEBHOOK_INVALID_BODY, err, h.logger).Send(ctx)
	}

	results := h.usecase.HandleEvents(ctx.UserContext(), req.Events)
	meta := fiber.Map{"request_id": ctx.Locals("requestid"), "events": len(results)}

	failed := lo.CountBy(results, func(r entity.EventResult) bool { return r.Status == entity.EventStatusFailed })
	if failed > 0 {
		h.logger.WithFields(logrus.Fields{
			"failed": failed,
			"total":  len(results),
		}).Warn("webhook delivery had failing events")
		// the platform redelivers on a non-2xx answer
		return response.NewPartialFailure(domain.WEBHOOK_HANDLE_FAILED, results, meta).Send(ctx)
	}

	return response.NewSuccess(domain.WEBHOOK_HANDLE_SUCCESS, results, meta).Send(ctx)
}

// GET /
func (h *webhookHandler) Landing(ctx *fiber.Ctx) error {
	if h.landingURL == "" {
		return fiber.ErrNotFound
	}
	url := html.EscapeString(h.landingURL)
	ctx.Type("html", "utf-8")
	return ctx.SendString(`<!DOCTYPE html><html><head><meta http-equiv="refresh" content="0; url=` + url +
		`"></head><body><a href="` + url + `">words7000</a></body></html>`)
}
