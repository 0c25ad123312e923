package middleware

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/segmentio/ksuid"
	"github.com/spf13/viper"
)

func TestRequestIDIsKSUID(t *testing.T) {
	m := NewMiddleware(&MiddlewareConfig{})
	app := fiber.New()
	app.Use(m.RequestIDMiddleware())
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(c.Locals("requestid").(string))
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	id := resp.Header.Get(fiber.HeaderXRequestID)
	if _, err := ksuid.Parse(id); err != nil {
		t.Fatalf("request id %q is not a ksuid: %v", id, err)
	}
}

func TestBodyLimit(t *testing.T) {
	cfg := viper.New()
	cfg.Set("api.webhook.max_body", 8)
	m := NewMiddleware(&MiddlewareConfig{Config: cfg})

	app := fiber.New()
	app.Post("/", m.BodyLimit(), func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	for body, want := range map[string]int{
		"short":            fiber.StatusOK,
		"much too long...": fiber.StatusRequestEntityTooLarge,
	} {
		resp, err := app.Test(httptest.NewRequest("POST", "/", strings.NewReader(body)))
		if err != nil {
			t.Fatalf("app.Test: %v", err)
		}
		if resp.StatusCode != want {
			t.Fatalf("body %q: status %d, want %d", body, resp.StatusCode, want)
		}
	}
}
