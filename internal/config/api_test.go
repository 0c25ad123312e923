package config

import (
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

func TestErrorHandler(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)

	api := NewAPI(viper.New(), log)
	api.Get("/missing", func(*fiber.Ctx) error { return fiber.ErrNotFound })
	api.Get("/boom", func(*fiber.Ctx) error { return errors.New("boom") })

	for path, want := range map[string]int{
		"/missing": fiber.StatusNotFound,
		"/boom":    fiber.StatusInternalServerError,
		"/nowhere": fiber.StatusNotFound,
	} {
		resp, err := api.Test(httptest.NewRequest("GET", path, nil))
		if err != nil {
			t.Fatalf("%s: %v", path, err)
		}
		if resp.StatusCode != want {
			t.Fatalf("%s: status %d, want %d", path, resp.StatusCode, want)
		}
	}
}

func TestNewLogger(t *testing.T) {
	cfg := viper.New()
	cfg.Set("log.level", "debug")
	cfg.Set("log.format", "json")

	log := NewLogger(cfg)
	if log.GetLevel() != logrus.DebugLevel {
		t.Fatalf("level = %s, want debug", log.GetLevel())
	}
	if _, ok := log.Formatter.(*logrus.JSONFormatter); !ok {
		t.Fatalf("formatter = %T, want JSON", log.Formatter)
	}

	cfg.Set("log.level", "loud")
	if NewLogger(cfg).GetLevel() != logrus.InfoLevel {
		t.Fatal("unknown level should fall back to info")
	}
}
