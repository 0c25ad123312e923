// Package audio reads the playable duration of the remote pronunciation
// files so audio replies can carry an accurate length.
package audio

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
)

type Prober interface {
	Duration(ctx context.Context, url string) (time.Duration, error)
}

type httpProber struct {
	timeout time.Duration
}

func NewHTTPProber(timeout time.Duration) Prober {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &httpProber{timeout: timeout}
}

func (p *httpProber) Duration(ctx context.Context, url string) (time.Duration, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	agent := fiber.Get(url)
	agent.Timeout(p.timeout)
	code, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return 0, fmt.Errorf("fetch %s: %w", url, errors.Join(errs...))
	}
	if code != fiber.StatusOK {
		return 0, fmt.Errorf("fetch %s: status %d", url, code)
	}
	return MP4Duration(body)
}
