package line

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
)

const DefaultAPIBase = "https://api.line.me"

// Replier delivers reply messages for a webhook event.
type Replier interface {
	Reply(ctx context.Context, replyToken string, messages []Message) error
}

type Client struct {
	AccessToken string
	APIBase     string
	Timeout     time.Duration
}

func NewClient(accessToken, apiBase string, timeout time.Duration) *Client {
	if apiBase == "" {
		apiBase = DefaultAPIBase
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{AccessToken: accessToken, APIBase: apiBase, Timeout: timeout}
}

type replyRequest struct {
	ReplyToken string    `json:"replyToken"`
	Messages   []Message `json:"messages"`
}

func (c *Client) Reply(ctx context.Context, replyToken string, messages []Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if replyToken == "" {
		return fmt.Errorf("line reply: empty reply token")
	}
	if len(messages) == 0 {
		return nil
	}

	agent := fiber.Post(c.APIBase + "/v2/bot/message/reply")
	agent.Set(fiber.HeaderAuthorization, "Bearer "+c.AccessToken)
	agent.JSON(replyRequest{ReplyToken: replyToken, Messages: messages})
	agent.Timeout(c.Timeout)

	code, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return fmt.Errorf("line reply: %w", errors.Join(errs...))
	}
	if code != fiber.StatusOK {
		return fmt.Errorf("line reply: status %d: %s", code, body)
	}
	return nil
}
