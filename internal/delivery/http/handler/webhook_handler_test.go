package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/evandrarf/words7000-bot/internal/delivery/http/entity"
	"github.com/evandrarf/words7000-bot/internal/pkg/line"
	"github.com/evandrarf/words7000-bot/internal/pkg/validate"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type fakeBot struct {
	status string
	got    []entity.Event
}

func (b *fakeBot) HandleEvents(_ context.Context, events []entity.Event) []entity.EventResult {
	b.got = events
	results := make([]entity.EventResult, len(events))
	for i, e := range events {
		results[i] = entity.EventResult{Index: i, Type: e.Type, Status: b.status}
	}
	return results
}

func (b *fakeBot) HandleEvent(context.Context, entity.Event) ([]line.Message, error) {
	return nil, nil
}

type testResponse struct {
	Success bool                 `json:"success"`
	Message string               `json:"message"`
	Error   any                  `json:"error"`
	Data    []entity.EventResult `json:"data"`
}

func newTestApp(bot *fakeBot) *fiber.App {
	log := logrus.New()
	log.SetOutput(io.Discard)

	h := NewWebhookHandler(validate.NewValidator(), log, bot, "https://line.me/R/ti/p/@words7000")
	app := fiber.New()
	app.Post("/callback", h.Callback)
	app.Get("/", h.Landing)
	return app
}

func post(t *testing.T, app *fiber.App, body string) (int, testResponse) {
	t.Helper()
	req := httptest.NewRequest("POST", "/callback", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	var out testResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp.StatusCode, out
}

const twoEvents = `{
  "destination": "U0",
  "events": [
    {"type": "message", "replyToken": "r1", "source": {"type": "user", "userId": "u1"},
     "message": {"id": "1", "type": "text", "text": "得分"}},
    {"type": "postback", "replyToken": "r2", "source": {"type": "user", "userId": "u2"},
     "postback": {"data": "wid=12&type=check_word"}}
  ]
}`

func TestCallbackSuccess(t *testing.T) {
	bot := &fakeBot{status: entity.EventStatusReplied}
	status, out := post(t, newTestApp(bot), twoEvents)

	if status != fiber.StatusOK || !out.Success {
		t.Fatalf("status %d, body %+v", status, out)
	}
	if len(out.Data) != 2 || len(bot.got) != 2 {
		t.Fatalf("expected 2 results, got %d (bot saw %d)", len(out.Data), len(bot.got))
	}
	if bot.got[1].Postback == nil || bot.got[1].Postback.Data != "wid=12&type=check_word" {
		t.Fatalf("postback not decoded: %+v", bot.got[1])
	}
	if bot.got[0].Source.UserID != "u1" || bot.got[0].Text() != "得分" {
		t.Fatalf("message not decoded: %+v", bot.got[0])
	}
}

func TestCallbackFailingEventAnswers500(t *testing.T) {
	bot := &fakeBot{status: entity.EventStatusFailed}
	status, out := post(t, newTestApp(bot), twoEvents)

	if status != fiber.StatusInternalServerError || out.Success {
		t.Fatalf("status %d, body %+v", status, out)
	}
	if len(out.Data) != 2 || out.Data[0].Status != entity.EventStatusFailed {
		t.Fatalf("per-event results missing: %+v", out.Data)
	}
}

func TestCallbackEmptyBatch(t *testing.T) {
	bot := &fakeBot{status: entity.EventStatusReplied}
	status, out := post(t, newTestApp(bot), `{"destination":"U0","events":[]}`)
	if status != fiber.StatusOK || !out.Success {
		t.Fatalf("status %d, body %+v", status, out)
	}
}

func TestCallbackRejectsInvalidBody(t *testing.T) {
	bot := &fakeBot{status: entity.EventStatusReplied}
	app := newTestApp(bot)

	status, _ := post(t, app, `{"events": [`)
	if status != fiber.StatusBadRequest {
		t.Fatalf("malformed json: status %d, want 400", status)
	}

	status, out := post(t, app, `{"events": [{"replyToken": "r1"}]}`)
	if status != fiber.StatusBadRequest {
		t.Fatalf("missing type: status %d, want 400", status)
	}
	fields, ok := out.Error.(map[string]any)
	if !ok || fields["events[0].type"] == nil {
		t.Fatalf("expected a field error for events[0].type, got %v", out.Error)
	}
	if bot.got != nil {
		t.Fatal("invalid body reached the bot")
	}
}

func TestLandingRedirects(t *testing.T) {
	app := newTestApp(&fakeBot{})
	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status %d", resp.StatusCode)
	}
	if !strings.Contains(string(body), `url=https://line.me/R/ti/p/@words7000`) {
		t.Fatalf("landing page does not redirect: %s", body)
	}
}
