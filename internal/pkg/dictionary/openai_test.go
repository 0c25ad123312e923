package dictionary

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/evandrarf/words7000-bot/internal/pkg/llm"
	openai "github.com/sashabaranov/go-openai"
)

type chatRequest struct {
	Model    string `json:"model"`
	Messages []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
	ResponseFormat struct {
		Type string `json:"type"`
	} `json:"response_format"`
}

// chatServer answers /chat/completions with content and finishReason and
// records the last request it saw.
func chatServer(t *testing.T, content, finishReason string) (*httptest.Server, *chatRequest, *http.Header) {
	t.Helper()
	var (
		got    chatRequest
		header http.Header
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/v1/chat/completions" {
			http.NotFound(w, r)
			return
		}
		header = r.Header.Clone()
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":      "chatcmpl-1",
			"object":  "chat.completion",
			"created": 1,
			"model":   got.Model,
			"choices": []map[string]any{{
				"index":         0,
				"message":       map[string]string{"role": "assistant", "content": content},
				"finish_reason": finishReason,
			}},
		})
	}))
	t.Cleanup(srv.Close)
	return srv, &got, &header
}

func TestLLMDictionaryOverOpenAI(t *testing.T) {
	srv, req, header := chatServer(t, `{"found":true,"phonetic":"[ˈæpl]","definition":"n. 蘋果"}`, "stop")
	d := NewLLMDictionary(llm.NewOpenAIClient("sk-test", "test-model", srv.URL+"/v1/"), 0)

	def, err := d.Lookup(context.Background(), "apple")
	if err != nil {
		t.Fatalf("Lookup returned error: %v", err)
	}
	if def.Word != "apple" || def.Phonetic != "[ˈæpl]" || def.Gloss != "n. 蘋果" {
		t.Errorf("unexpected definition %+v", def)
	}

	if got := header.Get("Authorization"); got != "Bearer sk-test" {
		t.Errorf("Authorization = %q", got)
	}
	if req.Model != "test-model" {
		t.Errorf("model = %q, want test-model", req.Model)
	}
	if req.ResponseFormat.Type != "json_object" {
		t.Errorf("response_format = %q, want json_object", req.ResponseFormat.Type)
	}
	if len(req.Messages) != 1 || !strings.Contains(req.Messages[0].Content, "Word: apple") {
		t.Errorf("prompt not sent: %+v", req.Messages)
	}
}

func TestLLMDictionaryOverOpenAINotFound(t *testing.T) {
	srv, _, _ := chatServer(t, `{"found":false}`, "stop")
	d := NewLLMDictionary(llm.NewOpenAIClient("sk-test", "", srv.URL+"/v1"), 0)

	if _, err := d.Lookup(context.Background(), "qwzx"); !errors.Is(err, ErrDefinitionNotFound) {
		t.Errorf("expected ErrDefinitionNotFound, got %v", err)
	}
}

func TestLLMDictionaryOverOpenAITruncated(t *testing.T) {
	srv, _, _ := chatServer(t, `{"found":true,"phonetic":"[ˈæ`, "length")
	d := NewLLMDictionary(llm.NewOpenAIClient("sk-test", "", srv.URL+"/v1"), 0)

	if _, err := d.Lookup(context.Background(), "apple"); !errors.Is(err, llm.ErrTruncated) {
		t.Errorf("expected ErrTruncated, got %v", err)
	}
}

func TestLLMDictionaryOverOpenAIServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"quota exceeded","type":"rate_limit"}}`))
	}))
	t.Cleanup(srv.Close)
	d := NewLLMDictionary(llm.NewOpenAIClient("sk-test", "", srv.URL), 0)

	_, err := d.Lookup(context.Background(), "apple")
	if err == nil || errors.Is(err, ErrDefinitionNotFound) {
		t.Fatalf("expected upstream error, got %v", err)
	}
	var apiErr *openai.APIError
	if !errors.As(err, &apiErr) || apiErr.HTTPStatusCode != http.StatusTooManyRequests {
		t.Errorf("expected a 429 APIError, got %v", err)
	}
}
