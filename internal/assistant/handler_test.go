package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"stylist/internal/catalog"
	"stylist/internal/llm"
)

type scriptedClient struct {
	reply string
	err   error
}

func (c *scriptedClient) ChatCompletion(ctx context.Context, systemPrompt string, history []llm.Message, userMessage string) (string, error) {
	return c.reply, c.err
}

func newTestHandler(client llm.Client) *Handler {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	service := NewService(ServiceConfig{
		LLM:      client,
		Products: catalog.SampleProducts(),
		Logger:   logger,
	})
	return NewHandler(service, logger)
}

func postChat(t *testing.T, h *Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestChatHandlerMissingMessage(t *testing.T) {
	h := newTestHandler(&scriptedClient{reply: "unused"})

	rec := postChat(t, h, `{"conversationHistory": []}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal error body: %v", err)
	}
	if body["error"] == "" {
		t.Fatalf("expected error field, got %v", body)
	}
}

func TestChatHandlerInvalidJSON(t *testing.T) {
	h := newTestHandler(&scriptedClient{reply: "unused"})

	if rec := postChat(t, h, `{not json`); rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestChatHandlerUpstreamFailureIs500(t *testing.T) {
	h := newTestHandler(&scriptedClient{err: errors.New("timeout")})

	rec := postChat(t, h, `{"message": "hello"}`)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal error body: %v", err)
	}
	if body["error"] == "" {
		t.Fatalf("expected opaque error message, got %v", body)
	}
}

func TestChatHandlerNonTerminalEnvelope(t *testing.T) {
	h := newTestHandler(&scriptedClient{reply: "What size do you wear?"})

	rec := postChat(t, h, `{"message": "hi", "conversationHistory": [{"role":"user","content":"hello"}]}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp ChatResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Terminal || resp.Products != nil || resp.Preferences != nil {
		t.Fatalf("unexpected terminal payload: %+v", resp)
	}
	if resp.Response != "What size do you wear?" {
		t.Errorf("unexpected response text: %q", resp.Response)
	}
	if resp.RunID == "" {
		t.Error("expected runId")
	}
}

func TestChatHandlerTerminalEnvelope(t *testing.T) {
	h := newTestHandler(&scriptedClient{reply: `**PREFERENCES SUMMARY:**
- Style: casual
- Size: any
- Color: any
- Budget: any
- Occasion: any

**FILTER_PRODUCTS**`})

	rec := postChat(t, h, `{"message": "no more requirements"}`)

	var resp ChatResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if !resp.Terminal {
		t.Fatal("expected terminal response")
	}
	if len(resp.Products) != 2 {
		t.Fatalf("expected 2 casual products, got %d", len(resp.Products))
	}
	if resp.Preferences == nil || resp.Preferences.Style != "casual" {
		t.Fatalf("expected extracted preferences, got %+v", resp.Preferences)
	}
	for _, p := range resp.Products {
		if p.Name == "" {
			t.Errorf("product %s missing name alias", p.ID)
		}
	}
}
