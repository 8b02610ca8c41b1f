package v1

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/intereco/gaia/internal/composer"
	"github.com/intereco/gaia/internal/domain"
	"github.com/intereco/gaia/internal/history"
	"github.com/intereco/gaia/internal/judge"
	"github.com/intereco/gaia/internal/prompt"
	"github.com/intereco/gaia/internal/router"
	"github.com/intereco/gaia/internal/service"
	"github.com/intereco/gaia/internal/specialist"
	"github.com/intereco/gaia/internal/tools"
	"github.com/intereco/gaia/policy"
)

// directCompleter always answers with a fixed direct reply, keeping every
// handler turn on the router's short path.
type directCompleter struct{ reply string }

func (d directCompleter) Complete(ctx context.Context, p string) (string, error) {
	return d.reply, nil
}

type emptyRetriever struct{}

func (emptyRetriever) Retrieve(ctx context.Context, query string, k int) []string { return nil }

func newTestHandler(t *testing.T) *Handler {
	t.Helper()

	engine, err := policy.NewEngine(context.Background(), nil)
	if err != nil {
		t.Fatalf("failed to create policy engine: %v", err)
	}

	c := directCompleter{reply: "Olá! Como posso ajudar com sustentabilidade? 🌿"}
	logger := zap.NewNop()

	svc := service.New(
		history.NewMemoryStore(),
		engine,
		router.New(c, prompt.Persona),
		specialist.NewCarbono(c, prompt.Persona),
		specialist.NewDiagnostico(c, tools.NewRegistry(), prompt.Persona, logger),
		specialist.NewFAQ(c, emptyRetriever{}, prompt.Persona),
		judge.New(c),
		composer.New(c, prompt.Persona),
		logger,
	)
	return NewHandler(svc)
}

func TestChatSuccess(t *testing.T) {
	e := echo.New()
	h := newTestHandler(t)

	body := `{"session_id":"s1","question":"oi"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/chat", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Chat(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp domain.ChatResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.SessionID != "s1" || resp.Answer == "" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestChatBlankQuestion(t *testing.T) {
	e := echo.New()
	h := newTestHandler(t)

	body := `{"session_id":"s1","question":"   "}`
	req := httptest.NewRequest(http.MethodPost, "/v1/chat", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Chat(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestChatMissingSessionID(t *testing.T) {
	e := echo.New()
	h := newTestHandler(t)

	body := `{"question":"oi"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/chat", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Chat(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestGetSessionHistoryUnknownSession(t *testing.T) {
	e := echo.New()
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/sessions/missing/history", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("session_id")
	c.SetParamValues("missing")

	if err := h.GetSessionHistory(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestGetSessionHistoryAfterTurn(t *testing.T) {
	e := echo.New()
	h := newTestHandler(t)

	body := `{"session_id":"s1","question":"oi"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/chat", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	if err := h.Chat(e.NewContext(req, rec)); err != nil {
		t.Fatalf("chat error: %v", err)
	}

	req = httptest.NewRequest(http.MethodGet, "/v1/sessions/s1/history", nil)
	rec = httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("session_id")
	c.SetParamValues("s1")

	if err := h.GetSessionHistory(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		SessionID string           `json:"session_id"`
		Messages  []domain.Message `json:"messages"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Messages) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(resp.Messages))
	}
	if resp.Messages[0].Role != domain.RoleUser || resp.Messages[1].Role != domain.RoleAssistant {
		t.Fatalf("unexpected roles: %+v", resp.Messages)
	}
}

func TestHealth(t *testing.T) {
	e := echo.New()
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Health(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
