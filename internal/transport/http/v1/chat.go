package v1

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/intereco/gaia/internal/domain"
)

// Chat runs one conversation turn.
// POST /v1/chat
func (h *Handler) Chat(c echo.Context) error {
	var req domain.ChatRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if strings.TrimSpace(req.Question) == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "question is required"})
	}
	if strings.TrimSpace(req.SessionID) == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "session_id is required"})
	}

	ctx := c.Request().Context()

	answer, err := h.service.Chat(ctx, req.SessionID, req.Question)
	if err != nil {
		c.Logger().Errorf("chat turn failed: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}

	return c.JSON(http.StatusOK, domain.ChatResponse{
		Answer:    answer,
		SessionID: req.SessionID,
	})
}

// GetSessionHistory returns the full conversation log of a session.
// GET /v1/sessions/:session_id/history
func (h *Handler) GetSessionHistory(c echo.Context) error {
	sessionID := c.Param("session_id")

	ctx := c.Request().Context()

	messages, ok := h.service.History(ctx, sessionID)
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "session not found"})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"session_id": sessionID,
		"messages":   messages,
	})
}
