package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"dining-agent/models"
)

// ChatWithAI processes AI chat messages
func (h *Handler) ChatWithAI(c *gin.Context) {
	var req models.ChatRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	logger := h.logger.With(slog.String("method", "ChatWithAI"), slog.String("session_id", req.SessionID))
	logger.Info("AI chat request", slog.String("message", req.Message))

	state := h.sessions.Get(req.SessionID)
	reply, err := h.agent.ProcessMessage(c.Request.Context(), state, req.Message)
	if err != nil {
		logger.Error("Error processing AI message", slog.Any("error", err))
		c.JSON(http.StatusInternalServerError, models.ChatResponse{
			Success: false,
			Message: "System Error: " + err.Error(),
			Hint:    h.cfg.CredentialHint(),
		})
		return
	}

	c.JSON(http.StatusOK, models.ChatResponse{
		Success: true,
		Message: reply,
	})
}

// GetHistory returns the transcript of a session
func (h *Handler) GetHistory(c *gin.Context) {
	state, ok := h.sessionFromQuery(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, state.Transcript())
}
