package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"dining-agent/config"
	"dining-agent/services"
)

// Handler serves the HTTP API over the session store and the agent
type Handler struct {
	cfg      *config.Config
	agent    *services.Agent
	sessions *services.SessionStore
	logger   *slog.Logger
}

// New creates the HTTP handlers
func New(cfg *config.Config, agent *services.Agent, sessions *services.SessionStore, logger *slog.Logger) *Handler {
	return &Handler{
		cfg:      cfg,
		agent:    agent,
		sessions: sessions,
		logger:   logger.With(slog.String("component", "http")),
	}
}

// sessionFromQuery resolves the session named by the session_id query parameter
func (h *Handler) sessionFromQuery(c *gin.Context) (*services.AppState, bool) {
	id := c.Query("session_id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "session_id is required"})
		return nil, false
	}
	return h.sessions.Get(id), true
}
