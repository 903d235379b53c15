package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dining-agent/services"
)

// GetDashboard returns the business metrics of a session
func (h *Handler) GetDashboard(c *gin.Context) {
	state, ok := h.sessionFromQuery(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, services.ComputeDashboard(state.Snapshot()))
}

// GetVerticals lists the verticals of the expansion simulator
func (h *Handler) GetVerticals(c *gin.Context) {
	names := make([]string, 0, len(services.Verticals))
	for _, v := range services.Verticals {
		names = append(names, v.Name)
	}
	c.JSON(http.StatusOK, gin.H{"verticals": names})
}

// GetVertical returns how the booking model maps onto one vertical
func (h *Handler) GetVertical(c *gin.Context) {
	vertical, ok := services.LookupVertical(c.Param("name"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "No configuration for vertical"})
		return
	}

	c.JSON(http.StatusOK, vertical)
}
