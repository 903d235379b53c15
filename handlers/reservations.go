package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetReservations lists the reservations of a session. Bookings are only
// made by the agent.
func (h *Handler) GetReservations(c *gin.Context) {
	state, ok := h.sessionFromQuery(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, state.Reservations())
}
