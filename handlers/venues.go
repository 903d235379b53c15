package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// GetVenues returns the catalog of a session
func (h *Handler) GetVenues(c *gin.Context) {
	state, ok := h.sessionFromQuery(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, state.Catalog())
}

// GetVenue returns a single venue by id
func (h *Handler) GetVenue(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid venue ID"})
		return
	}

	state, ok := h.sessionFromQuery(c)
	if !ok {
		return
	}

	venue, found := state.FindVenue(id)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Venue not found"})
		return
	}

	c.JSON(http.StatusOK, venue)
}
