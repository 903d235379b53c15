package services

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"dining-agent/models"
)

const reservationPrefix = "RES-"

// MakeReservation books a table at a venue of the session's catalog.
// It returns models.ErrInvalidArguments, models.ErrVenueNotFound or
// models.ErrCapacityExceeded without
// recording anything when the request cannot be honoured.
func MakeReservation(state *AppState, req models.ReservationRequest) (*models.ReservationConfirmation, error) {
	if req.PartySize < 1 {
		return nil, fmt.Errorf("%w: party size must be positive, got %d", models.ErrInvalidArguments, req.PartySize)
	}
	venue, ok := state.FindVenue(req.RestaurantID)
	if !ok {
		return nil, models.ErrVenueNotFound
	}
	if venue.Capacity < req.PartySize {
		return nil, fmt.Errorf("%w: %s seats %d, requested %d", models.ErrCapacityExceeded, venue.Name, venue.Capacity, req.PartySize)
	}

	reservation := state.appendReservation(models.Reservation{
		Restaurant: venue.Name,
		Party:      req.PartySize,
		Time:       req.Time,
		Revenue:    venue.Price.AverageTicket() * req.PartySize,
	}, generateReservationID)

	bookingsTotal.Inc()
	bookedRevenue.Add(float64(reservation.Revenue))

	return &models.ReservationConfirmation{
		Success:       true,
		ReservationID: reservation.ID,
		Message:       fmt.Sprintf("Booked %s for %d at %s.", venue.Name, req.PartySize, req.Time),
	}, nil
}

// generateReservationID returns a short random token such as RES-4F9A1C2B
func generateReservationID() string {
	token := strings.ReplaceAll(uuid.NewString(), "-", "")
	return reservationPrefix + strings.ToUpper(token[:8])
}
