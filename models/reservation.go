package models

// Reservation represents a confirmed table booking
type Reservation struct {
	ID         string `json:"id"`
	Restaurant string `json:"restaurant"`
	Party      int    `json:"party"`
	Time       string `json:"time"`
	Revenue    int    `json:"revenue"`
}

// ReservationRequest represents the input of a booking
type ReservationRequest struct {
	RestaurantID int
	PartySize    int
	Time         string
}

// ReservationConfirmation is returned to the model after a successful booking
type ReservationConfirmation struct {
	Success       bool   `json:"success"`
	ReservationID string `json:"reservation_id"`
	Message       string `json:"message"`
}
