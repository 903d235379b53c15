package services

import (
	"slices"
	"sync"

	"dining-agent/models"
)

// AppState holds everything one session accumulates: the venue catalog,
// reservations, the chat transcript and the intent log.
// The catalog is immutable; the other collections are append-only.
type AppState struct {
	catalog []models.Venue

	// held for the whole of a dialogue turn
	turnMu sync.Mutex

	mu           sync.RWMutex
	reservations []models.Reservation
	transcript   []models.ChatTurn
	intentLog    []models.IntentLogEntry
}

// Snapshot is a point-in-time copy of a session's accumulated records
type Snapshot struct {
	VenueCount   int
	Reservations []models.Reservation
	Transcript   []models.ChatTurn
	IntentLog    []models.IntentLogEntry
}

// NewAppState creates a state container around a generated catalog
func NewAppState(catalog []models.Venue) *AppState {
	return &AppState{catalog: catalog}
}

// Catalog returns the venues. Callers must not modify the returned slice.
func (s *AppState) Catalog() []models.Venue {
	return s.catalog
}

// FindVenue looks a venue up by id
func (s *AppState) FindVenue(id int) (models.Venue, bool) {
	for _, v := range s.catalog {
		if v.ID == id {
			return v, true
		}
	}
	return models.Venue{}, false
}

// AppendTurn adds a message to the transcript
func (s *AppState) AppendTurn(role, content string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transcript = append(s.transcript, models.ChatTurn{Role: role, Content: content})
}

// AppendIntent adds an entry to the intent log
func (s *AppState) AppendIntent(e models.IntentLogEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.intentLog = append(s.intentLog, e)
}

// appendReservation stores r under an id from newID that no earlier reservation uses
func (s *AppState) appendReservation(r models.Reservation, newID func() string) models.Reservation {
	s.mu.Lock()
	defer s.mu.Unlock()
	for {
		r.ID = newID()
		taken := slices.ContainsFunc(s.reservations, func(x models.Reservation) bool { return x.ID == r.ID })
		if !taken {
			break
		}
	}
	s.reservations = append(s.reservations, r)
	return r
}

// Transcript returns a copy of the chat transcript
func (s *AppState) Transcript() []models.ChatTurn {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.transcript)
}

// Reservations returns a copy of the reservations in booking order
func (s *AppState) Reservations() []models.Reservation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.reservations)
}

// Snapshot copies every accumulated collection at once
func (s *AppState) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		VenueCount:   len(s.catalog),
		Reservations: slices.Clone(s.reservations),
		Transcript:   slices.Clone(s.transcript),
		IntentLog:    slices.Clone(s.intentLog),
	}
}
