package services

import (
	"context"
	"io"
	"log/slog"

	"github.com/stretchr/testify/mock"

	"dining-agent/models"
)

// MockProvider is a mock implementation of Provider
type MockProvider struct {
	mock.Mock
}

func (m *MockProvider) Complete(ctx context.Context, req ModelRequest) (*ModelReply, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ModelReply), args.Error(1)
}

func withTools(req ModelRequest) bool    { return len(req.Tools) > 0 }
func withoutTools(req ModelRequest) bool { return req.Tools == nil }

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// venueSeven is a moderate Italian venue seating 40
func venueSeven() models.Venue {
	return models.Venue{
		ID:       7,
		Name:     "La Italian Table 7",
		Cuisine:  "Italian",
		Price:    models.PriceModerate,
		Rating:   4.4,
		Capacity: 40,
		Location: "Puri",
		Vibe:     []string{"Romantic", "Quiet"},
	}
}

func testCatalog() []models.Venue {
	return []models.Venue{
		{ID: 1, Name: "The Thai Spoon 1", Cuisine: "Thai", Price: models.PriceCheap, Rating: 3.9, Capacity: 12, Location: "Cuttack", Vibe: []string{"Casual"}},
		{ID: 2, Name: "Royal French House 2", Cuisine: "French", Price: models.PriceLuxury, Rating: 4.9, Capacity: 60, Location: "Bhubaneswar", Vibe: []string{"Upscale", "Romantic"}},
		{ID: 3, Name: "Urban Italian Bistro 3", Cuisine: "Italian", Price: models.PriceExpensive, Rating: 4.7, Capacity: 80, Location: "Puri", Vibe: []string{"Trendy"}},
		{ID: 4, Name: "El Mexican Table 4", Cuisine: "Mexican", Price: models.PriceModerate, Rating: 4.4, Capacity: 25, Location: "Rourkela", Vibe: []string{"Lively"}},
		{ID: 5, Name: "The Vegan House 5", Cuisine: "Vegan", Price: models.PriceCheap, Rating: 3.6, Capacity: 30, Location: "Balasore", Vibe: []string{"Family-friendly"}},
		{ID: 6, Name: "La Indian Spoon 6", Cuisine: "Indian", Price: models.PriceModerate, Rating: 4.2, Capacity: 90, Location: "Bhubaneswar", Vibe: []string{"Business"}},
		venueSeven(),
	}
}
