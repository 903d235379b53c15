package models

import "strings"

// PriceTier is the ordinal price category of a venue
type PriceTier string

const (
	PriceCheap     PriceTier = "Cheap"
	PriceModerate  PriceTier = "Moderate"
	PriceExpensive PriceTier = "Expensive"
	PriceLuxury    PriceTier = "Luxury"
)

// PriceTiers lists the tiers from cheapest to most expensive
var PriceTiers = []PriceTier{PriceCheap, PriceModerate, PriceExpensive, PriceLuxury}

var priceLevels = map[PriceTier]int{
	PriceCheap:     1,
	PriceModerate:  2,
	PriceExpensive: 3,
	PriceLuxury:    4,
}

var averageTickets = map[PriceTier]int{
	PriceCheap:     1500,
	PriceModerate:  3500,
	PriceExpensive: 7500,
	PriceLuxury:    15000,
}

// ParsePriceTier matches a tier name case-insensitively
func ParsePriceTier(s string) (PriceTier, bool) {
	for _, p := range PriceTiers {
		if strings.EqualFold(string(p), strings.TrimSpace(s)) {
			return p, true
		}
	}
	return "", false
}

// Level returns the ordinal of the tier (Cheap=1 ... Luxury=4).
// Unknown tiers rank as Cheap.
func (p PriceTier) Level() int {
	if l, ok := priceLevels[p]; ok {
		return l
	}
	return 1
}

// AverageTicket returns the expected spend per cover for the tier
func (p PriceTier) AverageTicket() int {
	return averageTickets[p]
}

// Venue represents a restaurant in the in-memory catalog
type Venue struct {
	ID       int       `json:"id"`
	Name     string    `json:"name"`
	Cuisine  string    `json:"cuisine"`
	Price    PriceTier `json:"price"`
	Rating   float64   `json:"rating"`
	Capacity int       `json:"capacity"`
	Location string    `json:"location"`
	Vibe     []string  `json:"vibe"`
}

// SearchCriteria represents a venue search; zero values mean "no filter"
type SearchCriteria struct {
	Cuisine   string  `json:"cuisine,omitempty"`
	Location  string  `json:"location,omitempty"`
	MinRating float64 `json:"min_rating,omitempty"`
	MaxPrice  string  `json:"max_price,omitempty"`
	PartySize int     `json:"party_size,omitempty"`
	Query     string  `json:"query,omitempty"`
}
