package services

import (
	"cmp"
	"math"
	"slices"
	"strings"

	"dining-agent/models"
)

// MaxSearchResults caps how many venues a search returns
const MaxSearchResults = 5

// SearchVenues filters the catalog by the given criteria and returns the
// best-rated matches. Every filter is optional and they combine with AND.
func SearchVenues(catalog []models.Venue, c models.SearchCriteria) []models.Venue {
	maxLevel := models.PriceLuxury.Level()
	if c.MaxPrice != "" {
		if tier, ok := models.ParsePriceTier(c.MaxPrice); ok {
			maxLevel = tier.Level()
		}
	}

	cuisine := strings.ToLower(c.Cuisine)
	location := strings.ToLower(c.Location)
	query := strings.ToLower(c.Query)

	results := make([]models.Venue, 0, MaxSearchResults)
	for _, v := range catalog {
		if cuisine != "" && !strings.Contains(strings.ToLower(v.Cuisine), cuisine) {
			continue
		}
		if location != "" && !strings.Contains(strings.ToLower(v.Location), location) {
			continue
		}
		if c.MinRating > 0 && v.Rating < c.MinRating {
			continue
		}
		if c.PartySize > 0 && v.Capacity < c.PartySize {
			continue
		}
		if v.Price.Level() > maxLevel {
			continue
		}
		if query != "" && !matchesQuery(v, query) {
			continue
		}
		results = append(results, v)
	}

	// Stable so equal ratings keep catalog order
	slices.SortStableFunc(results, func(a, b models.Venue) int {
		return cmp.Compare(b.Rating, a.Rating)
	})

	if len(results) > MaxSearchResults {
		results = results[:MaxSearchResults]
	}
	return results
}

func matchesQuery(v models.Venue, query string) bool {
	if strings.Contains(strings.ToLower(v.Name), query) {
		return true
	}
	for _, tag := range v.Vibe {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}

// maxPartySize bounds party sizes accepted from the model
const maxPartySize = 10000

// partySizeFromNumber converts a model-supplied party size to whole covers,
// clamped to [0, maxPartySize]
func partySizeFromNumber(n float64) int {
	if n <= 0 || math.IsNaN(n) {
		return 0
	}
	return int(math.Min(math.Ceil(n), maxPartySize))
}
