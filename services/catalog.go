package services

import (
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"dining-agent/models"
)

// Attribute domains for generated venues
var (
	Cuisines  = []string{"Italian", "Japanese", "Mexican", "Indian", "French", "American", "Thai", "Mediterranean", "Vegan"}
	Locations = []string{"Bhubaneswar", "Cuttack", "Puri", "Bhadrak", "Balasore", "Rourkela", "Dhenkanal"}
	Vibes     = []string{"Romantic", "Casual", "Lively", "Quiet", "Business", "Family-friendly", "Trendy", "Upscale"}

	namePrefixes = []string{"The", "La", "El", "Royal", "Urban"}
	nameSuffixes = []string{"Spoon", "Table", "Bistro", "House"}
)

const (
	minRating   = 3.5
	maxRating   = 5.0
	minCapacity = 10
	maxCapacity = 90
)

// NewRand returns the random source for catalog generation.
// A zero seed picks one from the clock.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// GenerateCatalog creates count synthetic venues with ids 1..count.
// A non-positive count yields an empty catalog.
func GenerateCatalog(count int, rng *rand.Rand) []models.Venue {
	if count <= 0 {
		return []models.Venue{}
	}
	venues := make([]models.Venue, 0, count)
	for i := 1; i <= count; i++ {
		cuisine := pick(rng, Cuisines)
		venues = append(venues, models.Venue{
			ID:       i,
			Name:     fmt.Sprintf("%s %s %s %d", pick(rng, namePrefixes), cuisine, pick(rng, nameSuffixes), i),
			Cuisine:  cuisine,
			Price:    pick(rng, models.PriceTiers),
			Rating:   math.Round((minRating+rng.Float64()*(maxRating-minRating))*10) / 10,
			Capacity: minCapacity + rng.IntN(maxCapacity-minCapacity+1),
			Location: pick(rng, Locations),
			Vibe:     sampleVibes(rng),
		})
	}
	return venues
}

func pick[T any](rng *rand.Rand, from []T) T {
	return from[rng.IntN(len(from))]
}

// sampleVibes draws one or two distinct tags
func sampleVibes(rng *rand.Rand) []string {
	k := 1 + rng.IntN(2)
	perm := rng.Perm(len(Vibes))[:k]
	out := make([]string, k)
	for i, idx := range perm {
		out[i] = Vibes[idx]
	}
	return out
}
