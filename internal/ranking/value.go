package ranking

import (
	"math"

	"github.com/faredeck/faredeck/internal/models"
)

const (
	PriceWeight  = 0.5
	RatingWeight = 0.3
	EPCWeight    = 0.2
)

// CalculateScores fills ValueScore on a copy of the offers. Scores are
// relative to the result set: price normalizes against the most expensive
// offer, EPC against the highest estimate.
func CalculateScores(offers []models.Offer) []models.Offer {
	if len(offers) == 0 {
		return offers
	}

	maxPrice := findMaxPrice(offers)
	maxEPC := findMaxEPC(offers)

	result := make([]models.Offer, len(offers))
	for i, o := range offers {
		result[i] = o
		result[i].ValueScore = CalculateValue(o, maxPrice, maxEPC)
	}

	return result
}

// Lower score = better value
func CalculateValue(offer models.Offer, maxPrice, maxEPC float64) float64 {
	priceScore := 0.0
	if maxPrice > 0 {
		priceScore = (offer.TotalPrice / maxPrice) * 100
	}

	// Rating inverts: a 5.0 offer contributes 0, an unrated one 100.
	ratingScore := (5 - clampRating(offer.Rating)) / 5 * 100

	// Higher expected commission lowers the score as a tie-break.
	epcScore := 100.0
	if maxEPC > 0 {
		epcScore = (1 - offer.EPC/maxEPC) * 100
	}

	score := (priceScore * PriceWeight) + (ratingScore * RatingWeight) + (epcScore * EPCWeight)

	return math.Round(score*100) / 100
}

func clampRating(r float64) float64 {
	if r < 0 {
		return 0
	}
	if r > 5 {
		return 5
	}
	return r
}

func findMaxPrice(offers []models.Offer) float64 {
	maxPrice := 0.0
	for _, o := range offers {
		if o.TotalPrice > maxPrice {
			maxPrice = o.TotalPrice
		}
	}
	return maxPrice
}

func findMaxEPC(offers []models.Offer) float64 {
	maxEPC := 0.0
	for _, o := range offers {
		if o.EPC > maxEPC {
			maxEPC = o.EPC
		}
	}
	return maxEPC
}
