package filter

import (
	"sort"
	"strings"

	"github.com/faredeck/faredeck/internal/models"
	"github.com/faredeck/faredeck/internal/ranking"
)

func Apply(offers []models.Offer, filters *models.OfferFilters, sortBy, sortOrder string) []models.Offer {
	filtered := applyFilters(offers, filters)

	if sortBy == "best_value" {
		filtered = ranking.CalculateScores(filtered)
	}

	return applySort(filtered, sortBy, sortOrder)
}

func applyFilters(offers []models.Offer, filters *models.OfferFilters) []models.Offer {
	if filters == nil {
		return offers
	}

	result := make([]models.Offer, 0, len(offers))

	for _, o := range offers {
		if matchesFilters(o, filters) {
			result = append(result, o)
		}
	}

	return result
}

func matchesFilters(o models.Offer, filters *models.OfferFilters) bool {
	if filters.PriceMin != nil && o.TotalPrice < *filters.PriceMin {
		return false
	}
	if filters.PriceMax != nil && o.TotalPrice > *filters.PriceMax {
		return false
	}

	if filters.MinRating != nil && o.Rating < *filters.MinRating {
		return false
	}

	if filters.RefundableOnly && !o.Refundable {
		return false
	}

	if len(filters.Providers) > 0 {
		found := false
		for _, p := range filters.Providers {
			if strings.EqualFold(o.Provider, p) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	return true
}

func applySort(offers []models.Offer, sortBy, sortOrder string) []models.Offer {
	if len(offers) == 0 {
		return offers
	}

	ascending := strings.ToLower(sortOrder) != "desc"

	switch strings.ToLower(sortBy) {
	case "price":
		sort.Slice(offers, func(i, j int) bool {
			if ascending {
				return offers[i].TotalPrice < offers[j].TotalPrice
			}
			return offers[i].TotalPrice > offers[j].TotalPrice
		})

	case "rating":
		sort.Slice(offers, func(i, j int) bool {
			if ascending {
				return offers[i].Rating < offers[j].Rating
			}
			return offers[i].Rating > offers[j].Rating
		})

	case "reviews":
		sort.Slice(offers, func(i, j int) bool {
			if ascending {
				return offers[i].ReviewCount < offers[j].ReviewCount
			}
			return offers[i].ReviewCount > offers[j].ReviewCount
		})

	case "best_value":
		sort.Slice(offers, func(i, j int) bool {
			if ascending {
				return offers[i].ValueScore < offers[j].ValueScore
			}
			return offers[i].ValueScore > offers[j].ValueScore
		})

	default:
		// Default to price ascending
		sort.Slice(offers, func(i, j int) bool {
			return offers[i].TotalPrice < offers[j].TotalPrice
		})
	}

	return offers
}
