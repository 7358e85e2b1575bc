package providers

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/faredeck/faredeck/internal/models"
	"github.com/faredeck/faredeck/internal/providers/data"
)

type gearupFeed struct {
	Rentals []gearupRental `json:"rentals"`
}

type gearupRental struct {
	SKU        string  `json:"sku"`
	City       string  `json:"city"`
	CarClass   string  `json:"car_class"`
	Model      string  `json:"model"`
	DailyRate  float64 `json:"daily_rate"`
	Fees       float64 `json:"fees"`
	Currency   string  `json:"currency"`
	Rating     float64 `json:"rating"`
	Reviews    int     `json:"reviews"`
	Refundable bool    `json:"refundable"`
	EPC        float64 `json:"epc"`
	Image      string  `json:"image"`
}

// GearupProvider serves car rental offers priced per rental day plus a
// flat fee.
type GearupProvider struct {
	rentals []gearupRental
}

func NewGearupProvider() (*GearupProvider, error) {
	var feed gearupFeed
	if err := json.Unmarshal(data.GearupData, &feed); err != nil {
		return nil, NewProviderError("gearup", err)
	}
	return &GearupProvider{rentals: feed.Rentals}, nil
}

func (p *GearupProvider) Name() string {
	return "gearup"
}

func (p *GearupProvider) Vertical() models.Vertical {
	return models.VerticalCars
}

func (p *GearupProvider) Search(ctx context.Context, req models.SearchRequest) ([]models.Offer, error) {
	if err := simulateLatency(ctx); err != nil {
		return nil, err
	}

	days := stayNights(req.StartDate, req.EndDate)

	var results []models.Offer
	for _, r := range p.rentals {
		if !strings.EqualFold(r.City, req.Destination) {
			continue
		}
		results = append(results, p.normalize(r, days))
	}

	return results, nil
}

func (p *GearupProvider) normalize(r gearupRental, days int) models.Offer {
	class := r.CarClass
	base := round2(r.DailyRate * float64(days))

	return models.Offer{
		ID:          r.SKU,
		Provider:    p.Name(),
		Vertical:    models.VerticalCars,
		Title:       r.Model,
		Subtitle:    r.City,
		BasePrice:   base,
		TaxesFees:   r.Fees,
		TotalPrice:  round2(base + r.Fees),
		Currency:    r.Currency,
		Rating:      r.Rating,
		ReviewCount: r.Reviews,
		ImageURL:    r.Image,
		Refundable:  r.Refundable,
		EPC:         r.EPC,
		CarClass:    &class,
	}
}
