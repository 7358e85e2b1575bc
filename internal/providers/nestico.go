package providers

import (
	"context"
	"encoding/json"
	"math"
	"strings"

	"github.com/faredeck/faredeck/internal/models"
	"github.com/faredeck/faredeck/internal/providers/data"
)

type nesticoFeed struct {
	Properties []nesticoProperty `json:"properties"`
}

type nesticoProperty struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	City        string  `json:"city"`
	Stars       int     `json:"stars"`
	NightlyRate float64 `json:"nightly_rate"`
	TaxRate     float64 `json:"tax_rate"`
	Currency    string  `json:"currency"`
	Rating      float64 `json:"rating"`
	ReviewCount int     `json:"review_count"`
	Refundable  bool    `json:"refundable"`
	EPC         float64 `json:"epc"`
	Image       string  `json:"image"`
}

// NesticoProvider serves stay offers; the feed quotes nightly rates, so
// prices scale with the requested stay length.
type NesticoProvider struct {
	properties []nesticoProperty
}

func NewNesticoProvider() (*NesticoProvider, error) {
	var feed nesticoFeed
	if err := json.Unmarshal(data.NesticoData, &feed); err != nil {
		return nil, NewProviderError("nestico", err)
	}
	return &NesticoProvider{properties: feed.Properties}, nil
}

func (p *NesticoProvider) Name() string {
	return "nestico"
}

func (p *NesticoProvider) Vertical() models.Vertical {
	return models.VerticalStays
}

func (p *NesticoProvider) Search(ctx context.Context, req models.SearchRequest) ([]models.Offer, error) {
	if err := simulateLatency(ctx); err != nil {
		return nil, err
	}

	nights := stayNights(req.StartDate, req.EndDate)

	var results []models.Offer
	for _, prop := range p.properties {
		if !strings.EqualFold(prop.City, req.Destination) {
			continue
		}
		results = append(results, p.normalize(prop, nights))
	}

	return results, nil
}

func (p *NesticoProvider) normalize(prop nesticoProperty, nights int) models.Offer {
	stars := prop.Stars
	base := round2(prop.NightlyRate * float64(nights))
	taxes := round2(base * prop.TaxRate)

	return models.Offer{
		ID:          prop.ID,
		Provider:    p.Name(),
		Vertical:    models.VerticalStays,
		Title:       prop.Name,
		Subtitle:    prop.City,
		BasePrice:   base,
		TaxesFees:   taxes,
		TotalPrice:  round2(base + taxes),
		Currency:    prop.Currency,
		Rating:      prop.Rating,
		ReviewCount: prop.ReviewCount,
		ImageURL:    prop.Image,
		Refundable:  prop.Refundable,
		EPC:         prop.EPC,
		Stars:       &stars,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
