package providers

import (
	"context"
	"encoding/json"
	"math/rand"
	"strings"
	"time"

	"github.com/faredeck/faredeck/internal/models"
	"github.com/faredeck/faredeck/internal/providers/data"
)

type skywayFeed struct {
	Offers []skywayOffer `json:"offers"`
}

type skywayOffer struct {
	OfferID      string  `json:"offer_id"`
	Airline      string  `json:"airline"`
	FlightNumber string  `json:"flight_number"`
	FromCity     string  `json:"from_city"`
	ToCity       string  `json:"to_city"`
	DepartDate   string  `json:"depart_date"`
	Cabin        string  `json:"cabin"`
	BaseFare     float64 `json:"base_fare"`
	Taxes        float64 `json:"taxes"`
	Currency     string  `json:"currency"`
	Rating       float64 `json:"rating"`
	Reviews      int     `json:"reviews"`
	Refundable   bool    `json:"refundable"`
	EPC          float64 `json:"epc"`
	Image        string  `json:"image"`
}

// SkywayProvider serves flight offers from the embedded Skyway feed.
type SkywayProvider struct {
	offers []skywayOffer
}

func NewSkywayProvider() (*SkywayProvider, error) {
	var feed skywayFeed
	if err := json.Unmarshal(data.SkywayData, &feed); err != nil {
		return nil, NewProviderError("skyway", err)
	}
	return &SkywayProvider{offers: feed.Offers}, nil
}

func (p *SkywayProvider) Name() string {
	return "skyway"
}

func (p *SkywayProvider) Vertical() models.Vertical {
	return models.VerticalFlights
}

func (p *SkywayProvider) Search(ctx context.Context, req models.SearchRequest) ([]models.Offer, error) {
	if err := simulateLatency(ctx); err != nil {
		return nil, err
	}

	var results []models.Offer
	for _, o := range p.offers {
		if !strings.EqualFold(o.ToCity, req.Destination) {
			continue
		}
		if req.Origin != "" && !strings.EqualFold(o.FromCity, req.Origin) {
			continue
		}
		if req.StartDate != "" && o.DepartDate != req.StartDate {
			continue
		}
		results = append(results, p.normalize(o))
	}

	return results, nil
}

func (p *SkywayProvider) normalize(o skywayOffer) models.Offer {
	cabin := o.Cabin
	return models.Offer{
		ID:          o.OfferID,
		Provider:    p.Name(),
		Vertical:    models.VerticalFlights,
		Title:       o.FromCity + " - " + o.ToCity,
		Subtitle:    o.Airline + " " + o.FlightNumber,
		BasePrice:   o.BaseFare,
		TaxesFees:   o.Taxes,
		TotalPrice:  o.BaseFare + o.Taxes,
		Currency:    o.Currency,
		Rating:      o.Rating,
		ReviewCount: o.Reviews,
		ImageURL:    o.Image,
		Refundable:  o.Refundable,
		EPC:         o.EPC,
		CabinClass:  &cabin,
	}
}

// simulateLatency stands in for the partner round trip while still
// honoring cancellation.
func simulateLatency(ctx context.Context) error {
	delay := time.Duration(50+rand.Intn(50)) * time.Millisecond
	select {
	case <-time.After(delay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// stayNights derives the trip length from the search window; a missing or
// malformed window counts as one night.
func stayNights(startDate, endDate string) int {
	start, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return 1
	}
	end, err := time.Parse("2006-01-02", endDate)
	if err != nil {
		return 1
	}
	nights := int(end.Sub(start).Hours() / 24)
	if nights < 1 {
		return 1
	}
	return nights
}
