// Package upsell recommends at most one add-on purchase for a trip.
//
// Rules live in an ordered slice and evaluate first-match-wins, so
// precedence is data rather than control flow. Insurance outranks eSIM:
// a trip that is both expensive and international gets the insurance
// recommendation.
package upsell

import (
	"fmt"

	"github.com/faredeck/faredeck/internal/geo"
	"github.com/faredeck/faredeck/internal/models"
)

const (
	// DefaultHighValueThreshold is the trip total above which insurance is
	// recommended, in the offers' common currency.
	DefaultHighValueThreshold = 2000

	// DefaultDomesticCountry classifies destinations when no origin is given.
	DefaultDomesticCountry = "US"
)

type Config struct {
	HighValueThreshold float64
	DomesticCountry    string
}

type rule struct {
	name    string
	matches func(ctx models.TripContext) bool
	build   func(ctx models.TripContext) *models.UpsellRecommendation
}

type Engine struct {
	cfg   Config
	rules []rule
}

func NewEngine(cfg Config) *Engine {
	if cfg.HighValueThreshold <= 0 {
		cfg.HighValueThreshold = DefaultHighValueThreshold
	}
	if cfg.DomesticCountry == "" {
		cfg.DomesticCountry = DefaultDomesticCountry
	}

	e := &Engine{cfg: cfg}
	e.rules = []rule{
		{name: "insurance", matches: e.isHighValue, build: e.buildInsurance},
		{name: "esim", matches: e.isInternational, build: e.buildESIM},
		{name: "bundle", matches: e.canBundle, build: e.buildBundle},
	}
	return e
}

// Recommend evaluates the rule set in order and returns the first match,
// or nil when nothing applies. Missing context fields degrade to no
// recommendation; Recommend never fails.
func (e *Engine) Recommend(ctx models.TripContext) *models.UpsellRecommendation {
	for i, r := range e.rules {
		if r.matches(ctx) {
			rec := r.build(ctx)
			rec.Priority = i + 1
			return rec
		}
	}
	return nil
}

func (e *Engine) isHighValue(ctx models.TripContext) bool {
	return tripTotal(ctx) > e.cfg.HighValueThreshold
}

func (e *Engine) isInternational(ctx models.TripContext) bool {
	return geo.IsInternational(ctx.OriginCity(), ctx.DestinationCity(), e.cfg.DomesticCountry)
}

func (e *Engine) canBundle(ctx models.TripContext) bool {
	if len(ctx.Offers) == 0 {
		return false
	}
	// Only single-component verticals can grow into a package.
	return ctx.Vertical == models.VerticalFlights || ctx.Vertical == models.VerticalStays
}

func (e *Engine) buildInsurance(ctx models.TripContext) *models.UpsellRecommendation {
	return &models.UpsellRecommendation{
		Type:   models.UpsellInsurance,
		Title:  "Protect this trip",
		Reason: fmt.Sprintf("trip total %.0f exceeds %.0f", tripTotal(ctx), e.cfg.HighValueThreshold),
	}
}

func (e *Engine) buildESIM(ctx models.TripContext) *models.UpsellRecommendation {
	return &models.UpsellRecommendation{
		Type:   models.UpsellESIM,
		Title:  "Stay connected abroad with an eSIM",
		Reason: "international destination: " + ctx.DestinationCity(),
	}
}

func (e *Engine) buildBundle(ctx models.TripContext) *models.UpsellRecommendation {
	rec := &models.UpsellRecommendation{
		Type:   models.UpsellBundle,
		Reason: "bundle and save on the full trip",
	}
	if ctx.Vertical == models.VerticalFlights {
		rec.Title = "Add a hotel to your flight"
	} else {
		rec.Title = "Add a flight to your stay"
	}
	return rec
}

func tripTotal(ctx models.TripContext) float64 {
	total := 0.0
	for _, o := range ctx.Offers {
		total += o.TotalPrice
	}
	return total
}
