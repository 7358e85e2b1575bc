// Package bundle composes component offers into package offers with a
// bundle discount and an explicit savings figure.
package bundle

import (
	"errors"
	"fmt"
	"math"

	"github.com/faredeck/faredeck/internal/models"
)

// DiscountRate is the policy discount applied to the naive sum of
// component prices.
const DiscountRate = 0.10

var ErrMissingComponent = errors.New("missing package component")

// InvalidComponentError reports an absent or unusable component for a slot.
type InvalidComponentError struct {
	Slot string
}

func (e *InvalidComponentError) Error() string {
	return fmt.Sprintf("invalid package component: %s", e.Slot)
}

func (e *InvalidComponentError) Unwrap() error {
	return ErrMissingComponent
}

// CreateFlightHotelPackage combines a flight and a hotel into a single
// package offer. Both components are required; the result references the
// input offers unchanged.
func CreateFlightHotelPackage(flight, hotel *models.Offer, params models.SearchParams) (*models.PackageOffer, error) {
	if err := requireComponent(flight, models.SlotFlight, models.VerticalFlights); err != nil {
		return nil, err
	}
	if err := requireComponent(hotel, models.SlotHotel, models.VerticalStays); err != nil {
		return nil, err
	}

	components := map[string]models.Offer{
		models.SlotFlight: *flight,
		models.SlotHotel:  *hotel,
	}

	total, savings := price(flight.TotalPrice + hotel.TotalPrice)

	return &models.PackageOffer{
		Type:         models.PackageTypeFlightHotel,
		Components:   components,
		TotalPrice:   total,
		Savings:      savings,
		SearchParams: params,
	}, nil
}

// CreateFlightHotelCarPackage extends the flight+hotel bundle with a car
// slot; the car's standalone price joins the savings computation.
func CreateFlightHotelCarPackage(flight, hotel, car *models.Offer, params models.SearchParams) (*models.PackageOffer, error) {
	if err := requireComponent(car, models.SlotCar, models.VerticalCars); err != nil {
		return nil, err
	}

	pkg, err := CreateFlightHotelPackage(flight, hotel, params)
	if err != nil {
		return nil, err
	}

	pkg.Type = models.PackageTypeFlightHotelCar
	pkg.Components[models.SlotCar] = *car
	pkg.TotalPrice, pkg.Savings = price(flight.TotalPrice + hotel.TotalPrice + car.TotalPrice)

	return pkg, nil
}

func requireComponent(offer *models.Offer, slot string, vertical models.Vertical) error {
	if offer == nil || offer.Vertical != vertical {
		return &InvalidComponentError{Slot: slot}
	}
	return nil
}

func price(standaloneSum float64) (total, savings float64) {
	total = round2(standaloneSum * (1 - DiscountRate))
	savings = standaloneSum - total
	if savings < 0 {
		savings = 0
	}
	return total, round2(savings)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
