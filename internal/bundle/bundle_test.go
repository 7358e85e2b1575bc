package bundle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/faredeck/faredeck/internal/models"
)

func testFlight() *models.Offer {
	return &models.Offer{
		ID:         "fl-1",
		Provider:   "skyway",
		Vertical:   models.VerticalFlights,
		Title:      "JFK - CDG nonstop",
		BasePrice:  520,
		TaxesFees:  80,
		TotalPrice: 600,
		Currency:   "USD",
	}
}

func testHotel() *models.Offer {
	stars := 4
	return &models.Offer{
		ID:         "ho-1",
		Provider:   "nestico",
		Vertical:   models.VerticalStays,
		Title:      "Hotel Lutetia",
		BasePrice:  350,
		TaxesFees:  50,
		TotalPrice: 400,
		Currency:   "USD",
		Stars:      &stars,
	}
}

func testCar() *models.Offer {
	return &models.Offer{
		ID:         "ca-1",
		Provider:   "gearup",
		Vertical:   models.VerticalCars,
		Title:      "Compact, 5 days",
		TotalPrice: 200,
		Currency:   "USD",
	}
}

func testParams() models.SearchParams {
	return models.SearchParams{
		Origin:      "New York",
		Destination: "Paris",
		StartDate:   "2026-09-10",
		EndDate:     "2026-09-17",
		Passengers:  2,
	}
}

func TestCreateFlightHotelPackage(t *testing.T) {
	flight := testFlight()
	hotel := testHotel()

	pkg, err := CreateFlightHotelPackage(flight, hotel, testParams())
	require.NoError(t, err)

	assert.Equal(t, models.PackageTypeFlightHotel, pkg.Type)
	assert.InDelta(t, 900, pkg.TotalPrice, 1e-9) // 1000 * 0.9
	assert.InDelta(t, 100, pkg.Savings, 1e-9)
	assert.Equal(t, *flight, pkg.Components[models.SlotFlight])
	assert.Equal(t, *hotel, pkg.Components[models.SlotHotel])
	assert.Equal(t, "Paris", pkg.SearchParams.Destination)
}

func TestCreateFlightHotelPackagePositiveInvariants(t *testing.T) {
	pkg, err := CreateFlightHotelPackage(testFlight(), testHotel(), testParams())
	require.NoError(t, err)

	assert.Greater(t, pkg.TotalPrice, 0.0)
	assert.GreaterOrEqual(t, pkg.Savings, 0.0)
}

func TestCreateFlightHotelPackageMissingComponent(t *testing.T) {
	var invalidErr *InvalidComponentError

	_, err := CreateFlightHotelPackage(nil, testHotel(), testParams())
	require.ErrorAs(t, err, &invalidErr)
	assert.Equal(t, models.SlotFlight, invalidErr.Slot)
	assert.ErrorIs(t, err, ErrMissingComponent)

	_, err = CreateFlightHotelPackage(testFlight(), nil, testParams())
	require.ErrorAs(t, err, &invalidErr)
	assert.Equal(t, models.SlotHotel, invalidErr.Slot)
}

func TestCreateFlightHotelPackageWrongVertical(t *testing.T) {
	var invalidErr *InvalidComponentError

	// A car offer cannot fill the hotel slot.
	_, err := CreateFlightHotelPackage(testFlight(), testCar(), testParams())
	require.ErrorAs(t, err, &invalidErr)
	assert.Equal(t, models.SlotHotel, invalidErr.Slot)
}

func TestCreateFlightHotelCarPackage(t *testing.T) {
	pkg, err := CreateFlightHotelCarPackage(testFlight(), testHotel(), testCar(), testParams())
	require.NoError(t, err)

	assert.Equal(t, models.PackageTypeFlightHotelCar, pkg.Type)
	assert.Len(t, pkg.Components, 3)
	assert.InDelta(t, 1080, pkg.TotalPrice, 1e-9) // 1200 * 0.9
	assert.InDelta(t, 120, pkg.Savings, 1e-9)
}

func TestCreateFlightHotelCarPackageMissingCar(t *testing.T) {
	var invalidErr *InvalidComponentError

	_, err := CreateFlightHotelCarPackage(testFlight(), testHotel(), nil, testParams())
	require.ErrorAs(t, err, &invalidErr)
	assert.Equal(t, models.SlotCar, invalidErr.Slot)
}
