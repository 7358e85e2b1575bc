package models

// Vertical is a travel product category.
type Vertical string

const (
	VerticalFlights    Vertical = "flights"
	VerticalStays      Vertical = "stays"
	VerticalCars       Vertical = "cars"
	VerticalPackages   Vertical = "packages"
	VerticalActivities Vertical = "things-to-do"
	VerticalCruises    Vertical = "cruises"
)

func (v Vertical) Valid() bool {
	switch v {
	case VerticalFlights, VerticalStays, VerticalCars, VerticalPackages, VerticalActivities, VerticalCruises:
		return true
	}
	return false
}

// Offer is a single result produced by a provider adapter. Offers are
// immutable once produced; ranking and bundling read them without mutation.
//
// TotalPrice is not always BasePrice+TaxesFees; some feeds omit the fee
// breakdown, so all three fields are carried from the feed as-is.
type Offer struct {
	ID          string   `json:"id"`
	Provider    string   `json:"provider"`
	Vertical    Vertical `json:"vertical"`
	Title       string   `json:"title"`
	Subtitle    string   `json:"subtitle,omitempty"`
	BasePrice   float64  `json:"base_price"`
	TaxesFees   float64  `json:"taxes_fees"`
	TotalPrice  float64  `json:"total_price"`
	Currency    string   `json:"currency"`
	Rating      float64  `json:"rating"`
	ReviewCount int      `json:"review_count"`
	ImageURL    string   `json:"image,omitempty"`
	Refundable  bool     `json:"refundable"`
	EPC         float64  `json:"epc"`

	// Vertical-specific fields; only the group matching Vertical is set.
	Stars      *int    `json:"stars,omitempty"`       // stays
	CabinClass *string `json:"cabin_class,omitempty"` // flights
	CarClass   *string `json:"car_class,omitempty"`   // cars

	ValueScore   float64 `json:"value_score,omitempty"`
	DisplayPrice string  `json:"display_price,omitempty"`
}

const (
	PackageTypeFlightHotel    = "flight-hotel"
	PackageTypeFlightHotelCar = "flight-hotel-car"
)

// Package component slot names.
const (
	SlotFlight = "flight"
	SlotHotel  = "hotel"
	SlotCar    = "car"
)

// PackageOffer is a composite offer assembled from component offers.
// Components reference the exact input offers unchanged.
type PackageOffer struct {
	Type         string           `json:"type"`
	Components   map[string]Offer `json:"components"`
	TotalPrice   float64          `json:"total_price"`
	Savings      float64          `json:"savings"`
	SearchParams SearchParams     `json:"search_params"`
}

// SearchParams is the query that produced a result set.
type SearchParams struct {
	Origin      string `json:"origin,omitempty"`
	Destination string `json:"destination"`
	StartDate   string `json:"start_date,omitempty"`
	EndDate     string `json:"end_date,omitempty"`
	Passengers  int    `json:"passengers,omitempty"`
}

// TripContext is the read-only input to upsell evaluation, built by the
// caller per search.
type TripContext struct {
	Vertical     Vertical     `json:"vertical"`
	SearchParams SearchParams `json:"search_params"`
	Offers       []Offer      `json:"offers,omitempty"`

	// Convenience overrides; fall back to SearchParams when empty.
	Origin      string `json:"origin,omitempty"`
	Destination string `json:"destination,omitempty"`
}

func (t TripContext) OriginCity() string {
	if t.Origin != "" {
		return t.Origin
	}
	return t.SearchParams.Origin
}

func (t TripContext) DestinationCity() string {
	if t.Destination != "" {
		return t.Destination
	}
	return t.SearchParams.Destination
}

type UpsellType string

const (
	UpsellESIM      UpsellType = "esim"
	UpsellInsurance UpsellType = "insurance"
	UpsellBundle    UpsellType = "bundle"
)

// UpsellRecommendation is at most one add-on suggestion per trip context.
type UpsellRecommendation struct {
	Type     UpsellType `json:"type"`
	Title    string     `json:"title"`
	Reason   string     `json:"reason,omitempty"`
	Priority int        `json:"priority"`
}
