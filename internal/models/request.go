package models

type OfferFilters struct {
	PriceMin       *float64 `json:"price_min,omitempty"`
	PriceMax       *float64 `json:"price_max,omitempty"`
	MinRating      *float64 `json:"min_rating,omitempty"`
	RefundableOnly bool     `json:"refundable_only,omitempty"`
	Providers      []string `json:"providers,omitempty"`
}

type SearchRequest struct {
	Vertical    Vertical      `json:"vertical"`
	Origin      string        `json:"origin,omitempty"`
	Destination string        `json:"destination"`
	StartDate   string        `json:"start_date"`
	EndDate     string        `json:"end_date,omitempty"`
	Passengers  int           `json:"passengers"`
	Currency    string        `json:"currency,omitempty"`
	Filters     *OfferFilters `json:"filters,omitempty"`
	SortBy      string        `json:"sort_by,omitempty"`
	SortOrder   string        `json:"sort_order,omitempty"`
}

func (r *SearchRequest) Validate() error {
	if r.Vertical == "" {
		return ErrMissingVertical
	}
	if !r.Vertical.Valid() {
		return ErrUnknownVertical
	}
	if r.Destination == "" {
		return ErrMissingDestination
	}
	if r.Passengers <= 0 {
		r.Passengers = 1
	}
	if r.SortBy == "" {
		r.SortBy = "best_value"
	}
	if r.SortOrder == "" {
		r.SortOrder = "asc"
	}
	return nil
}

func (r SearchRequest) Params() SearchParams {
	return SearchParams{
		Origin:      r.Origin,
		Destination: r.Destination,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		Passengers:  r.Passengers,
	}
}

// PackageRequest carries the component offers a user selected for bundling.
type PackageRequest struct {
	Flight       *Offer       `json:"flight"`
	Hotel        *Offer       `json:"hotel"`
	Car          *Offer       `json:"car,omitempty"`
	SearchParams SearchParams `json:"search_params"`
}

type ValidationError string

func (e ValidationError) Error() string {
	return string(e)
}

const (
	ErrMissingVertical    ValidationError = "vertical is required"
	ErrUnknownVertical    ValidationError = "unknown vertical"
	ErrMissingDestination ValidationError = "destination is required"
)
