// Package geo resolves destination cities to countries for the
// domestic/international decision in upsell evaluation.
package geo

import "strings"

// cityCountries maps common search destinations to ISO 3166-1 alpha-2
// country codes. Unknown cities resolve to nothing; callers must not guess.
var cityCountries = map[string]string{
	// United States
	"new york":      "US",
	"los angeles":   "US",
	"san francisco": "US",
	"chicago":       "US",
	"miami":         "US",
	"orlando":       "US",
	"las vegas":     "US",
	"seattle":       "US",
	"boston":        "US",
	"denver":        "US",
	"austin":        "US",
	"honolulu":      "US",

	// Europe
	"paris":     "FR",
	"nice":      "FR",
	"lyon":      "FR",
	"london":    "GB",
	"edinburgh": "GB",
	"rome":      "IT",
	"milan":     "IT",
	"venice":    "IT",
	"florence":  "IT",
	"barcelona": "ES",
	"madrid":    "ES",
	"lisbon":    "PT",
	"amsterdam": "NL",
	"berlin":    "DE",
	"munich":    "DE",
	"athens":    "GR",
	"santorini": "GR",

	// Americas
	"toronto":        "CA",
	"vancouver":      "CA",
	"montreal":       "CA",
	"cancun":         "MX",
	"mexico city":    "MX",
	"rio de janeiro": "BR",
	"sao paulo":      "BR",

	// Asia-Pacific
	"tokyo":     "JP",
	"osaka":     "JP",
	"kyoto":     "JP",
	"seoul":     "KR",
	"bangkok":   "TH",
	"phuket":    "TH",
	"bali":      "ID",
	"jakarta":   "ID",
	"singapore": "SG",
	"sydney":    "AU",
	"melbourne": "AU",
	"dubai":     "AE",
}

// CountryForCity looks up the country for a city name,
// case-insensitively.
func CountryForCity(name string) (string, bool) {
	country, ok := cityCountries[strings.ToLower(strings.TrimSpace(name))]
	return country, ok
}

// IsInternational reports whether a trip crosses a border. With an origin
// present, both cities must resolve and differ in country. With no origin,
// the destination counts as international when it resolves to a country
// other than the configured domestic one. Unresolvable cities never count.
func IsInternational(origin, destination, domestic string) bool {
	destCountry, ok := CountryForCity(destination)
	if !ok {
		return false
	}

	if origin != "" {
		originCountry, ok := CountryForCity(origin)
		if !ok {
			return false
		}
		return originCountry != destCountry
	}

	return domestic != "" && destCountry != domestic
}
