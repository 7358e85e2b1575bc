package models

type SearchMetadata struct {
	TotalResults       int      `json:"total_results"`
	ProvidersQueried   int      `json:"providers_queried"`
	ProvidersSucceeded int      `json:"providers_succeeded"`
	ProvidersFailed    int      `json:"providers_failed"`
	FailedProviders    []string `json:"failed_providers,omitempty"`
	SearchTimeMs       int64    `json:"search_time_ms"`
	CacheHit           bool     `json:"cache_hit"`
}

type SearchResponse struct {
	SearchCriteria SearchRequest  `json:"search_criteria"`
	Metadata       SearchMetadata `json:"metadata"`
	Offers         []Offer        `json:"offers"`
}

type PackageResponse struct {
	Package *PackageOffer `json:"package"`
}

type UpsellResponse struct {
	Recommendation *UpsellRecommendation `json:"recommendation"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}
