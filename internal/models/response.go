package models

type SearchMetadata struct {
	Provider     string `json:"provider"`
	Received     int    `json:"received"`
	Dropped      int    `json:"dropped"`
	AllMalformed bool   `json:"all_malformed"`
	SearchTimeMs int64  `json:"search_time_ms"`
	CacheHit     bool   `json:"cache_hit"`
}

type ViewResponse struct {
	Flights           []Flight     `json:"flights"`
	Chart             []ChartPoint `json:"chart"`
	AvailableAirlines []string     `json:"available_airlines"`
	Bounds            PriceRange   `json:"bounds"`
	Filter            FilterSpec   `json:"filter"`
	TotalResults      int          `json:"total_results"`
}

type SearchResponse struct {
	SearchID       string         `json:"search_id"`
	SearchCriteria SearchRequest  `json:"search_criteria"`
	Metadata       SearchMetadata `json:"metadata"`
	View           ViewResponse   `json:"view"`
}

type SessionResponse struct {
	SearchID string       `json:"search_id"`
	View     ViewResponse `json:"view"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}
