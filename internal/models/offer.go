package models

// OfferResponse is one page of results from the flight offers provider.
type OfferResponse struct {
	Data         []Offer      `json:"data"`
	Dictionaries Dictionaries `json:"dictionaries"`
}

type Dictionaries struct {
	Carriers   map[string]string        `json:"carriers,omitempty"`
	Aircraft   map[string]string        `json:"aircraft,omitempty"`
	Locations  map[string]LocationEntry `json:"locations,omitempty"`
	Currencies map[string]string        `json:"currencies,omitempty"`
}

type LocationEntry struct {
	CityCode    string `json:"cityCode"`
	CountryCode string `json:"countryCode"`
}

type Offer struct {
	ID                     string      `json:"id"`
	Source                 string      `json:"source,omitempty"`
	OneWay                 bool        `json:"oneWay"`
	LastTicketingDate      string      `json:"lastTicketingDate,omitempty"`
	NumberOfBookableSeats  int         `json:"numberOfBookableSeats,omitempty"`
	Itineraries            []Itinerary `json:"itineraries"`
	Price                  OfferPrice  `json:"price"`
	ValidatingAirlineCodes []string    `json:"validatingAirlineCodes"`
}

type Itinerary struct {
	Duration string    `json:"duration"`
	Segments []Segment `json:"segments"`
}

type Segment struct {
	ID            string       `json:"id"`
	Departure     SegmentPoint `json:"departure"`
	Arrival       SegmentPoint `json:"arrival"`
	CarrierCode   string       `json:"carrierCode"`
	Number        string       `json:"number"`
	Aircraft      AircraftRef  `json:"aircraft"`
	Duration      string       `json:"duration"`
	NumberOfStops int          `json:"numberOfStops"`
}

type SegmentPoint struct {
	IATACode string `json:"iataCode"`
	Terminal string `json:"terminal,omitempty"`
	At       string `json:"at"`
}

type AircraftRef struct {
	Code string `json:"code"`
}

type OfferPrice struct {
	Currency   string `json:"currency"`
	Total      string `json:"total"`
	Base       string `json:"base,omitempty"`
	GrandTotal string `json:"grandTotal"`
}
