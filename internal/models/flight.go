package models

// Flight is the normalized, display-ready form of one provider offer.
// Only the outbound itinerary is represented.
type Flight struct {
	ID               string          `json:"id"`
	Airline          string          `json:"airline"`
	AirlineCode      string          `json:"airlineCode"`
	AirlineLogoURL   string          `json:"airlineLogoUrl"`
	DepartureTime    string          `json:"departureTime"`
	ArrivalTime      string          `json:"arrivalTime"`
	DepartureAirport string          `json:"departureAirport"`
	ArrivalAirport   string          `json:"arrivalAirport"`
	DurationLabel    string          `json:"duration"`
	StopCount        int             `json:"stops"`
	Price            float64         `json:"price"`
	Currency         string          `json:"currency"`
	FormattedPrice   string          `json:"formattedPrice"`
	Segments         []FlightSegment `json:"segments"`
	Layovers         []string        `json:"layovers"`
}

type FlightSegment struct {
	CarrierCode       string `json:"carrierCode"`
	Airline           string `json:"airline"`
	FlightNumber      string `json:"flightNumber"`
	Aircraft          string `json:"aircraft"`
	AircraftName      string `json:"aircraftName,omitempty"`
	DepartureAirport  string `json:"departureAirport"`
	DepartureTerminal string `json:"departureTerminal,omitempty"`
	DepartureTime     string `json:"departureTime"`
	ArrivalAirport    string `json:"arrivalAirport"`
	ArrivalTerminal   string `json:"arrivalTerminal,omitempty"`
	ArrivalTime       string `json:"arrivalTime"`
	DurationLabel     string `json:"duration"`
}

// ChartPoint is one flight projected for the price chart.
type ChartPoint struct {
	Time      string  `json:"time"`
	Price     float64 `json:"price"`
	ID        string  `json:"id"`
	StopCount int     `json:"stops"`
	Airline   string  `json:"airline"`
}
