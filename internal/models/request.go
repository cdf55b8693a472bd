package models

import (
	"strings"
	"time"
)

type SearchRequest struct {
	Origin        string  `json:"origin"`
	Destination   string  `json:"destination"`
	DepartureDate string  `json:"departure_date"`
	ReturnDate    *string `json:"return_date,omitempty"`
	Adults        int     `json:"adults"`
	TravelClass   string  `json:"travel_class,omitempty"`
	NonStop       bool    `json:"non_stop,omitempty"`
	Currency      string  `json:"currency,omitempty"`
	Max           int     `json:"max,omitempty"`
}

func (r *SearchRequest) Validate() error {
	r.Origin = strings.ToUpper(strings.TrimSpace(r.Origin))
	r.Destination = strings.ToUpper(strings.TrimSpace(r.Destination))

	if r.Origin == "" {
		return ErrMissingOrigin
	}
	if r.Destination == "" {
		return ErrMissingDestination
	}
	if r.DepartureDate == "" {
		return ErrMissingDepartureDate
	}
	if _, err := time.Parse("2006-01-02", r.DepartureDate); err != nil {
		return ErrInvalidDepartureDate
	}
	if r.ReturnDate != nil && *r.ReturnDate != "" {
		if _, err := time.Parse("2006-01-02", *r.ReturnDate); err != nil {
			return ErrInvalidReturnDate
		}
	}
	if r.Adults <= 0 {
		r.Adults = 1
	}
	if r.TravelClass != "" {
		r.TravelClass = strings.ToUpper(r.TravelClass)
	}
	r.Currency = strings.ToUpper(r.Currency)
	return nil
}

type ValidationError string

func (e ValidationError) Error() string {
	return string(e)
}

const (
	ErrMissingOrigin        ValidationError = "origin is required"
	ErrMissingDestination   ValidationError = "destination is required"
	ErrMissingDepartureDate ValidationError = "departure_date is required"
	ErrInvalidDepartureDate ValidationError = "departure_date must be YYYY-MM-DD"
	ErrInvalidReturnDate    ValidationError = "return_date must be YYYY-MM-DD"
	ErrInvalidSortKey       ValidationError = "sortBy must be one of price, duration, departure, arrival"
	ErrInvalidPriceRange    ValidationError = "priceRange.min must not exceed priceRange.max"
)
