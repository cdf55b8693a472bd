// Package normalizer converts raw provider flight offers into the flat
// models.Flight records the view engine works on.
package normalizer

import (
	"errors"
	"log"
	"maps"
	"math"
	"strconv"
	"strings"

	"github.com/abhi1117/Flight-Search-Engine/internal/models"
	"github.com/abhi1117/Flight-Search-Engine/internal/timefmt"
	"github.com/abhi1117/Flight-Search-Engine/pkg/currency"
)

// ErrMalformedOffer matches every MalformedOfferError.
var ErrMalformedOffer = errors.New("malformed offer")

type MalformedOfferError struct {
	OfferID string
	Reason  string
}

func (e *MalformedOfferError) Error() string {
	return "offer " + strconv.Quote(e.OfferID) + ": " + e.Reason
}

func (e *MalformedOfferError) Unwrap() error {
	return ErrMalformedOffer
}

func malformed(offer models.Offer, reason string) error {
	return &MalformedOfferError{OfferID: offer.ID, Reason: reason}
}

type Normalizer struct {
	carriers map[string]string
}

// New returns a Normalizer whose static carrier table is the built-in one
// extended by extra. Entries in extra replace built-in names.
func New(extra map[string]string) *Normalizer {
	carriers := maps.Clone(knownCarriers)
	for code, name := range extra {
		carriers[strings.ToUpper(strings.TrimSpace(code))] = name
	}
	return &Normalizer{carriers: carriers}
}

var defaultNormalizer = New(nil)

// Normalize converts one offer using the built-in carrier table.
func Normalize(offer models.Offer, carriers map[string]string) (models.Flight, error) {
	return defaultNormalizer.Normalize(offer, carriers)
}

// NormalizeAll converts a provider batch using the built-in carrier table.
func NormalizeAll(resp models.OfferResponse) Batch {
	return defaultNormalizer.NormalizeAll(resp)
}

// Normalize converts one offer. carriers is the search response's own
// code-to-name dictionary and may be nil.
func (n *Normalizer) Normalize(offer models.Offer, carriers map[string]string) (models.Flight, error) {
	return n.normalize(offer, models.Dictionaries{Carriers: carriers})
}

func (n *Normalizer) normalize(offer models.Offer, dict models.Dictionaries) (models.Flight, error) {
	if len(offer.Itineraries) == 0 {
		return models.Flight{}, malformed(offer, "no itineraries")
	}

	// Return itineraries are not represented.
	itinerary := offer.Itineraries[0]
	segments := itinerary.Segments
	if len(segments) == 0 {
		return models.Flight{}, malformed(offer, "first itinerary has no segments")
	}

	first, last := segments[0], segments[len(segments)-1]

	depTime, err := timefmt.Clock(first.Departure.At)
	if err != nil {
		return models.Flight{}, malformed(offer, "unreadable departure time "+strconv.Quote(first.Departure.At))
	}
	arrTime, err := timefmt.Clock(last.Arrival.At)
	if err != nil {
		return models.Flight{}, malformed(offer, "unreadable arrival time "+strconv.Quote(last.Arrival.At))
	}

	price, err := parsePrice(offer.Price)
	if err != nil {
		return models.Flight{}, malformed(offer, err.Error())
	}

	resolver := n.resolverFor(dict.Carriers)

	primary := first.CarrierCode
	if len(offer.ValidatingAirlineCodes) > 0 && offer.ValidatingAirlineCodes[0] != "" {
		primary = offer.ValidatingAirlineCodes[0]
	}

	details := make([]models.FlightSegment, len(segments))
	for i, s := range segments {
		details[i] = segmentDetail(s, resolver, dict.Aircraft)
	}

	layovers := make([]string, 0, len(segments)-1)
	for i := 0; i < len(segments)-1; i++ {
		layovers = append(layovers, layoverLabel(segments[i].Arrival.IATACode, gapMinutes(segments[i], segments[i+1])))
	}

	return models.Flight{
		ID:               offer.ID,
		Airline:          resolver.Resolve(primary),
		AirlineCode:      strings.ToUpper(primary),
		AirlineLogoURL:   LogoURL(primary),
		DepartureTime:    depTime,
		ArrivalTime:      arrTime,
		DepartureAirport: first.Departure.IATACode,
		ArrivalAirport:   last.Arrival.IATACode,
		DurationLabel:    RenderDuration(itinerary.Duration),
		StopCount:        len(segments) - 1,
		Price:            price,
		Currency:         offer.Price.Currency,
		FormattedPrice:   currency.Format(price, offer.Price.Currency),
		Segments:         details,
		Layovers:         layovers,
	}, nil
}

// NormalizeAll converts every offer in a batch with the batch's shared
// dictionaries. Offers that cannot be normalized are dropped and counted.
func (n *Normalizer) NormalizeAll(resp models.OfferResponse) Batch {
	batch := Batch{
		Flights:  make([]models.Flight, 0, len(resp.Data)),
		Received: len(resp.Data),
	}

	for _, offer := range resp.Data {
		flight, err := n.normalize(offer, resp.Dictionaries)
		if err != nil {
			log.Printf("Dropping offer: %v", err)
			batch.Dropped++
			continue
		}
		batch.Flights = append(batch.Flights, flight)
	}

	if batch.AllMalformed() {
		log.Printf("All %d offers in batch were malformed", batch.Received)
	}

	return batch
}

// Batch is the result of normalizing one provider response.
type Batch struct {
	Flights  []models.Flight
	Received int
	Dropped  int
}

// AllMalformed reports whether the provider returned offers but none of
// them could be normalized, as opposed to returning no offers at all.
func (b Batch) AllMalformed() bool {
	return b.Received > 0 && len(b.Flights) == 0
}

func segmentDetail(s models.Segment, resolver NameResolver, aircraft map[string]string) models.FlightSegment {
	depTime, _ := timefmt.Clock(s.Departure.At)
	arrTime, _ := timefmt.Clock(s.Arrival.At)

	flightNumber := s.CarrierCode
	if s.Number != "" {
		flightNumber = strings.TrimSpace(s.CarrierCode + " " + s.Number)
	}

	return models.FlightSegment{
		CarrierCode:       s.CarrierCode,
		Airline:           resolver.Resolve(s.CarrierCode),
		FlightNumber:      flightNumber,
		Aircraft:          s.Aircraft.Code,
		AircraftName:      aircraft[s.Aircraft.Code],
		DepartureAirport:  s.Departure.IATACode,
		DepartureTerminal: s.Departure.Terminal,
		DepartureTime:     depTime,
		ArrivalAirport:    s.Arrival.IATACode,
		ArrivalTerminal:   s.Arrival.Terminal,
		ArrivalTime:       arrTime,
		DurationLabel:     RenderDuration(s.Duration),
	}
}

// gapMinutes is the ground time between two consecutive segments. Unreadable
// timestamps yield zero.
func gapMinutes(prev, next models.Segment) int {
	arr, err := timefmt.Parse(prev.Arrival.At)
	if err != nil {
		return 0
	}
	dep, err := timefmt.Parse(next.Departure.At)
	if err != nil {
		return 0
	}
	return timefmt.MinutesBetween(arr, dep)
}

func parsePrice(p models.OfferPrice) (float64, error) {
	raw := p.GrandTotal
	if strings.TrimSpace(raw) == "" {
		raw = p.Total
	}
	if strings.TrimSpace(raw) == "" {
		return 0, errors.New("missing price")
	}

	price, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(price) || math.IsInf(price, 0) {
		return 0, errors.New("unreadable price " + strconv.Quote(raw))
	}
	if price < 0 {
		return 0, errors.New("negative price " + strconv.Quote(raw))
	}
	return price, nil
}
