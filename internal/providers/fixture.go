package providers

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/abhi1117/Flight-Search-Engine/internal/models"
	"github.com/abhi1117/Flight-Search-Engine/internal/providers/data"
)

// FixtureProvider serves offers from a bundled sample response. It is
// used when no API credentials are configured.
type FixtureProvider struct {
	resp models.OfferResponse
}

func NewFixtureProvider() (*FixtureProvider, error) {
	return NewFixtureProviderFromJSON(data.Offers)
}

func NewFixtureProviderFromJSON(raw []byte) (*FixtureProvider, error) {
	var resp models.OfferResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, err
	}
	return &FixtureProvider{resp: resp}, nil
}

func (p *FixtureProvider) Name() string {
	return "fixture"
}

func (p *FixtureProvider) Search(ctx context.Context, req models.SearchRequest) (*models.OfferResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := &models.OfferResponse{
		Data:         make([]models.Offer, 0),
		Dictionaries: p.resp.Dictionaries,
	}

	for _, offer := range p.resp.Data {
		if !matchesRoute(offer, req) {
			continue
		}
		if req.NonStop && len(offer.Itineraries[0].Segments) > 1 {
			continue
		}
		result.Data = append(result.Data, offer)
		if req.Max > 0 && len(result.Data) >= req.Max {
			break
		}
	}

	return result, nil
}

// matchesRoute checks the outbound origin, destination and departure date.
func matchesRoute(offer models.Offer, req models.SearchRequest) bool {
	if len(offer.Itineraries) == 0 || len(offer.Itineraries[0].Segments) == 0 {
		return false
	}

	segments := offer.Itineraries[0].Segments
	first, last := segments[0], segments[len(segments)-1]

	if !strings.EqualFold(first.Departure.IATACode, req.Origin) ||
		!strings.EqualFold(last.Arrival.IATACode, req.Destination) {
		return false
	}

	return strings.HasPrefix(first.Departure.At, req.DepartureDate)
}
