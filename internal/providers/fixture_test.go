package providers

import (
	"context"
	"testing"

	"github.com/abhi1117/Flight-Search-Engine/internal/models"
)

func TestFixtureProviderFiltersRoute(t *testing.T) {
	p, err := NewFixtureProvider()
	if err != nil {
		t.Fatalf("NewFixtureProvider error: %v", err)
	}

	resp, err := p.Search(context.Background(), models.SearchRequest{
		Origin:        "jfk",
		Destination:   "LAX",
		DepartureDate: "2025-12-15",
	})
	if err != nil {
		t.Fatalf("Search error: %v", err)
	}

	if len(resp.Data) != 8 {
		t.Errorf("offers = %d, want 8", len(resp.Data))
	}
	for _, o := range resp.Data {
		segs := o.Itineraries[0].Segments
		if segs[0].Departure.IATACode != "JFK" || segs[len(segs)-1].Arrival.IATACode != "LAX" {
			t.Errorf("offer %s does not fly JFK-LAX", o.ID)
		}
	}
	if resp.Dictionaries.Carriers["B6"] != "JETBLUE AIRWAYS" {
		t.Errorf("carrier dictionary missing: %v", resp.Dictionaries.Carriers)
	}
}

func TestFixtureProviderNoMatch(t *testing.T) {
	p, err := NewFixtureProvider()
	if err != nil {
		t.Fatalf("NewFixtureProvider error: %v", err)
	}

	resp, err := p.Search(context.Background(), models.SearchRequest{
		Origin:        "JFK",
		Destination:   "LAX",
		DepartureDate: "2025-12-16",
	})
	if err != nil {
		t.Fatalf("Search error: %v", err)
	}
	if resp.Data == nil || len(resp.Data) != 0 {
		t.Errorf("offers = %v, want empty", resp.Data)
	}
}

func TestFixtureProviderNonStopAndMax(t *testing.T) {
	p, err := NewFixtureProvider()
	if err != nil {
		t.Fatalf("NewFixtureProvider error: %v", err)
	}

	req := models.SearchRequest{Origin: "JFK", Destination: "LAX", DepartureDate: "2025-12-15", NonStop: true}
	resp, _ := p.Search(context.Background(), req)
	if len(resp.Data) != 5 {
		t.Errorf("non-stop offers = %d, want 5", len(resp.Data))
	}

	req.Max = 2
	resp, _ = p.Search(context.Background(), req)
	if len(resp.Data) != 2 {
		t.Errorf("offers = %d, want 2", len(resp.Data))
	}
}

func TestFixtureProviderHonoursCancelledContext(t *testing.T) {
	p, err := NewFixtureProviderFromJSON([]byte(`{"data":[]}`))
	if err != nil {
		t.Fatalf("NewFixtureProviderFromJSON error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := p.Search(ctx, models.SearchRequest{}); err == nil {
		t.Error("expected context error")
	}
}

func TestFixtureProviderBadJSON(t *testing.T) {
	if _, err := NewFixtureProviderFromJSON([]byte("nope")); err == nil {
		t.Error("expected error for invalid fixture")
	}
}
