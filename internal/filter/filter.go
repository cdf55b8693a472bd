package filter

import (
	"cmp"
	"slices"
	"strings"

	"github.com/abhi1117/Flight-Search-Engine/internal/models"
	"github.com/abhi1117/Flight-Search-Engine/internal/normalizer"
)

// Apply returns the flights that pass spec, stably sorted by spec.SortBy.
// The input slice is never modified.
func Apply(flights []models.Flight, spec models.FilterSpec) []models.Flight {
	result := make([]models.Flight, 0, len(flights))
	for _, f := range flights {
		if Matches(f, spec) {
			result = append(result, f)
		}
	}

	Sort(result, spec.SortBy)
	return result
}

func Matches(f models.Flight, spec models.FilterSpec) bool {
	return matchesPrice(f, spec.PriceRange) &&
		matchesStops(f, spec.Stops) &&
		matchesAirlines(f, spec.Airlines)
}

func matchesPrice(f models.Flight, r models.PriceRange) bool {
	return f.Price >= r.Min && f.Price <= r.Max
}

func matchesStops(f models.Flight, buckets []int) bool {
	if len(buckets) == 0 {
		return true
	}
	for _, b := range buckets {
		if b == models.StopsTwoOrMore && f.StopCount >= models.StopsTwoOrMore {
			return true
		}
		if f.StopCount == b {
			return true
		}
	}
	return false
}

func matchesAirlines(f models.Flight, airlines []string) bool {
	if len(airlines) == 0 {
		return true
	}
	return slices.Contains(airlines, f.Airline)
}

// Sort orders flights ascending by key, keeping the relative order of
// equal elements. Unknown keys sort by price.
func Sort(flights []models.Flight, key models.SortKey) {
	if len(flights) < 2 {
		return
	}

	switch models.SortKey(strings.ToLower(string(key))) {
	case models.SortByDuration:
		slices.SortStableFunc(flights, func(a, b models.Flight) int {
			return cmp.Compare(normalizer.ParseDurationLabel(a.DurationLabel), normalizer.ParseDurationLabel(b.DurationLabel))
		})

	case models.SortByDeparture:
		slices.SortStableFunc(flights, func(a, b models.Flight) int {
			return strings.Compare(a.DepartureTime, b.DepartureTime)
		})

	case models.SortByArrival:
		slices.SortStableFunc(flights, func(a, b models.Flight) int {
			return strings.Compare(a.ArrivalTime, b.ArrivalTime)
		})

	default:
		slices.SortStableFunc(flights, func(a, b models.Flight) int {
			return cmp.Compare(a.Price, b.Price)
		})
	}
}

// Chart projects flights onto price chart points, one per flight.
func Chart(flights []models.Flight) []models.ChartPoint {
	points := make([]models.ChartPoint, len(flights))
	for i, f := range flights {
		points[i] = models.ChartPoint{
			Time:      f.DepartureTime,
			Price:     f.Price,
			ID:        f.ID,
			StopCount: f.StopCount,
			Airline:   f.Airline,
		}
	}
	return points
}

// Airlines returns the sorted distinct airline names in flights.
func Airlines(flights []models.Flight) []string {
	seen := make(map[string]bool, len(flights))
	names := make([]string, 0, len(flights))
	for _, f := range flights {
		if !seen[f.Airline] {
			seen[f.Airline] = true
			names = append(names, f.Airline)
		}
	}
	slices.Sort(names)
	return names
}
