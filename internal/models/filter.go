package models

type SortKey string

const (
	SortByPrice     SortKey = "price"
	SortByDuration  SortKey = "duration"
	SortByDeparture SortKey = "departure"
	SortByArrival   SortKey = "arrival"
)

func (k SortKey) Valid() bool {
	switch k {
	case SortByPrice, SortByDuration, SortByDeparture, SortByArrival:
		return true
	}
	return false
}

// StopsTwoOrMore is the stops bucket that matches any flight with two or more stops.
const StopsTwoOrMore = 2

type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

type FilterSpec struct {
	PriceRange PriceRange `json:"priceRange"`
	Stops      []int      `json:"stops"`
	Airlines   []string   `json:"airlines"`
	SortBy     SortKey    `json:"sortBy"`
}

// FilterPatch is a partial FilterSpec. Nil fields are left unchanged; a
// non-nil empty slice clears the corresponding selection.
type FilterPatch struct {
	PriceRange *PriceRange `json:"priceRange,omitempty"`
	Stops      []int       `json:"stops,omitempty"`
	Airlines   []string    `json:"airlines,omitempty"`
	SortBy     *SortKey    `json:"sortBy,omitempty"`
}

func (p FilterPatch) Validate() error {
	if p.SortBy != nil && !p.SortBy.Valid() {
		return ErrInvalidSortKey
	}
	if p.PriceRange != nil && p.PriceRange.Min > p.PriceRange.Max {
		return ErrInvalidPriceRange
	}
	return nil
}
