// Package view keeps the derived results view of one search consistent
// with the active filter.
//
// An Engine owns the working set of normalized flights for a search and a
// filter spec. Every mutation recomputes the derived state from scratch
// into a new Snapshot and publishes it in one step, so readers observe
// either the old or the new state and never a mix.
package view

import (
	"math"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/abhi1117/Flight-Search-Engine/internal/filter"
	"github.com/abhi1117/Flight-Search-Engine/internal/models"
)

// DefaultBounds is the price window used when the working set is empty.
var DefaultBounds = models.PriceRange{Min: 0, Max: 1000}

type State int

const (
	Empty State = iota
	Populated
)

func (s State) String() string {
	if s == Populated {
		return "populated"
	}
	return "empty"
}

// Snapshot is an immutable view of the engine state. Callers must not
// modify the slices it holds.
type Snapshot struct {
	State    State
	Flights  []models.Flight
	Chart    []models.ChartPoint
	Airlines []string
	Bounds   models.PriceRange
	Filter   models.FilterSpec
	Total    int

	workingSet []models.Flight
}

type Engine struct {
	mu      sync.Mutex
	current atomic.Pointer[Snapshot]
}

func NewEngine() *Engine {
	e := &Engine{}
	e.current.Store(&Snapshot{
		State:    Empty,
		Flights:  []models.Flight{},
		Chart:    []models.ChartPoint{},
		Airlines: []string{},
		Bounds:   DefaultBounds,
		Filter:   DefaultFilter(DefaultBounds),
	})
	return e
}

// DefaultFilter is the filter a new search starts from.
func DefaultFilter(bounds models.PriceRange) models.FilterSpec {
	return models.FilterSpec{
		PriceRange: bounds,
		Stops:      []int{},
		Airlines:   []string{},
		SortBy:     models.SortByPrice,
	}
}

// Snapshot returns the most recently published state.
func (e *Engine) Snapshot() *Snapshot {
	return e.current.Load()
}

func (e *Engine) State() State {
	return e.current.Load().State
}

// SetWorkingSet replaces the working set, recomputes the price bounds and
// resets the filter to its defaults spanning those bounds.
func (e *Engine) SetWorkingSet(flights []models.Flight) {
	e.mu.Lock()
	defer e.mu.Unlock()

	workingSet := slices.Clone(flights)
	if workingSet == nil {
		workingSet = []models.Flight{}
	}

	bounds := priceBounds(workingSet)
	spec := DefaultFilter(bounds)
	view := filter.Apply(workingSet, spec)

	e.current.Store(&Snapshot{
		State:      Populated,
		Flights:    view,
		Chart:      filter.Chart(view),
		Airlines:   filter.Airlines(workingSet),
		Bounds:     bounds,
		Filter:     spec,
		Total:      len(workingSet),
		workingSet: workingSet,
	})
}

// UpdateFilter merges patch into the active filter and recomputes the
// view. Bounds and the airline list are left as they are. It does nothing
// before the first SetWorkingSet.
func (e *Engine) UpdateFilter(patch models.FilterPatch) {
	e.mu.Lock()
	defer e.mu.Unlock()

	prev := e.current.Load()
	if prev.State == Empty {
		return
	}

	e.publish(prev, merge(prev.Filter, patch))
}

// ResetFilter restores the default filter with the price range spanning
// the working set bounds. It does nothing before the first SetWorkingSet.
func (e *Engine) ResetFilter() {
	e.mu.Lock()
	defer e.mu.Unlock()

	prev := e.current.Load()
	if prev.State == Empty {
		return
	}

	e.publish(prev, DefaultFilter(prev.Bounds))
}

// publish derives a new snapshot from prev's working set under spec.
// Must be called with mu held.
func (e *Engine) publish(prev *Snapshot, spec models.FilterSpec) {
	view := filter.Apply(prev.workingSet, spec)

	next := *prev
	next.Flights = view
	next.Chart = filter.Chart(view)
	next.Filter = spec
	e.current.Store(&next)
}

func merge(spec models.FilterSpec, patch models.FilterPatch) models.FilterSpec {
	if patch.PriceRange != nil {
		spec.PriceRange = *patch.PriceRange
	}
	if patch.Stops != nil {
		spec.Stops = slices.Clone(patch.Stops)
	}
	if patch.Airlines != nil {
		spec.Airlines = slices.Clone(patch.Airlines)
	}
	if patch.SortBy != nil {
		spec.SortBy = *patch.SortBy
	}
	return spec
}

func priceBounds(flights []models.Flight) models.PriceRange {
	if len(flights) == 0 {
		return DefaultBounds
	}

	lo, hi := flights[0].Price, flights[0].Price
	for _, f := range flights[1:] {
		lo = min(lo, f.Price)
		hi = max(hi, f.Price)
	}

	return models.PriceRange{Min: math.Floor(lo), Max: math.Ceil(hi)}
}
