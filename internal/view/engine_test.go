package view

import (
	"reflect"
	"sync"
	"testing"

	"github.com/abhi1117/Flight-Search-Engine/internal/models"
)

func flight(id string, price float64, stops int, airline string) models.Flight {
	return models.Flight{ID: id, Price: price, StopCount: stops, Airline: airline, DepartureTime: "10:00"}
}

func ids(flights []models.Flight) []string {
	out := make([]string, len(flights))
	for i, f := range flights {
		out[i] = f.ID
	}
	return out
}

func priceRange(lo, hi float64) *models.PriceRange {
	return &models.PriceRange{Min: lo, Max: hi}
}

func sortKey(k models.SortKey) *models.SortKey {
	return &k
}

func TestNewEngineIsEmpty(t *testing.T) {
	e := NewEngine()
	snap := e.Snapshot()

	if e.State() != Empty {
		t.Errorf("state = %v, want empty", e.State())
	}
	if snap.Bounds != DefaultBounds {
		t.Errorf("bounds = %+v, want %+v", snap.Bounds, DefaultBounds)
	}
	if len(snap.Flights) != 0 || len(snap.Chart) != 0 || len(snap.Airlines) != 0 {
		t.Errorf("empty engine has derived data: %+v", snap)
	}
}

func TestFilterCallsWhileEmptyAreNoOps(t *testing.T) {
	e := NewEngine()
	before := e.Snapshot()

	e.UpdateFilter(models.FilterPatch{PriceRange: priceRange(5, 10)})
	e.ResetFilter()

	after := e.Snapshot()
	if after != before {
		t.Error("snapshot replaced while empty")
	}
	if e.State() != Empty || len(after.Flights) != 0 {
		t.Errorf("state = %v flights = %d", e.State(), len(after.Flights))
	}
}

func TestSetEmptyWorkingSet(t *testing.T) {
	e := NewEngine()
	e.SetWorkingSet([]models.Flight{})
	snap := e.Snapshot()

	if snap.State != Populated {
		t.Errorf("state = %v, want populated", snap.State)
	}
	if snap.Bounds != (models.PriceRange{Min: 0, Max: 1000}) {
		t.Errorf("bounds = %+v, want {0 1000}", snap.Bounds)
	}
	if snap.Flights == nil || len(snap.Flights) != 0 {
		t.Errorf("flights = %v, want empty", snap.Flights)
	}
	if snap.Airlines == nil || len(snap.Airlines) != 0 {
		t.Errorf("airlines = %v, want empty", snap.Airlines)
	}
}

func TestSetWorkingSetComputesBoundsAndDefaults(t *testing.T) {
	e := NewEngine()
	e.SetWorkingSet([]models.Flight{
		flight("a", 250.4, 1, "United"),
		flight("b", 99.6, 0, "Delta"),
		flight("c", 900.01, 2, "Delta"),
	})
	snap := e.Snapshot()

	wantBounds := models.PriceRange{Min: 99, Max: 901}
	if snap.Bounds != wantBounds {
		t.Errorf("bounds = %+v, want %+v", snap.Bounds, wantBounds)
	}
	if snap.Filter.PriceRange != wantBounds {
		t.Errorf("filter price range = %+v, want bounds", snap.Filter.PriceRange)
	}
	if snap.Filter.SortBy != models.SortByPrice {
		t.Errorf("sort = %q, want price", snap.Filter.SortBy)
	}
	if got := ids(snap.Flights); !reflect.DeepEqual(got, []string{"b", "a", "c"}) {
		t.Errorf("view = %v, want [b a c]", got)
	}
	if !reflect.DeepEqual(snap.Airlines, []string{"Delta", "United"}) {
		t.Errorf("airlines = %v", snap.Airlines)
	}
	if len(snap.Chart) != 3 || snap.Chart[0].ID != "b" || snap.Chart[0].Airline != "Delta" {
		t.Errorf("chart = %+v", snap.Chart)
	}
	if snap.Total != 3 {
		t.Errorf("total = %d, want 3", snap.Total)
	}
}

func TestUpdateFilterPriceRange(t *testing.T) {
	e := NewEngine()
	e.SetWorkingSet([]models.Flight{
		flight("cheap", 100, 0, "A"),
		flight("mid", 250, 0, "A"),
		flight("dear", 900, 0, "A"),
	})

	e.UpdateFilter(models.FilterPatch{PriceRange: priceRange(200, 1000)})

	snap := e.Snapshot()
	if got := ids(snap.Flights); !reflect.DeepEqual(got, []string{"mid", "dear"}) {
		t.Errorf("view = %v, want [mid dear]", got)
	}
	if got := len(snap.Chart); got != 2 {
		t.Errorf("chart points = %d, want 2", got)
	}
}

func TestUpdateFilterMergesFields(t *testing.T) {
	e := NewEngine()
	e.SetWorkingSet([]models.Flight{
		flight("a", 100, 0, "A"),
		flight("b", 200, 1, "B"),
		flight("c", 300, 3, "B"),
	})

	e.UpdateFilter(models.FilterPatch{Airlines: []string{"B"}})
	e.UpdateFilter(models.FilterPatch{SortBy: sortKey(models.SortByDuration)})

	snap := e.Snapshot()
	if !reflect.DeepEqual(snap.Filter.Airlines, []string{"B"}) {
		t.Errorf("airlines filter lost: %v", snap.Filter.Airlines)
	}
	if snap.Filter.SortBy != models.SortByDuration {
		t.Errorf("sort = %q", snap.Filter.SortBy)
	}
	if snap.Filter.PriceRange != snap.Bounds {
		t.Errorf("price range changed: %+v", snap.Filter.PriceRange)
	}

	e.UpdateFilter(models.FilterPatch{Stops: []int{2}})
	if got := ids(e.Snapshot().Flights); !reflect.DeepEqual(got, []string{"c"}) {
		t.Errorf("view = %v, want [c]", got)
	}

	e.UpdateFilter(models.FilterPatch{Airlines: []string{}, Stops: []int{}})
	if got := len(e.Snapshot().Flights); got != 3 {
		t.Errorf("clearing selections left %d flights, want 3", got)
	}
}

func TestUpdateFilterKeepsBoundsAndAirlines(t *testing.T) {
	e := NewEngine()
	e.SetWorkingSet([]models.Flight{
		flight("a", 120, 0, "Qantas"),
		flight("b", 480, 1, "Emirates"),
	})
	before := e.Snapshot()

	patches := []models.FilterPatch{
		{PriceRange: priceRange(400, 500)},
		{Airlines: []string{"Qantas"}},
		{Stops: []int{1}},
		{PriceRange: priceRange(0, 1)},
	}
	for _, p := range patches {
		e.UpdateFilter(p)
		snap := e.Snapshot()
		if snap.Bounds != before.Bounds {
			t.Errorf("bounds drifted to %+v", snap.Bounds)
		}
		if !reflect.DeepEqual(snap.Airlines, before.Airlines) {
			t.Errorf("airlines changed to %v", snap.Airlines)
		}
	}
}

func TestResetFilterUsesBounds(t *testing.T) {
	e := NewEngine()
	e.SetWorkingSet([]models.Flight{
		flight("a", 120.5, 0, "A"),
		flight("b", 480.2, 1, "B"),
	})

	e.UpdateFilter(models.FilterPatch{
		PriceRange: priceRange(200, 300),
		Stops:      []int{1},
		Airlines:   []string{"B"},
		SortBy:     sortKey(models.SortByArrival),
	})
	e.ResetFilter()

	snap := e.Snapshot()
	want := DefaultFilter(models.PriceRange{Min: 120, Max: 481})
	if !reflect.DeepEqual(snap.Filter, want) {
		t.Errorf("filter = %+v, want %+v", snap.Filter, want)
	}
	if len(snap.Flights) != 2 {
		t.Errorf("view = %v, want both flights", ids(snap.Flights))
	}
}

func TestNewSearchDoesNotCarryFilter(t *testing.T) {
	e := NewEngine()
	e.SetWorkingSet([]models.Flight{flight("a", 100, 0, "A")})
	e.UpdateFilter(models.FilterPatch{
		PriceRange: priceRange(50, 60),
		Airlines:   []string{"A"},
		SortBy:     sortKey(models.SortByDeparture),
	})

	e.SetWorkingSet([]models.Flight{flight("x", 700, 0, "X"), flight("y", 300, 2, "Y")})

	snap := e.Snapshot()
	if !reflect.DeepEqual(snap.Filter, DefaultFilter(models.PriceRange{Min: 300, Max: 700})) {
		t.Errorf("filter carried over: %+v", snap.Filter)
	}
	if got := ids(snap.Flights); !reflect.DeepEqual(got, []string{"y", "x"}) {
		t.Errorf("view = %v, want [y x]", got)
	}
	if !reflect.DeepEqual(snap.Airlines, []string{"X", "Y"}) {
		t.Errorf("airlines = %v", snap.Airlines)
	}
}

func TestWorkingSetIsCopied(t *testing.T) {
	flights := []models.Flight{flight("a", 100, 0, "A"), flight("b", 50, 0, "B")}

	e := NewEngine()
	e.SetWorkingSet(flights)
	flights[0].Price = 1

	e.ResetFilter()
	if got := e.Snapshot().Flights[1].Price; got != 100 {
		t.Errorf("engine saw caller mutation: price = %v", got)
	}
}

func TestOldSnapshotsStayIntact(t *testing.T) {
	e := NewEngine()
	e.SetWorkingSet([]models.Flight{flight("a", 100, 0, "A"), flight("b", 200, 0, "B")})
	old := e.Snapshot()

	e.UpdateFilter(models.FilterPatch{PriceRange: priceRange(150, 250)})

	if got := ids(old.Flights); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("old snapshot changed: %v", got)
	}
	if got := ids(e.Snapshot().Flights); !reflect.DeepEqual(got, []string{"b"}) {
		t.Errorf("new snapshot = %v, want [b]", got)
	}
}

func TestConcurrentReadersSeeConsistentSnapshots(t *testing.T) {
	e := NewEngine()
	e.SetWorkingSet([]models.Flight{
		flight("a", 100, 0, "A"),
		flight("b", 200, 1, "B"),
		flight("c", 300, 2, "C"),
	})

	var wg sync.WaitGroup
	stop := make(chan struct{})

	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
				}
				snap := e.Snapshot()
				if len(snap.Chart) != len(snap.Flights) {
					t.Errorf("chart has %d points for %d flights", len(snap.Chart), len(snap.Flights))
					return
				}
				for _, f := range snap.Flights {
					if f.Price < snap.Filter.PriceRange.Min || f.Price > snap.Filter.PriceRange.Max {
						t.Errorf("flight %s at %v outside %+v", f.ID, f.Price, snap.Filter.PriceRange)
						return
					}
				}
			}
		}()
	}

	for i := 0; i < 200; i++ {
		lo := float64(i % 300)
		e.UpdateFilter(models.FilterPatch{PriceRange: priceRange(lo, lo+100)})
		if i%50 == 0 {
			e.ResetFilter()
		}
	}
	close(stop)
	wg.Wait()
}
