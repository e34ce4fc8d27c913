package refdata

import (
	"testing"

	"tabiplan.jp/internal/geo"
	"tabiplan.jp/internal/models"
)

func TestStoreUpdateAndAccessors(t *testing.T) {
	s := NewStore()
	s.Update(newTestDataset(t))

	if got := len(s.Cities()); got != 1 {
		t.Errorf("Expected 1 city, got %d", got)
	}
	if _, ok := s.City("tokyo"); !ok {
		t.Error("Expected to find city tokyo")
	}
	if _, ok := s.City("atlantis"); ok {
		t.Error("Expected unknown city lookup to fail")
	}

	if got := len(s.Attractions("tokyo")); got != 1 {
		t.Errorf("Expected 1 tokyo attraction, got %d", got)
	}
	if got := len(s.Attractions("kyoto")); got != 0 {
		t.Errorf("Expected 0 kyoto attractions, got %d", got)
	}
	if got := len(s.Attractions("")); got != 1 {
		t.Errorf("Expected 1 attraction overall, got %d", got)
	}
	if got := len(s.Hotels("tokyo")); got != 1 {
		t.Errorf("Expected 1 tokyo hotel, got %d", got)
	}
	if got := len(s.Restaurants("tokyo")); got != 1 {
		t.Errorf("Expected 1 tokyo restaurant, got %d", got)
	}
	if got := len(s.Transports()); got != 1 {
		t.Errorf("Expected 1 transport route, got %d", got)
	}
	if s.LoadedAt().IsZero() {
		t.Error("Expected LoadedAt to be set after update")
	}
}

func TestStoreLookup(t *testing.T) {
	s := NewStore()
	s.Update(newTestDataset(t))

	p, ok := s.Lookup(models.KindAttraction, "sensoji")
	if !ok {
		t.Fatal("Expected to resolve attraction sensoji")
	}
	if p.DisplayName() != "Senso-ji" {
		t.Errorf("Expected display name Senso-ji, got %s", p.DisplayName())
	}

	if _, ok := s.Lookup(models.KindHotel, "sensoji"); ok {
		t.Error("Expected lookup with mismatched kind to fail")
	}
	if _, ok := s.Lookup(models.KindRestaurant, "missing"); ok {
		t.Error("Expected lookup of unknown id to fail")
	}
}

func TestStoreBuildsNetwork(t *testing.T) {
	s := NewStore()
	s.Update(newTestDataset(t))

	st, ok := s.Network().NearestStation("tokyo", geo.Point{Lat: 35.6810, Lon: 139.7670})
	if !ok {
		t.Fatal("Expected nearest station lookup to succeed")
	}
	if st.ID != "tokyo-g" {
		t.Errorf("Expected nearest station tokyo-g, got %s", st.ID)
	}
}

func TestStoreUpdateReplacesNetwork(t *testing.T) {
	s := NewStore()
	s.Update(newTestDataset(t))

	// A refreshed dataset without the tokyo network must drop it.
	ds := newTestDataset(t)
	ds.Networks = nil
	s.Update(ds)

	if _, ok := s.Network().NearestStation("tokyo", geo.Point{Lat: 35.68, Lon: 139.76}); ok {
		t.Error("Expected tokyo network to be gone after refresh without it")
	}
	if got := s.Network().StationCount("tokyo"); got != 0 {
		t.Errorf("Expected 0 stations after replacement, got %d", got)
	}
}

func TestStoreCounts(t *testing.T) {
	s := NewStore()
	s.Update(newTestDataset(t))

	counts := s.Counts()
	if counts["stations"] != 2 {
		t.Errorf("Expected 2 stations counted, got %d", counts["stations"])
	}
	if counts["cities"] != 1 {
		t.Errorf("Expected 1 city counted, got %d", counts["cities"])
	}
}
