package refdata

import (
	"sync"
	"time"

	"tabiplan.jp/internal/models"
	"tabiplan.jp/internal/transit"
)

// Store holds the active reference dataset and the transit network derived
// from it. Reads vastly outnumber updates, so the dataset is guarded by a
// RWMutex and replaced wholesale on refresh; the derived network is rebuilt
// inside the same update so the two can never disagree.
type Store struct {
	mu       sync.RWMutex
	ds       Dataset
	loadedAt time.Time

	network *transit.Network
}

// NewStore returns an empty store with an empty transit network.
func NewStore() *Store {
	return &Store{network: transit.NewNetwork()}
}

// Update installs a new dataset, replacing the previous one. The caller is
// expected to have validated the dataset first.
func (s *Store) Update(ds Dataset) {
	s.mu.Lock()
	s.ds = ds
	s.loadedAt = time.Now().UTC()
	s.mu.Unlock()

	cities := make(map[string]*transit.CityNetwork, len(ds.Networks))
	for _, n := range ds.Networks {
		cities[n.City] = &transit.CityNetwork{
			Stations: n.Stations,
			Lines:    n.Lines,
		}
	}
	s.network.Replace(cities)
}

// Network returns the transit network derived from the active dataset.
func (s *Store) Network() *transit.Network {
	return s.network
}

// LoadedAt returns when the active dataset was installed.
func (s *Store) LoadedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadedAt
}

// Cities returns a copy of the city table.
func (s *Store) Cities() []models.City {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.City(nil), s.ds.Cities...)
}

// City looks up a city by ID.
func (s *Store) City(id string) (models.City, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.ds.Cities {
		if c.ID == id {
			return c, true
		}
	}
	return models.City{}, false
}

// Attractions returns the attractions in a city, or all attractions when
// cityID is empty.
func (s *Store) Attractions(cityID string) []models.Attraction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if cityID == "" {
		return append([]models.Attraction(nil), s.ds.Attractions...)
	}
	var out []models.Attraction
	for _, a := range s.ds.Attractions {
		if a.City == cityID {
			out = append(out, a)
		}
	}
	return out
}

// Hotels returns the hotels in a city, or all hotels when cityID is empty.
func (s *Store) Hotels(cityID string) []models.Hotel {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if cityID == "" {
		return append([]models.Hotel(nil), s.ds.Hotels...)
	}
	var out []models.Hotel
	for _, h := range s.ds.Hotels {
		if h.City == cityID {
			out = append(out, h)
		}
	}
	return out
}

// Restaurants returns the restaurants in a city, or all when cityID is empty.
func (s *Store) Restaurants(cityID string) []models.Restaurant {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if cityID == "" {
		return append([]models.Restaurant(nil), s.ds.Restaurants...)
	}
	var out []models.Restaurant
	for _, r := range s.ds.Restaurants {
		if r.City == cityID {
			out = append(out, r)
		}
	}
	return out
}

// Transports returns the intercity transport routes.
func (s *Store) Transports() []models.TransportRoute {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.TransportRoute(nil), s.ds.Transports...)
}

// Lookup resolves a POI reference by kind and id against the active tables.
func (s *Store) Lookup(kind models.Kind, id string) (models.POI, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	switch kind {
	case models.KindAttraction:
		for _, a := range s.ds.Attractions {
			if a.ID == id {
				return a, true
			}
		}
	case models.KindHotel:
		for _, h := range s.ds.Hotels {
			if h.ID == id {
				return h, true
			}
		}
	case models.KindRestaurant:
		for _, r := range s.ds.Restaurants {
			if r.ID == id {
				return r, true
			}
		}
	case models.KindTransport:
		for _, t := range s.ds.Transports {
			if t.ID == id {
				return t, true
			}
		}
	}
	return nil, false
}

// Counts reports per-table sizes, used for logging and gauge metrics.
func (s *Store) Counts() map[string]int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	stations := 0
	for _, n := range s.ds.Networks {
		stations += len(n.Stations)
	}
	return map[string]int{
		"cities":      len(s.ds.Cities),
		"attractions": len(s.ds.Attractions),
		"hotels":      len(s.ds.Hotels),
		"restaurants": len(s.ds.Restaurants),
		"transports":  len(s.ds.Transports),
		"stations":    stations,
	}
}
