package transit

import (
	"sync"

	"tabiplan.jp/internal/geo"
)

// CityNetwork holds one city's static station and line tables. The slices
// are read-only after construction.
type CityNetwork struct {
	Stations []Station
	Lines    []Line
}

// Network is a thread-safe registry of per-city transit tables, keyed by
// city ID. It is populated once at startup from the reference dataset and
// may be replaced wholesale when the dataset is refreshed; individual
// entries are never mutated in place.
type Network struct {
	mu     sync.RWMutex
	cities map[string]*CityNetwork
}

// NewNetwork returns an empty Network.
func NewNetwork() *Network {
	return &Network{}
}

// Set stores the transit tables for a city, replacing any previous entry.
func (n *Network) Set(cityID string, cn *CityNetwork) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.cities == nil {
		n.cities = make(map[string]*CityNetwork)
	}
	n.cities[cityID] = cn
}

// Replace swaps in a full set of city tables, dropping cities absent from
// the new set. Used when the reference dataset is refreshed.
func (n *Network) Replace(cities map[string]*CityNetwork) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.cities = cities
}

// Get retrieves the transit tables for a city.
func (n *Network) Get(cityID string) (*CityNetwork, bool) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	cn, ok := n.cities[cityID]
	return cn, ok
}

// Cities returns the IDs of all cities with registered tables.
func (n *Network) Cities() []string {
	n.mu.RLock()
	defer n.mu.RUnlock()
	ids := make([]string, 0, len(n.cities))
	for id := range n.cities {
		ids = append(ids, id)
	}
	return ids
}

// StationCount returns the number of stations registered for a city.
func (n *Network) StationCount(cityID string) int {
	cn, ok := n.Get(cityID)
	if !ok {
		return 0
	}
	return len(cn.Stations)
}

// NearestStation scans the city's station table and returns the station
// minimizing haversine distance to p. The second return value is false when
// the city is unknown or has no stations registered; callers must treat that
// as "no nearby station here", not as an error.
//
// Ties are broken by list order: the strict < comparison keeps the first
// station encountered, which keeps the result deterministic for tests.
func (n *Network) NearestStation(cityID string, p geo.Point) (Station, bool) {
	cn, ok := n.Get(cityID)
	if !ok || len(cn.Stations) == 0 {
		return Station{}, false
	}

	var nearest Station
	best := -1.0
	for _, st := range cn.Stations {
		d := geo.Distance(p, st.Coord)
		if best < 0 || d < best {
			best = d
			nearest = st
		}
	}
	return nearest, true
}

// line looks up a line by ID within a city's tables.
func (cn *CityNetwork) line(lineID string) (*Line, bool) {
	for i := range cn.Lines {
		if cn.Lines[i].ID == lineID {
			return &cn.Lines[i], true
		}
	}
	return nil, false
}
