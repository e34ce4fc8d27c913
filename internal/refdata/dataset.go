package refdata

import (
	"fmt"

	"tabiplan.jp/internal/geo"
	"tabiplan.jp/internal/models"
	"tabiplan.jp/internal/transit"
)

// CityTransit bundles one city's station and line tables as they appear in
// the dataset document.
type CityTransit struct {
	City     string            `json:"city"`
	Stations []transit.Station `json:"stations"`
	Lines    []transit.Line    `json:"lines"`
}

// Dataset is the full reference document the planner runs against: cities,
// the POI tables partitioned by city, and the per-city transit networks.
// Datasets are validated before they are installed; a dataset that fails
// validation is rejected wholesale so the previous tables stay in service.
type Dataset struct {
	Cities      []models.City           `json:"cities"`
	Attractions []models.Attraction     `json:"attractions"`
	Hotels      []models.Hotel          `json:"hotels"`
	Restaurants []models.Restaurant     `json:"restaurants"`
	Transports  []models.TransportRoute `json:"transports"`
	Networks    []CityTransit           `json:"networks"`
}

// Validate checks the structural invariants of a dataset: at least one city,
// unique IDs within each table, coordinates that are finite and in range,
// POIs that reference known cities, and line station lists that resolve
// within their own city's station table.
func (d *Dataset) Validate() error {
	if len(d.Cities) == 0 {
		return fmt.Errorf("dataset has no cities")
	}

	cities := make(map[string]bool, len(d.Cities))
	for _, c := range d.Cities {
		if c.ID == "" {
			return fmt.Errorf("city with empty id")
		}
		if cities[c.ID] {
			return fmt.Errorf("duplicate city id %q", c.ID)
		}
		if !geo.IsValidLatLon(c.Center.Lat, c.Center.Lon) {
			return fmt.Errorf("city %q has invalid center (%v, %v)", c.ID, c.Center.Lat, c.Center.Lon)
		}
		cities[c.ID] = true
	}

	seen := make(map[string]bool)
	checkPOI := func(table string, p models.POI) error {
		id := p.POIID()
		if id == "" {
			return fmt.Errorf("%s with empty id", table)
		}
		key := table + "/" + id
		if seen[key] {
			return fmt.Errorf("duplicate %s id %q", table, id)
		}
		seen[key] = true
		pos := p.Position()
		if !geo.IsValidLatLon(pos.Lat, pos.Lon) {
			return fmt.Errorf("%s %q has invalid coordinates (%v, %v)", table, id, pos.Lat, pos.Lon)
		}
		if city := p.CityID(); city != "" && !cities[city] {
			return fmt.Errorf("%s %q references unknown city %q", table, id, city)
		}
		if p.PriceYen() < 0 {
			return fmt.Errorf("%s %q has negative price", table, id)
		}
		return nil
	}

	for _, a := range d.Attractions {
		if err := checkPOI("attraction", a); err != nil {
			return err
		}
	}
	for _, h := range d.Hotels {
		if err := checkPOI("hotel", h); err != nil {
			return err
		}
	}
	for _, r := range d.Restaurants {
		if err := checkPOI("restaurant", r); err != nil {
			return err
		}
	}
	for _, t := range d.Transports {
		if err := checkPOI("transport", t); err != nil {
			return err
		}
	}

	networkCities := make(map[string]bool, len(d.Networks))
	for _, n := range d.Networks {
		if !cities[n.City] {
			return fmt.Errorf("transit network references unknown city %q", n.City)
		}
		if networkCities[n.City] {
			return fmt.Errorf("duplicate transit network for city %q", n.City)
		}
		networkCities[n.City] = true

		stations := make(map[string]bool, len(n.Stations))
		for _, st := range n.Stations {
			if st.ID == "" {
				return fmt.Errorf("city %q has a station with empty id", n.City)
			}
			if stations[st.ID] {
				return fmt.Errorf("city %q has duplicate station id %q", n.City, st.ID)
			}
			if !geo.IsValidLatLon(st.Coord.Lat, st.Coord.Lon) {
				return fmt.Errorf("station %q in city %q has invalid coordinates", st.ID, n.City)
			}
			stations[st.ID] = true
		}

		lineIDs := make(map[string]bool, len(n.Lines))
		for _, ln := range n.Lines {
			if ln.ID == "" {
				return fmt.Errorf("city %q has a line with empty id", n.City)
			}
			if lineIDs[ln.ID] {
				return fmt.Errorf("city %q has duplicate line id %q", n.City, ln.ID)
			}
			lineIDs[ln.ID] = true
			for _, sid := range ln.Stations {
				if !stations[sid] {
					return fmt.Errorf("line %q in city %q references unknown station %q", ln.ID, n.City, sid)
				}
			}
		}
	}

	return nil
}
