package trip

import "tabiplan.jp/internal/models"

// Selections holds the POIs the user has picked for the trip, one typed list
// per kind. A POI id appears at most once per list; adds are idempotent.
type Selections struct {
	Attractions []models.Attraction     `json:"attractions"`
	Hotels      []models.Hotel          `json:"hotels"`
	Restaurants []models.Restaurant     `json:"restaurants"`
	Transports  []models.TransportRoute `json:"transports"`
}

// Trip is the mutable state of the itinerary being edited: selections, the
// scheduled entries, and the running budget. It holds no reference data;
// estimation services are injected where needed, and all mutation goes
// through these methods so the budget and schedule stay consistent with the
// selections.
type Trip struct {
	Selections Selections
	Itinerary  Itinerary
	Budget     Budget
}

// New returns an empty trip.
func New() *Trip {
	return &Trip{}
}

// Select adds a POI to the trip. The add is idempotent: selecting an
// already-selected id changes nothing and returns false. A successful add
// credits the POI's price to its budget category.
func (t *Trip) Select(p models.POI) bool {
	switch v := p.(type) {
	case models.Attraction:
		if containsID(t.Selections.Attractions, v.ID) {
			return false
		}
		t.Selections.Attractions = append(t.Selections.Attractions, v)
	case models.Hotel:
		if containsID(t.Selections.Hotels, v.ID) {
			return false
		}
		t.Selections.Hotels = append(t.Selections.Hotels, v)
	case models.Restaurant:
		if containsID(t.Selections.Restaurants, v.ID) {
			return false
		}
		t.Selections.Restaurants = append(t.Selections.Restaurants, v)
	case models.TransportRoute:
		if containsID(t.Selections.Transports, v.ID) {
			return false
		}
		t.Selections.Transports = append(t.Selections.Transports, v)
	default:
		return false
	}
	t.Budget.Add(categoryFor(p.POIKind()), p.PriceYen())
	return true
}

// Deselect removes a POI from the trip by kind and id. It debits the POI's
// price from its budget category and drops any itinerary entries that
// referenced it. Returns false if the POI was not selected.
func (t *Trip) Deselect(kind models.Kind, id string) bool {
	var price int
	var found bool

	switch kind {
	case models.KindAttraction:
		t.Selections.Attractions, price, found = removeID(t.Selections.Attractions, id)
	case models.KindHotel:
		t.Selections.Hotels, price, found = removeID(t.Selections.Hotels, id)
	case models.KindRestaurant:
		t.Selections.Restaurants, price, found = removeID(t.Selections.Restaurants, id)
	case models.KindTransport:
		t.Selections.Transports, price, found = removeID(t.Selections.Transports, id)
	}
	if !found {
		return false
	}

	t.Budget.Add(categoryFor(kind), -price)
	t.Itinerary.RemoveRef(kind, id)
	return true
}

// Selected reports whether a POI of the given kind and id is selected.
func (t *Trip) Selected(kind models.Kind, id string) bool {
	switch kind {
	case models.KindAttraction:
		return containsID(t.Selections.Attractions, id)
	case models.KindHotel:
		return containsID(t.Selections.Hotels, id)
	case models.KindRestaurant:
		return containsID(t.Selections.Restaurants, id)
	case models.KindTransport:
		return containsID(t.Selections.Transports, id)
	}
	return false
}

// Clear resets the trip to its empty state.
func (t *Trip) Clear() {
	*t = Trip{}
}

func containsID[T models.POI](list []T, id string) bool {
	for _, item := range list {
		if item.POIID() == id {
			return true
		}
	}
	return false
}

func removeID[T models.POI](list []T, id string) ([]T, int, bool) {
	for i, item := range list {
		if item.POIID() == id {
			price := item.PriceYen()
			return append(list[:i], list[i+1:]...), price, true
		}
	}
	return list, 0, false
}
