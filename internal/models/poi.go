package models

import (
	"tabiplan.jp/internal/geo"
)

// Kind discriminates the point-of-interest variants that can appear in an
// itinerary. Using a single tagged union means "give me the display name of
// this entry" is a total operation instead of a runtime shape probe.
type Kind string

const (
	KindAttraction Kind = "attraction"
	KindHotel      Kind = "hotel"
	KindRestaurant Kind = "restaurant"
	KindTransport  Kind = "transport"
)

// POI is the common read surface over all selectable reference entities.
// Reference data is immutable after load; these accessors never mutate.
type POI interface {
	POIID() string
	POIKind() Kind
	DisplayName() string
	Position() geo.Point
	CityID() string
	// PriceYen is the budget contribution of selecting this POI, in yen.
	PriceYen() int
}

// Attraction is a sight, temple, park, museum or similar visitable place.
type Attraction struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	NameJP      string    `json:"nameJp"`
	City        string    `json:"city"`
	Category    string    `json:"category"`
	Coord       geo.Point `json:"coord"`
	Price       int       `json:"price"`
	DurationMin int       `json:"durationMin"`
	Description string    `json:"description,omitempty"`
}

func (a Attraction) POIID() string       { return a.ID }
func (a Attraction) POIKind() Kind       { return KindAttraction }
func (a Attraction) DisplayName() string { return a.Name }
func (a Attraction) Position() geo.Point { return a.Coord }
func (a Attraction) CityID() string      { return a.City }
func (a Attraction) PriceYen() int       { return a.Price }

// Hotel is an accommodation option.
type Hotel struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	NameJP        string    `json:"nameJp"`
	City          string    `json:"city"`
	Coord         geo.Point `json:"coord"`
	Address       string    `json:"address,omitempty"`
	PricePerNight int       `json:"pricePerNight"`
	Rating        float64   `json:"rating,omitempty"`
}

func (h Hotel) POIID() string       { return h.ID }
func (h Hotel) POIKind() Kind       { return KindHotel }
func (h Hotel) DisplayName() string { return h.Name }
func (h Hotel) Position() geo.Point { return h.Coord }
func (h Hotel) CityID() string      { return h.City }
func (h Hotel) PriceYen() int       { return h.PricePerNight }

// Restaurant is a dining option.
type Restaurant struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	NameJP   string    `json:"nameJp"`
	City     string    `json:"city"`
	Coord    geo.Point `json:"coord"`
	Category string    `json:"category,omitempty"`
	Price    int       `json:"price"`
	Rating   float64   `json:"rating,omitempty"`
}

func (r Restaurant) POIID() string       { return r.ID }
func (r Restaurant) POIKind() Kind       { return KindRestaurant }
func (r Restaurant) DisplayName() string { return r.Name }
func (r Restaurant) Position() geo.Point { return r.Coord }
func (r Restaurant) CityID() string      { return r.City }
func (r Restaurant) PriceYen() int       { return r.Price }

// TransportRoute is a pre-defined intercity or local connection the user can
// add to a trip, e.g. a shinkansen leg between Tokyo and Kyoto.
type TransportRoute struct {
	ID          string    `json:"id"`
	From        string    `json:"from"`
	To          string    `json:"to"`
	FromStation string    `json:"fromStation"`
	ToStation   string    `json:"toStation"`
	City        string    `json:"city,omitempty"`
	Coord       geo.Point `json:"coord"`
	DurationMin int       `json:"durationMin"`
	Price       int       `json:"price"`
	Line        string    `json:"line"`
	Type        string    `json:"type"`
}

func (t TransportRoute) POIID() string       { return t.ID }
func (t TransportRoute) POIKind() Kind       { return KindTransport }
func (t TransportRoute) DisplayName() string { return t.From + " → " + t.To }
func (t TransportRoute) Position() geo.Point { return t.Coord }
func (t TransportRoute) CityID() string      { return t.City }
func (t TransportRoute) PriceYen() int       { return t.Price }

// City is a destination the reference tables are partitioned by.
type City struct {
	ID     string    `json:"id"`
	Name   string    `json:"name"`
	NameJP string    `json:"nameJp"`
	Region string    `json:"region,omitempty"`
	Center geo.Point `json:"center"`
}
