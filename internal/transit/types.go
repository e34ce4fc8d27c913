package transit

import (
	"tabiplan.jp/internal/geo"
)

// Station is a transit stop in a city's static reference table.
//
// Connections are free-form line labels shown to the user ("also serves the
// JR Yamanote line"); they are not resolved references and play no part in
// routing.
type Station struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	NameJP      string    `json:"nameJp"`
	LineID      string    `json:"line"`
	LineColor   string    `json:"lineColor"`
	Coord       geo.Point `json:"coord"`
	Connections []string  `json:"connections,omitempty"`
}

// Line is an ordered sequence of stations operated as one service.
type Line struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Color    string   `json:"color"`
	Stations []string `json:"stations"`
	Mode     geo.Mode `json:"mode,omitempty"`
}

// mode returns the line's transport mode, defaulting to metro when the
// reference data leaves it unset.
func (l *Line) mode() geo.Mode {
	if l.Mode == "" {
		return geo.ModeMetro
	}
	return l.Mode
}

// serves reports whether the station ID is part of this line.
func (l *Line) serves(stationID string) bool {
	for _, id := range l.Stations {
		if id == stationID {
			return true
		}
	}
	return false
}

// Connection is the result of resolving two points against a city's transit
// network. Line is nil when the two nearest stations do not share a line;
// that is a normal outcome, distinct from the lookup failing for lack of
// reference data.
type Connection struct {
	From Station `json:"from"`
	To   Station `json:"to"`
	Line *Line   `json:"line,omitempty"`
}

// Direct reports whether a single line connects both stations.
func (c Connection) Direct() bool {
	return c.Line != nil
}

// Segment is one leg of a composed route. Segments are computed values,
// never stored; they are recomputed from coordinates on every request.
type Segment struct {
	Mode        geo.Mode `json:"mode"`
	From        string   `json:"from"`
	To          string   `json:"to"`
	LineName    string   `json:"lineName,omitempty"`
	LineColor   string   `json:"lineColor,omitempty"`
	DistanceKm  float64  `json:"distanceKm"`
	DurationMin int      `json:"durationMin"`
}
