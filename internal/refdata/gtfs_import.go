package refdata

import (
	"fmt"
	"strings"

	remoteGtfs "github.com/jamespfennell/gtfs"
	"tabiplan.jp/internal/geo"
	"tabiplan.jp/internal/transit"
)

// ImportGTFS converts a parsed GTFS static bundle into a city transit table.
// Stops become stations and routes become lines, with each line's station
// sequence taken from the longest scheduled trip on that route. Stops
// without coordinates are skipped; routes with no usable trip are skipped.
func ImportGTFS(static *remoteGtfs.Static, cityID string) (CityTransit, error) {
	if static == nil {
		return CityTransit{}, fmt.Errorf("nil GTFS bundle for city %q", cityID)
	}

	stations := make(map[string]transit.Station)
	for _, stop := range static.Stops {
		if stop.Latitude == nil || stop.Longitude == nil {
			continue
		}
		name := stop.Id
		if stop.Name != nil && *stop.Name != "" {
			name = *stop.Name
		}
		stations[stop.Id] = transit.Station{
			ID:   stop.Id,
			Name: name,
			Coord: geo.Point{
				Lat: *stop.Latitude,
				Lon: *stop.Longitude,
			},
		}
	}

	// Longest trip per route gives the fullest station sequence.
	routeStops := make(map[string][]string)
	for _, trip := range static.Trips {
		if trip.Route == nil {
			continue
		}
		var seq []string
		for _, st := range trip.StopTimes {
			if st.Stop == nil {
				continue
			}
			if _, ok := stations[st.Stop.Id]; !ok {
				continue
			}
			seq = append(seq, st.Stop.Id)
		}
		if len(seq) > len(routeStops[trip.Route.Id]) {
			routeStops[trip.Route.Id] = seq
		}
	}

	var lines []transit.Line
	for _, route := range static.Routes {
		stops := routeStops[route.Id]
		if len(stops) == 0 {
			continue
		}
		lines = append(lines, transit.Line{
			ID:       route.Id,
			Name:     routeName(route),
			Color:    normalizeColor(route.Color),
			Stations: stops,
			Mode:     modeForRouteType(int(route.Type)),
		})
	}

	out := CityTransit{City: cityID, Lines: lines}

	// Tag each station with the first line serving it, matching the shape of
	// the builtin tables, and emit only stations reachable via some line.
	emitted := make(map[string]bool)
	for _, ln := range lines {
		for _, sid := range ln.Stations {
			if emitted[sid] {
				continue
			}
			emitted[sid] = true
			st := stations[sid]
			st.LineID = firstLineServing(lines, sid)
			st.LineColor = lineColor(lines, st.LineID)
			out.Stations = append(out.Stations, st)
		}
	}

	if len(out.Stations) == 0 {
		return CityTransit{}, fmt.Errorf("GTFS bundle for city %q yields no usable stations", cityID)
	}
	return out, nil
}

func routeName(route remoteGtfs.Route) string {
	if route.LongName != nil && *route.LongName != "" {
		return *route.LongName
	}
	if route.ShortName != nil && *route.ShortName != "" {
		return *route.ShortName
	}
	return route.Id
}

// normalizeColor maps GTFS bare hex colors ("FF9500") to the "#FF9500" form
// the dataset uses. Empty colors stay empty.
func normalizeColor(c string) string {
	if c == "" || strings.HasPrefix(c, "#") {
		return c
	}
	return "#" + c
}

// modeForRouteType maps GTFS route_type codes onto travel modes. Tram and
// subway count as metro; rail and monorail as train; bus and trolleybus as
// bus. Anything else defaults to metro, the dominant mode in these cities.
func modeForRouteType(t int) geo.Mode {
	switch t {
	case 0, 1:
		return geo.ModeMetro
	case 2, 12:
		return geo.ModeTrain
	case 3, 11:
		return geo.ModeBus
	}
	return geo.ModeMetro
}

func firstLineServing(lines []transit.Line, stationID string) string {
	for _, ln := range lines {
		for _, sid := range ln.Stations {
			if sid == stationID {
				return ln.ID
			}
		}
	}
	return ""
}

func lineColor(lines []transit.Line, lineID string) string {
	for _, ln := range lines {
		if ln.ID == lineID {
			return ln.Color
		}
	}
	return ""
}
