package transit

import (
	"tabiplan.jp/internal/geo"
)

// DirectLine resolves each point to its nearest station in the city and
// checks whether the two stations share a line.
//
// Outcomes:
//   - ok == false: the city has no station data; nothing can be said.
//   - ok == true, Connection.Line == nil: both stations resolved but no
//     single line serves them both. Callers present this as "no direct
//     line, nearest stations are X and Y".
//   - ok == true, Connection.Line != nil: the first line (in city table
//     order) serving both stations.
//
// This deliberately detects single-line reachability only. There is no
// transfer search across lines; suggesting multi-hop journeys is out of
// scope for this planner and callers must not assume otherwise.
func (n *Network) DirectLine(cityID string, from, to geo.Point) (Connection, bool) {
	fromStation, ok := n.NearestStation(cityID, from)
	if !ok {
		return Connection{}, false
	}
	toStation, ok := n.NearestStation(cityID, to)
	if !ok {
		return Connection{}, false
	}

	conn := Connection{From: fromStation, To: toStation}

	cn, ok := n.Get(cityID)
	if !ok {
		return Connection{}, false
	}
	for i := range cn.Lines {
		line := &cn.Lines[i]
		if line.serves(fromStation.ID) && line.serves(toStation.ID) {
			conn.Line = line
			break
		}
	}
	return conn, true
}
