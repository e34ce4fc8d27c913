package transit

import (
	"tabiplan.jp/internal/geo"
)

// PlanRoute composes an ordered list of segments describing how to travel
// between two points within a city.
//
// When a single line connects the nearest stations to both points, the
// result is an access walk, a ride along that line, and an egress walk.
// Each leg's distance is the haversine leg distance, so the sum tracks the
// direct point-to-point distance to within the access/egress overhead.
// Walk legs are priced with the walking formula and the ride with the
// transit formula regardless of leg length, so the composed duration is
// internally consistent with the estimator.
//
// The walking-only fallback covers every case where transit cannot help:
// the direct distance is already walkable, the city has no station data,
// both points resolve to the same station, or the stations share no line.
// PlanRoute never fails; it always returns at least one segment.
func (n *Network) PlanRoute(cityID string, from, to geo.Point) []Segment {
	direct := geo.Distance(from, to)

	walkOnly := []Segment{{
		Mode:        geo.ModeWalk,
		From:        "origin",
		To:          "destination",
		DistanceKm:  direct,
		DurationMin: geo.WalkMinutes(direct),
	}}

	if est := geo.EstimateTravel(direct); est.Mode == geo.ModeWalk {
		return walkOnly
	}

	conn, ok := n.DirectLine(cityID, from, to)
	if !ok || !conn.Direct() || conn.From.ID == conn.To.ID {
		return walkOnly
	}

	access := geo.Distance(from, conn.From.Coord)
	ride := geo.Distance(conn.From.Coord, conn.To.Coord)
	egress := geo.Distance(conn.To.Coord, to)

	return []Segment{
		{
			Mode:        geo.ModeWalk,
			From:        "origin",
			To:          conn.From.Name,
			DistanceKm:  access,
			DurationMin: geo.WalkMinutes(access),
		},
		{
			Mode:        conn.Line.mode(),
			From:        conn.From.Name,
			To:          conn.To.Name,
			LineName:    conn.Line.Name,
			LineColor:   conn.Line.Color,
			DistanceKm:  ride,
			DurationMin: geo.TransitMinutes(ride),
		},
		{
			Mode:        geo.ModeWalk,
			From:        conn.To.Name,
			To:          "destination",
			DistanceKm:  egress,
			DurationMin: geo.WalkMinutes(egress),
		},
	}
}

// TotalDistance sums segment distances in kilometers.
func TotalDistance(segments []Segment) float64 {
	var sum float64
	for _, s := range segments {
		sum += s.DistanceKm
	}
	return sum
}

// TotalDuration sums segment durations in minutes.
func TotalDuration(segments []Segment) int {
	var sum int
	for _, s := range segments {
		sum += s.DurationMin
	}
	return sum
}
