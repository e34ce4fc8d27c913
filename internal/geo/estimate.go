package geo

import "math"

// Travel-time heuristic constants. These are deliberately named and exported
// through the estimator rather than inlined at call sites so tests can assert
// exact values and tuning stays in one place.
//
// The numbers model a typical Japanese city trip: below walkThresholdKm it is
// faster to walk than to enter the transit system; above it, the estimate is
// a fixed station access/egress overhead plus in-vehicle time plus a platform
// wait allowance. This is a heuristic, not a measured schedule.
const (
	// walkThresholdKm is the distance below which walking is assumed.
	// Exactly 1.5 km falls on the transit side of the boundary.
	walkThresholdKm = 1.5

	// walkMinPerKm is the assumed walking pace in minutes per kilometer.
	walkMinPerKm = 12.0

	// transitMinPerKm is the assumed in-vehicle pace in minutes per kilometer.
	transitMinPerKm = 3.0

	// transitAccessMin covers walking into and out of the stations.
	transitAccessMin = 10.0

	// transitWaitMin is a flat platform wait allowance.
	transitWaitMin = 5.0
)

// Mode is a transport mode tag attached to estimates and route segments.
type Mode string

const (
	ModeWalk  Mode = "walk"
	ModeMetro Mode = "metro"
	ModeBus   Mode = "bus"
	ModeTrain Mode = "train"
)

// Estimate is a travel-time estimate for a given distance.
type Estimate struct {
	Mode    Mode `json:"mode"`
	Minutes int  `json:"minutes"`
}

// EstimateTravel converts a distance in kilometers into an estimated travel
// time in minutes and an implied mode. Deterministic given the distance.
func EstimateTravel(distanceKm float64) Estimate {
	if distanceKm < walkThresholdKm {
		return Estimate{
			Mode:    ModeWalk,
			Minutes: int(math.Round(distanceKm * walkMinPerKm)),
		}
	}
	return Estimate{
		Mode:    ModeMetro,
		Minutes: int(math.Round(transitAccessMin + distanceKm*transitMinPerKm + transitWaitMin)),
	}
}

// WalkMinutes returns the walking-time estimate for a distance regardless of
// the mode threshold. Used for the access and egress legs of a composed
// route, which are walks by construction.
func WalkMinutes(distanceKm float64) int {
	return int(math.Round(distanceKm * walkMinPerKm))
}

// TransitMinutes returns the transit-time estimate for a distance regardless
// of the mode threshold. Used for the ride leg of a composed route.
func TransitMinutes(distanceKm float64) int {
	return int(math.Round(transitAccessMin + distanceKm*transitMinPerKm + transitWaitMin))
}
