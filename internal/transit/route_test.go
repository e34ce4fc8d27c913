package transit

import (
	"math"
	"testing"

	"tabiplan.jp/internal/geo"
)

func TestPlanRouteWithTransit(t *testing.T) {
	n := newTestNetwork(t)

	from := geo.Point{Lat: 35.6813, Lon: 139.7672}
	to := geo.Point{Lat: 35.6594, Lon: 139.7005}

	segments := n.PlanRoute("tokyo", from, to)
	if len(segments) != 3 {
		t.Fatalf("expected 3 segments (walk, ride, walk), got %d", len(segments))
	}

	if segments[0].Mode != geo.ModeWalk || segments[2].Mode != geo.ModeWalk {
		t.Errorf("expected walking access and egress, got %s and %s", segments[0].Mode, segments[2].Mode)
	}
	if segments[1].Mode != geo.ModeMetro {
		t.Errorf("expected a metro ride, got %s", segments[1].Mode)
	}
	if segments[1].LineName != "Ginza Line" {
		t.Errorf("expected the ride to carry the line name, got %q", segments[1].LineName)
	}
	if segments[1].LineColor != "#FF9500" {
		t.Errorf("expected the ride to carry the line color, got %q", segments[1].LineColor)
	}

	// Composed distance stays within 5% of the direct haversine distance:
	// the decomposition only adds access/egress overhead.
	direct := geo.Distance(from, to)
	total := TotalDistance(segments)
	if math.Abs(total-direct) > 0.05*direct {
		t.Errorf("segment distances sum to %v km, direct distance is %v km", total, direct)
	}

	// Durations are the per-leg estimator outputs.
	wantDuration := geo.WalkMinutes(segments[0].DistanceKm) +
		geo.TransitMinutes(segments[1].DistanceKm) +
		geo.WalkMinutes(segments[2].DistanceKm)
	if got := TotalDuration(segments); got != wantDuration {
		t.Errorf("TotalDuration = %d, want %d", got, wantDuration)
	}
}

func TestPlanRouteShortDistanceWalks(t *testing.T) {
	n := newTestNetwork(t)

	// Two points ~600m apart: below the walking threshold, so transit is
	// never proposed even though stations exist nearby.
	from := geo.Point{Lat: 35.6812, Lon: 139.7671}
	to := geo.Point{Lat: 35.6760, Lon: 139.7650}

	segments := n.PlanRoute("tokyo", from, to)
	if len(segments) != 1 {
		t.Fatalf("expected a single walking segment, got %d segments", len(segments))
	}
	if segments[0].Mode != geo.ModeWalk {
		t.Errorf("expected walking mode, got %s", segments[0].Mode)
	}
	if want := geo.WalkMinutes(segments[0].DistanceKm); segments[0].DurationMin != want {
		t.Errorf("walk duration = %d, want %d", segments[0].DurationMin, want)
	}
}

func TestPlanRouteNoDirectLineFallsBackToWalk(t *testing.T) {
	n := newTestNetwork(t)

	// Asakusa to Roppongi: far enough for transit, but the fixture lines are
	// disjoint, so the planner degrades to a single walking segment instead
	// of failing.
	from := geo.Point{Lat: 35.7150, Lon: 139.7970}
	to := geo.Point{Lat: 35.6630, Lon: 139.7316}

	segments := n.PlanRoute("tokyo", from, to)
	if len(segments) != 1 {
		t.Fatalf("expected walking fallback, got %d segments", len(segments))
	}
	if segments[0].Mode != geo.ModeWalk {
		t.Errorf("expected walking mode, got %s", segments[0].Mode)
	}
	if segments[0].DistanceKm != geo.Distance(from, to) {
		t.Errorf("walking segment must cover the whole direct distance")
	}
}

func TestPlanRouteUnknownCityFallsBackToWalk(t *testing.T) {
	n := newTestNetwork(t)

	from := geo.Point{Lat: 26.2124, Lon: 127.6809}
	to := geo.Point{Lat: 26.3344, Lon: 127.8056}

	segments := n.PlanRoute("okinawa", from, to)
	if len(segments) != 1 || segments[0].Mode != geo.ModeWalk {
		t.Fatalf("expected walking-only fallback for a city without data, got %+v", segments)
	}
}

func TestPlanRouteSameNearestStation(t *testing.T) {
	n := newTestNetwork(t)

	// Both points resolve to Tokyo Station; riding from a station to itself
	// makes no sense, so the planner walks. The points are ~1.6 km apart to
	// force the transit branch of the estimator.
	from := geo.Point{Lat: 35.6880, Lon: 139.7600}
	to := geo.Point{Lat: 35.6900, Lon: 139.7770}

	fromSt, _ := n.NearestStation("tokyo", from)
	toSt, _ := n.NearestStation("tokyo", to)
	if fromSt.ID != toSt.ID {
		t.Skipf("fixture points resolve to different stations (%s, %s)", fromSt.ID, toSt.ID)
	}

	segments := n.PlanRoute("tokyo", from, to)
	if len(segments) != 1 || segments[0].Mode != geo.ModeWalk {
		t.Fatalf("expected walking segment when both points share a nearest station, got %+v", segments)
	}
}
