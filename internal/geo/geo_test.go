package geo

import (
	"math"
	"testing"
)

func TestDistanceSymmetry(t *testing.T) {
	pairs := [][2]Point{
		{{Lat: 35.6812, Lon: 139.7671}, {Lat: 35.6595, Lon: 139.7004}},
		{{Lat: 34.9858, Lon: 135.7588}, {Lat: 34.6851, Lon: 135.8175}},
		{{Lat: 35.7148, Lon: 139.7967}, {Lat: 34.6937, Lon: 135.5023}},
		{{Lat: -33.8688, Lon: 151.2093}, {Lat: 35.6762, Lon: 139.6503}},
	}

	for _, pair := range pairs {
		ab := Distance(pair[0], pair[1])
		ba := Distance(pair[1], pair[0])
		if math.Abs(ab-ba) > 1e-9*math.Max(ab, ba) {
			t.Errorf("Distance not symmetric: %v vs %v for %v", ab, ba, pair)
		}
	}
}

func TestDistanceIdenticalPoints(t *testing.T) {
	points := []Point{
		{Lat: 35.6812, Lon: 139.7671},
		{Lat: 0, Lon: 139},
		{Lat: -45.1234, Lon: 12.9},
	}
	for _, p := range points {
		if d := Distance(p, p); d != 0 {
			t.Errorf("Distance(%v, %v) = %v, want 0", p, p, d)
		}
	}
}

func TestDistanceKnownReference(t *testing.T) {
	// Tokyo Station to Shibuya Station is roughly 4 km on the ground.
	tokyo := Point{Lat: 35.6812, Lon: 139.7671}
	shibuya := Point{Lat: 35.6595, Lon: 139.7004}

	d := Distance(tokyo, shibuya)
	if d < 3.9 || d > 4.1 {
		t.Errorf("Tokyo-Shibuya distance = %v km, want within 3.9-4.1", d)
	}
}

func TestIsValidLatLon(t *testing.T) {
	tests := []struct {
		name     string
		lat, lon float64
		want     bool
	}{
		{"Tokyo", 35.6762, 139.6503, true},
		{"zero pair", 0, 0, false},
		{"lat too high", 91, 139, false},
		{"lat too low", -91, 139, false},
		{"lon too high", 35, 181, false},
		{"lon too low", 35, -181, false},
		{"NaN lat", math.NaN(), 139, false},
		{"infinite lon", 35, math.Inf(1), false},
		{"boundary", 90, 180, true},
	}

	for _, tc := range tests {
		if got := IsValidLatLon(tc.lat, tc.lon); got != tc.want {
			t.Errorf("%s: IsValidLatLon(%v, %v) = %v, want %v", tc.name, tc.lat, tc.lon, got, tc.want)
		}
	}
}

func TestComputeBoundingBox(t *testing.T) {
	points := []Point{
		{Lat: 35.6595, Lon: 139.7004},
		{Lat: 35.7148, Lon: 139.7967},
		{Lat: 35.6259, Lon: 139.7764},
	}

	bbox, ok := ComputeBoundingBox(points)
	if !ok {
		t.Fatal("expected bounding box for non-empty point slice")
	}
	if bbox.MinLat != 35.6259 || bbox.MaxLat != 35.7148 {
		t.Errorf("unexpected lat bounds: %+v", bbox)
	}
	if bbox.MinLon != 139.7004 || bbox.MaxLon != 139.7967 {
		t.Errorf("unexpected lon bounds: %+v", bbox)
	}

	for _, p := range points {
		if !bbox.Contains(p.Lat, p.Lon) {
			t.Errorf("bounding box should contain %v", p)
		}
	}
	if bbox.Contains(34.0, 139.75) {
		t.Error("bounding box should not contain a point south of all inputs")
	}

	if _, ok := ComputeBoundingBox(nil); ok {
		t.Error("expected no bounding box for empty input")
	}
}
