package refdata

import (
	"net/http"
	"testing"

	"tabiplan.jp/internal/geo"
	"tabiplan.jp/internal/models"
	"tabiplan.jp/internal/transit"
)

type mockRoundTripper struct {
	calls   int
	handler func(req *http.Request) (*http.Response, error)
}

func (m *mockRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	m.calls++
	return m.handler(req)
}

// newTestDataset returns a minimal valid dataset: one city with a two-station
// line and one POI per table.
func newTestDataset(t *testing.T) Dataset {
	t.Helper()
	return Dataset{
		Cities: []models.City{
			{ID: "tokyo", Name: "Tokyo", NameJP: "東京", Center: geo.Point{Lat: 35.6762, Lon: 139.6503}},
		},
		Attractions: []models.Attraction{
			{ID: "sensoji", Name: "Senso-ji", City: "tokyo", Category: "temple", Coord: geo.Point{Lat: 35.7148, Lon: 139.7967}, DurationMin: 90},
		},
		Hotels: []models.Hotel{
			{ID: "granbell", Name: "Shinjuku Granbell", City: "tokyo", Coord: geo.Point{Lat: 35.6938, Lon: 139.7034}, PricePerNight: 15000},
		},
		Restaurants: []models.Restaurant{
			{ID: "ichiran", Name: "Ichiran Shibuya", City: "tokyo", Coord: geo.Point{Lat: 35.6613, Lon: 139.7007}, Price: 1200},
		},
		Transports: []models.TransportRoute{
			{ID: "tokyo-kyoto", From: "Tokyo", To: "Kyoto", Coord: geo.Point{Lat: 35.6812, Lon: 139.7671}, DurationMin: 135, Price: 13320, Line: "Tokaido Shinkansen", Type: "shinkansen"},
		},
		Networks: []CityTransit{
			{
				City: "tokyo",
				Stations: []transit.Station{
					{ID: "tokyo-g", Name: "Tokyo", LineID: "ginza", Coord: geo.Point{Lat: 35.6812, Lon: 139.7671}},
					{ID: "shibuya-g", Name: "Shibuya", LineID: "ginza", Coord: geo.Point{Lat: 35.6595, Lon: 139.7004}},
				},
				Lines: []transit.Line{
					{ID: "ginza", Name: "Ginza Line", Color: "#FF9500", Stations: []string{"shibuya-g", "tokyo-g"}},
				},
			},
		},
	}
}
