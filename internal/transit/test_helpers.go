package transit

import (
	"testing"

	"tabiplan.jp/internal/geo"
)

// newTestNetwork builds a small Tokyo-like network: the Ginza line connects
// Tokyo and Shibuya, while Asakusa and Roppongi sit on disjoint single-stop
// lines so no direct connection exists between them.
func newTestNetwork(t *testing.T) *Network {
	t.Helper()

	n := NewNetwork()
	n.Set("tokyo", &CityNetwork{
		Stations: []Station{
			{ID: "tokyo-g", Name: "Tokyo", NameJP: "東京", LineID: "ginza", LineColor: "#FF9500", Coord: geo.Point{Lat: 35.6812, Lon: 139.7671}},
			{ID: "shibuya-g", Name: "Shibuya", NameJP: "渋谷", LineID: "ginza", LineColor: "#FF9500", Coord: geo.Point{Lat: 35.6595, Lon: 139.7004}},
			{ID: "asakusa-a", Name: "Asakusa", NameJP: "浅草", LineID: "asakusa", LineColor: "#EC6E65", Coord: geo.Point{Lat: 35.7148, Lon: 139.7967}},
			{ID: "roppongi-h", Name: "Roppongi", NameJP: "六本木", LineID: "hibiya", LineColor: "#C9C9C9", Coord: geo.Point{Lat: 35.6628, Lon: 139.7314}},
		},
		Lines: []Line{
			{ID: "ginza", Name: "Ginza Line", Color: "#FF9500", Stations: []string{"tokyo-g", "shibuya-g"}},
			{ID: "asakusa", Name: "Asakusa Line", Color: "#EC6E65", Stations: []string{"asakusa-a"}},
			{ID: "hibiya", Name: "Hibiya Line", Color: "#C9C9C9", Stations: []string{"roppongi-h"}, Mode: geo.ModeMetro},
		},
	})
	return n
}
