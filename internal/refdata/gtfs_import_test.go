package refdata

import (
	"archive/zip"
	"bytes"
	"testing"

	remoteGtfs "github.com/jamespfennell/gtfs"
	"tabiplan.jp/internal/geo"
)

// buildGTFSZip assembles a minimal static bundle: one subway route with two
// stops and a single scheduled trip between them.
func buildGTFSZip(t *testing.T) []byte {
	t.Helper()

	files := map[string]string{
		"agency.txt": "agency_id,agency_name,agency_url,agency_timezone\n" +
			"metro,Toei,https://example.com,Asia/Tokyo\n",
		"stops.txt": "stop_id,stop_name,stop_lat,stop_lon\n" +
			"st-a,Asakusa,35.7148,139.7967\n" +
			"st-b,Ueno,35.7141,139.7774\n",
		"routes.txt": "route_id,agency_id,route_short_name,route_long_name,route_type,route_color\n" +
			"ginza,metro,G,Ginza Line,1,FF9500\n",
		"trips.txt": "route_id,service_id,trip_id\n" +
			"ginza,daily,trip-1\n",
		"stop_times.txt": "trip_id,arrival_time,departure_time,stop_id,stop_sequence\n" +
			"trip-1,06:00:00,06:00:00,st-a,1\n" +
			"trip-1,06:03:00,06:03:00,st-b,2\n",
		"calendar.txt": "service_id,monday,tuesday,wednesday,thursday,friday,saturday,sunday,start_date,end_date\n" +
			"daily,1,1,1,1,1,1,1,20260101,20261231\n",
	}

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for name, content := range files {
		f, err := w.Create(name)
		if err != nil {
			t.Fatalf("Failed to create zip entry %s: %v", name, err)
		}
		if _, err := f.Write([]byte(content)); err != nil {
			t.Fatalf("Failed to write zip entry %s: %v", name, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Failed to close zip: %v", err)
	}
	return buf.Bytes()
}

func TestImportGTFS(t *testing.T) {
	static, err := remoteGtfs.ParseStatic(buildGTFSZip(t), remoteGtfs.ParseStaticOptions{})
	if err != nil {
		t.Fatalf("Failed to parse GTFS fixture: %v", err)
	}

	ct, err := ImportGTFS(static, "tokyo")
	if err != nil {
		t.Fatalf("Failed to import GTFS bundle: %v", err)
	}

	if ct.City != "tokyo" {
		t.Errorf("Expected city tokyo, got %s", ct.City)
	}
	if len(ct.Lines) != 1 {
		t.Fatalf("Expected 1 line, got %d", len(ct.Lines))
	}

	line := ct.Lines[0]
	if line.ID != "ginza" {
		t.Errorf("Expected line id ginza, got %s", line.ID)
	}
	if line.Name != "Ginza Line" {
		t.Errorf("Expected line name Ginza Line, got %s", line.Name)
	}
	if line.Color != "#FF9500" {
		t.Errorf("Expected color #FF9500, got %s", line.Color)
	}
	if line.Mode != geo.ModeMetro {
		t.Errorf("Expected metro mode for route type 1, got %s", line.Mode)
	}
	if len(line.Stations) != 2 || line.Stations[0] != "st-a" || line.Stations[1] != "st-b" {
		t.Errorf("Expected stations [st-a st-b], got %v", line.Stations)
	}

	if len(ct.Stations) != 2 {
		t.Fatalf("Expected 2 stations, got %d", len(ct.Stations))
	}
	for _, st := range ct.Stations {
		if st.LineID != "ginza" {
			t.Errorf("Expected station %s tagged with line ginza, got %q", st.ID, st.LineID)
		}
		if !geo.IsValidLatLon(st.Coord.Lat, st.Coord.Lon) {
			t.Errorf("Expected valid coordinates for station %s", st.ID)
		}
	}

	// The imported table must slot into a dataset and validate.
	ds := newTestDataset(t)
	ds.Networks = []CityTransit{ct}
	if err := ds.Validate(); err != nil {
		t.Errorf("Expected imported network to validate, got: %v", err)
	}
}

func TestImportGTFSNilBundle(t *testing.T) {
	if _, err := ImportGTFS(nil, "tokyo"); err == nil {
		t.Error("Expected nil bundle to fail")
	}
}

func TestModeForRouteType(t *testing.T) {
	cases := []struct {
		routeType int
		want      geo.Mode
	}{
		{0, geo.ModeMetro},
		{1, geo.ModeMetro},
		{2, geo.ModeTrain},
		{3, geo.ModeBus},
		{11, geo.ModeBus},
		{12, geo.ModeTrain},
		{7, geo.ModeMetro},
	}
	for _, c := range cases {
		if got := modeForRouteType(c.routeType); got != c.want {
			t.Errorf("Expected mode %s for route type %d, got %s", c.want, c.routeType, got)
		}
	}
}
