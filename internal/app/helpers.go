package app

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"tabiplan.jp/internal/geo"
)

// envelope wraps response payloads so every body is a JSON object with a
// named top-level key.
type envelope map[string]interface{}

func (app *Application) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		app.Logger.Error("Failed to encode response", "error", err)
	}
}

func (app *Application) errorResponse(w http.ResponseWriter, status int, message string) {
	app.writeJSON(w, status, envelope{"error": message})
}

func (app *Application) readJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("malformed JSON body: %w", err)
	}
	return nil
}

// parsePoint reads a coordinate pair from query parameters and validates it.
func parsePoint(query url.Values, latKey, lonKey string) (geo.Point, error) {
	lat, err := strconv.ParseFloat(query.Get(latKey), 64)
	if err != nil {
		return geo.Point{}, fmt.Errorf("invalid or missing %s", latKey)
	}
	lon, err := strconv.ParseFloat(query.Get(lonKey), 64)
	if err != nil {
		return geo.Point{}, fmt.Errorf("invalid or missing %s", lonKey)
	}
	if !geo.IsValidLatLon(lat, lon) {
		return geo.Point{}, fmt.Errorf("coordinates (%s, %s) out of range", query.Get(latKey), query.Get(lonKey))
	}
	return geo.Point{Lat: lat, Lon: lon}, nil
}
