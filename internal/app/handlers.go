package app

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/julienschmidt/httprouter"
	"tabiplan.jp/internal/geo"
	"tabiplan.jp/internal/metrics"
	"tabiplan.jp/internal/trains"
	"tabiplan.jp/internal/transit"
	"tabiplan.jp/internal/trip"
	"tabiplan.jp/internal/utils"
	"tabiplan.jp/internal/weather"
)

// jst is the timezone all train schedules are quoted in. A fixed zone avoids
// depending on the host's tzdata.
var jst = time.FixedZone("JST", 9*60*60)

// HealthStatus is the JSON body of /v1/healthcheck. The application is ready
// once a reference dataset with at least one city is loaded.
type HealthStatus struct {
	Status      string `json:"status"`
	Environment string `json:"environment"`
	Version     string `json:"version"`
	Cities      int    `json:"cities"`
	Ready       bool   `json:"ready"`
}

func (app *Application) healthcheckHandler(w http.ResponseWriter, r *http.Request) {
	numCities := len(app.RefData.Cities())
	ready := numCities > 0

	status := HealthStatus{
		Status:      "available",
		Environment: app.Config.Env,
		Version:     app.Version,
		Cities:      numCities,
		Ready:       ready,
	}

	code := http.StatusOK
	if !ready {
		code = http.StatusInternalServerError
	}
	app.writeJSON(w, code, status)
}

// distanceHandler estimates travel between two coordinate pairs: haversine
// distance plus the walk-or-transit time heuristic.
func (app *Application) distanceHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	from, err := parsePoint(query, "fromLat", "fromLon")
	if err != nil {
		app.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	to, err := parsePoint(query, "toLat", "toLon")
	if err != nil {
		app.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	distanceKm := geo.Distance(from, to)
	app.writeJSON(w, http.StatusOK, envelope{
		"distanceKm": distanceKm,
		"estimate":   geo.EstimateTravel(distanceKm),
	})
}

func (app *Application) nearestStationHandler(w http.ResponseWriter, r *http.Request) {
	cityID := httprouter.ParamsFromContext(r.Context()).ByName("city")

	if _, ok := app.RefData.City(cityID); !ok {
		app.errorResponse(w, http.StatusNotFound, "unknown city "+cityID)
		return
	}

	p, err := parsePoint(r.URL.Query(), "lat", "lon")
	if err != nil {
		app.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	station, ok := app.RefData.Network().NearestStation(cityID, p)
	metrics.NearestStationLookups.WithLabelValues(cityID, strconv.FormatBool(ok)).Inc()
	if !ok {
		app.errorResponse(w, http.StatusNotFound, "no stations available for "+cityID)
		return
	}

	distanceKm := geo.Distance(p, station.Coord)
	app.writeJSON(w, http.StatusOK, envelope{
		"station":     station,
		"distanceKm":  distanceKm,
		"walkMinutes": geo.WalkMinutes(distanceKm),
	})
}

// routePlanHandler composes a multi-leg route between two points in a city.
// The network decides between a transit route via the nearest stations and a
// plain walk when the points are close.
func (app *Application) routePlanHandler(w http.ResponseWriter, r *http.Request) {
	cityID := httprouter.ParamsFromContext(r.Context()).ByName("city")

	if _, ok := app.RefData.City(cityID); !ok {
		app.errorResponse(w, http.StatusNotFound, "unknown city "+cityID)
		return
	}

	query := r.URL.Query()
	from, err := parsePoint(query, "fromLat", "fromLon")
	if err != nil {
		app.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	to, err := parsePoint(query, "toLat", "toLon")
	if err != nil {
		app.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	segments := app.RefData.Network().PlanRoute(cityID, from, to)

	outcome := "transit"
	if len(segments) == 1 && segments[0].Mode == geo.ModeWalk {
		outcome = "walk"
	}
	metrics.RoutePlans.WithLabelValues(cityID, outcome).Inc()

	app.writeJSON(w, http.StatusOK, envelope{
		"segments":         segments,
		"totalDistanceKm":  transit.TotalDistance(segments),
		"totalDurationMin": transit.TotalDuration(segments),
	})
}

func (app *Application) citiesHandler(w http.ResponseWriter, r *http.Request) {
	app.writeJSON(w, http.StatusOK, envelope{"cities": app.RefData.Cities()})
}

// cityFilter validates the optional ?city query parameter. The empty string
// means no filter.
func (app *Application) cityFilter(w http.ResponseWriter, r *http.Request) (string, bool) {
	cityID := r.URL.Query().Get("city")
	if cityID != "" {
		if _, ok := app.RefData.City(cityID); !ok {
			app.errorResponse(w, http.StatusNotFound, "unknown city "+cityID)
			return "", false
		}
	}
	return cityID, true
}

func (app *Application) attractionsHandler(w http.ResponseWriter, r *http.Request) {
	cityID, ok := app.cityFilter(w, r)
	if !ok {
		return
	}
	app.writeJSON(w, http.StatusOK, envelope{"attractions": app.RefData.Attractions(cityID)})
}

func (app *Application) hotelsHandler(w http.ResponseWriter, r *http.Request) {
	cityID, ok := app.cityFilter(w, r)
	if !ok {
		return
	}
	app.writeJSON(w, http.StatusOK, envelope{"hotels": app.RefData.Hotels(cityID)})
}

func (app *Application) restaurantsHandler(w http.ResponseWriter, r *http.Request) {
	cityID, ok := app.cityFilter(w, r)
	if !ok {
		return
	}
	app.writeJSON(w, http.StatusOK, envelope{"restaurants": app.RefData.Restaurants(cityID)})
}

func (app *Application) transportsHandler(w http.ResponseWriter, r *http.Request) {
	app.writeJSON(w, http.StatusOK, envelope{"transports": app.RefData.Transports()})
}

func (app *Application) weatherHandler(w http.ResponseWriter, r *http.Request) {
	cityID := httprouter.ParamsFromContext(r.Context()).ByName("city")

	report, err := app.Weather.Current(r.Context(), cityID)
	switch {
	case errors.Is(err, weather.ErrUnknownCity):
		metrics.WeatherRequests.WithLabelValues(cityID, "not_found").Inc()
		app.errorResponse(w, http.StatusNotFound, "unknown city "+cityID)
		return
	case err != nil:
		metrics.WeatherRequests.WithLabelValues(cityID, "error").Inc()
		app.Logger.Error("Failed to fetch weather", "city", cityID, "error", err)
		app.errorResponse(w, http.StatusBadGateway, "weather service unavailable")
		return
	}

	metrics.WeatherRequests.WithLabelValues(cityID, "ok").Inc()
	app.writeJSON(w, http.StatusOK, envelope{"weather": report})
}

func (app *Application) trainsNextHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	from, to := query.Get("from"), query.Get("to")
	if from == "" || to == "" {
		app.errorResponse(w, http.StatusBadRequest, "from and to are required")
		return
	}

	count := 1
	if raw := query.Get("count"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > 10 {
			app.errorResponse(w, http.StatusBadRequest, "count must be between 1 and 10")
			return
		}
		count = n
	}

	schedules := trains.NextTrains(from, to, time.Now().In(jst), count)
	metrics.TrainLookups.WithLabelValues(strconv.FormatBool(schedules != nil)).Inc()
	if schedules == nil {
		app.errorResponse(w, http.StatusNotFound, "no timetable for "+from+" to "+to)
		return
	}

	app.writeJSON(w, http.StatusOK, envelope{"schedules": schedules})
}

func (app *Application) trainsPopularHandler(w http.ResponseWriter, r *http.Request) {
	app.writeJSON(w, http.StatusOK, envelope{"routes": trains.PopularRoutes()})
}

// planInput is the client-supplied slice of a saved plan. IDs, ordering,
// budget totals and timestamps are all reassigned server-side.
type planInput struct {
	Name       string          `json:"name"`
	StartDate  utils.Date      `json:"startDate"`
	EndDate    utils.Date      `json:"endDate"`
	Entries    []trip.Entry    `json:"entries"`
	Selections trip.Selections `json:"selections"`
	Budget     trip.Budget     `json:"budget"`
}

func (app *Application) createPlanHandler(w http.ResponseWriter, r *http.Request) {
	var input planInput
	if err := app.readJSON(w, r, &input); err != nil {
		app.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	if input.Name == "" {
		app.errorResponse(w, http.StatusBadRequest, "name is required")
		return
	}
	if input.StartDate.Time().After(input.EndDate.Time()) {
		app.errorResponse(w, http.StatusBadRequest, "start date is after end date")
		return
	}

	// Round-trip through a Trip so the itinerary order and budget total are
	// re-established regardless of what the client sent.
	t := trip.New()
	t.Restore(trip.Plan{
		Entries:    input.Entries,
		Selections: input.Selections,
		Budget:     input.Budget,
	})

	plan := trip.Snapshot(input.Name, input.StartDate, input.EndDate, t, time.Now())
	if err := app.Plans.Save(r.Context(), plan); err != nil {
		app.Logger.Error("Failed to save plan", "error", err)
		app.errorResponse(w, http.StatusInternalServerError, "failed to save plan")
		return
	}

	app.writeJSON(w, http.StatusCreated, envelope{"plan": plan})
}

func (app *Application) listPlansHandler(w http.ResponseWriter, r *http.Request) {
	plans, err := app.Plans.List(r.Context())
	if err != nil {
		app.Logger.Error("Failed to list plans", "error", err)
		app.errorResponse(w, http.StatusInternalServerError, "failed to list plans")
		return
	}
	app.writeJSON(w, http.StatusOK, envelope{"plans": plans})
}

func (app *Application) getPlanHandler(w http.ResponseWriter, r *http.Request) {
	id := httprouter.ParamsFromContext(r.Context()).ByName("id")

	plan, err := app.Plans.Get(r.Context(), id)
	switch {
	case errors.Is(err, trip.ErrPlanNotFound):
		app.errorResponse(w, http.StatusNotFound, "plan not found")
		return
	case err != nil:
		app.Logger.Error("Failed to get plan", "id", id, "error", err)
		app.errorResponse(w, http.StatusInternalServerError, "failed to get plan")
		return
	}

	app.writeJSON(w, http.StatusOK, envelope{"plan": plan})
}

func (app *Application) deletePlanHandler(w http.ResponseWriter, r *http.Request) {
	id := httprouter.ParamsFromContext(r.Context()).ByName("id")

	err := app.Plans.Delete(r.Context(), id)
	switch {
	case errors.Is(err, trip.ErrPlanNotFound):
		app.errorResponse(w, http.StatusNotFound, "plan not found")
		return
	case err != nil:
		app.Logger.Error("Failed to delete plan", "id", id, "error", err)
		app.errorResponse(w, http.StatusInternalServerError, "failed to delete plan")
		return
	}

	app.writeJSON(w, http.StatusOK, envelope{"status": "deleted"})
}

func (app *Application) createShareHandler(w http.ResponseWriter, r *http.Request) {
	var payload trip.SharePayload
	if err := app.readJSON(w, r, &payload); err != nil {
		app.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	token, err := trip.EncodeShare(payload)
	if err != nil {
		app.Logger.Error("Failed to encode share token", "error", err)
		app.errorResponse(w, http.StatusInternalServerError, "failed to encode share token")
		return
	}

	app.writeJSON(w, http.StatusCreated, envelope{"token": token})
}

func (app *Application) resolveShareHandler(w http.ResponseWriter, r *http.Request) {
	token := httprouter.ParamsFromContext(r.Context()).ByName("token")

	payload, err := trip.DecodeShare(token)
	if err != nil {
		app.errorResponse(w, http.StatusBadRequest, "invalid share token")
		return
	}

	app.writeJSON(w, http.StatusOK, envelope{"share": payload})
}
