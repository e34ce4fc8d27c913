package app

import (
	"context"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/prometheus/client_golang/prometheus"
	"tabiplan.jp/internal/middleware"
)

// Routes registers all endpoints and returns the final http.Handler. The
// router is wrapped with Sentry error capture and the security headers
// middleware; /metrics is served through a caching handler so Prometheus
// scrapes do not regather on every request. The context stops the metrics
// cache refresh goroutine on shutdown.
func (app *Application) Routes(ctx context.Context) http.Handler {
	router := httprouter.New()

	router.HandlerFunc(http.MethodGet, "/v1/healthcheck", app.healthcheckHandler)
	router.Handler(http.MethodGet, "/metrics", middleware.NewCachedPromHandler(ctx, prometheus.DefaultGatherer, 10*time.Second))

	// Geospatial estimation.
	router.HandlerFunc(http.MethodGet, "/v1/distance", app.distanceHandler)
	router.HandlerFunc(http.MethodGet, "/v1/cities/:city/stations/nearest", app.nearestStationHandler)
	router.HandlerFunc(http.MethodGet, "/v1/cities/:city/routes/plan", app.routePlanHandler)

	// Reference data.
	router.HandlerFunc(http.MethodGet, "/v1/cities", app.citiesHandler)
	router.HandlerFunc(http.MethodGet, "/v1/attractions", app.attractionsHandler)
	router.HandlerFunc(http.MethodGet, "/v1/hotels", app.hotelsHandler)
	router.HandlerFunc(http.MethodGet, "/v1/restaurants", app.restaurantsHandler)
	router.HandlerFunc(http.MethodGet, "/v1/transports", app.transportsHandler)

	// Live widgets.
	router.HandlerFunc(http.MethodGet, "/v1/weather/:city", app.weatherHandler)
	router.HandlerFunc(http.MethodGet, "/v1/trains/next", app.trainsNextHandler)
	router.HandlerFunc(http.MethodGet, "/v1/trains/popular", app.trainsPopularHandler)

	// Saved plans and sharing.
	router.HandlerFunc(http.MethodPost, "/v1/plans", app.createPlanHandler)
	router.HandlerFunc(http.MethodGet, "/v1/plans", app.listPlansHandler)
	router.HandlerFunc(http.MethodGet, "/v1/plans/:id", app.getPlanHandler)
	router.HandlerFunc(http.MethodDelete, "/v1/plans/:id", app.deletePlanHandler)
	router.HandlerFunc(http.MethodPost, "/v1/share", app.createShareHandler)
	router.HandlerFunc(http.MethodGet, "/v1/share/:token", app.resolveShareHandler)

	handler := middleware.SentryMiddleware(router)
	return middleware.SecurityHeaders(handler)
}
