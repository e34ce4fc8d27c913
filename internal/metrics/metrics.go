package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// DatasetEntities tracks how many rows of each reference table are
	// currently loaded (cities, attractions, hotels, restaurants,
	// transports, stations, lines).
	DatasetEntities = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "refdata_entities",
		Help: "Number of loaded reference data entities per table",
	}, []string{"table"})

	// DatasetLoadedTimestamp is the Unix time of the last successful
	// dataset install. A stale value means refreshes are failing.
	DatasetLoadedTimestamp = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "refdata_loaded_timestamp_seconds",
		Help: "Unix timestamp of the last successful reference data load",
	})
)

var (
	RoutePlans = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "route_plans_total",
		Help: "Number of route plan requests, labeled by city and outcome (transit or walk)",
	}, []string{"city", "outcome"})

	NearestStationLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "nearest_station_lookups_total",
		Help: "Number of nearest station lookups, labeled by city and whether a station was found",
	}, []string{"city", "found"})
)

var (
	WeatherRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "weather_requests_total",
		Help: "Number of weather requests, labeled by city and result status",
	}, []string{"city", "status"})

	TrainLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "train_lookups_total",
		Help: "Number of train schedule lookups, labeled by whether the route was in the timetable",
	}, []string{"found"})
)

var (
	// OutgoingLatency observes the duration of outbound HTTP requests made
	// through the pooled client, labeled by URL (scheme, host and path
	// only), method and response status.
	OutgoingLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "outgoing_request_duration_seconds",
		Help:    "Duration of outgoing HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"url", "method", "status"})
)
