package app

import (
	"context"
	"time"

	"tabiplan.jp/internal/metrics"
)

// StartMetricsCollection publishes dataset gauges immediately and then on a
// fixed interval, so a refresh that shrinks or grows the reference tables
// shows up in Prometheus without waiting for a request. Stops when ctx is
// cancelled.
func (app *Application) StartMetricsCollection(ctx context.Context) {
	app.collectDatasetMetrics()

	ticker := time.NewTicker(30 * time.Second)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				app.collectDatasetMetrics()
			}
		}
	}()
}

func (app *Application) collectDatasetMetrics() {
	for table, count := range app.RefData.Counts() {
		metrics.DatasetEntities.WithLabelValues(table).Set(float64(count))
	}
	if loadedAt := app.RefData.LoadedAt(); !loadedAt.IsZero() {
		metrics.DatasetLoadedTimestamp.Set(float64(loadedAt.Unix()))
	}
}
