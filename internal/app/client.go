package app

import (
	"net"
	"net/http"
	"strconv"
	"time"

	"tabiplan.jp/internal/metrics"
)

// latencyTrackingRoundTripper wraps another RoundTripper to record the
// duration of each outgoing request in the OutgoingLatency histogram,
// labeled by URL, method and status.
type latencyTrackingRoundTripper struct {
	next http.RoundTripper
}

func (rt *latencyTrackingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := rt.next.RoundTrip(req)
	duration := time.Since(start).Seconds()

	status := "error"
	if err == nil && resp != nil {
		status = strconv.Itoa(resp.StatusCode)
	}

	// Scheme, host and path only; query parameters would explode label
	// cardinality.
	safeURL := req.URL.Scheme + "://" + req.URL.Host + req.URL.Path

	metrics.OutgoingLatency.WithLabelValues(
		safeURL,
		req.Method,
		status,
	).Observe(duration)

	return resp, err
}

// NewPooledClient returns the HTTP client used for all outbound calls: the
// weather API and remote dataset fetches. Connection reuse matters because
// the same few hosts are hit repeatedly; the timeouts fail fast when an
// upstream is unresponsive instead of hanging a request handler.
func NewPooledClient() *http.Client {
	transport := &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		TLSHandshakeTimeout: 5 * time.Second,
	}

	instrumentedTransport := &latencyTrackingRoundTripper{next: transport}

	return &http.Client{
		Transport: instrumentedTransport,
		Timeout:   10 * time.Second,
	}
}
