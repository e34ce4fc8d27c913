package refdata

import (
	"context"
	"fmt"
	"math/rand/v2"
	"net/http"
	"time"
)

const (
	BASE_BACKOFF   = 1 * time.Second
	MAX_BACKOFF    = 2 * time.Minute
	BACKOFF_FACTOR = 2.0
	JITTER_FACTOR  = 0.5
)

// DoWithBackoff performs the request, retrying on transport errors and 5xx
// responses with exponential backoff and jitter. maxRetries counts retries,
// not attempts: maxRetries of 2 means up to 3 calls. The context bounds the
// whole operation including the waits between attempts.
func DoWithBackoff(ctx context.Context, client *http.Client, req *http.Request, maxRetries int) (*http.Response, error) {
	delay := BASE_BACKOFF

	for attempt := 0; ; attempt++ {
		resp, err := client.Do(req.WithContext(ctx))
		if err == nil && resp.StatusCode < 500 {
			return resp, nil
		}

		status := 0
		if resp != nil {
			status = resp.StatusCode
			resp.Body.Close()
		}

		if attempt >= maxRetries {
			if err != nil {
				return nil, fmt.Errorf("max retries exceeded: %w", err)
			}
			return nil, fmt.Errorf("max retries exceeded: server returned status %d", status)
		}

		wait := delay + time.Duration(rand.Float64()*float64(delay)*JITTER_FACTOR)
		if wait > MAX_BACKOFF {
			wait = MAX_BACKOFF
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(wait):
		}

		delay = time.Duration(float64(delay) * BACKOFF_FACTOR)
		if delay > MAX_BACKOFF {
			delay = MAX_BACKOFF
		}
	}
}
