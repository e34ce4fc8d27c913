package app

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"tabiplan.jp/internal/config"
	"tabiplan.jp/internal/refdata"
	"tabiplan.jp/internal/trip"
)

func testDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestApplication builds an Application with the embedded dataset loaded
// and a throwaway plan store.
func newTestApplication(t *testing.T) *Application {
	t.Helper()

	cfg := config.NewConfig(4000, "testing")
	logger := testDiscardLogger()

	plans, err := trip.OpenStore(filepath.Join(t.TempDir(), "plans.db"))
	if err != nil {
		t.Fatalf("Failed to open plan store: %v", err)
	}
	t.Cleanup(func() { plans.Close() })

	app := New(cfg, logger, http.DefaultClient, plans, "test-version")

	ds, err := refdata.Builtin()
	if err != nil {
		t.Fatalf("Failed to load builtin dataset: %v", err)
	}
	app.RefData.Update(ds)

	return app
}

// newTestRouter returns the full routed handler with a context that is
// cancelled when the test ends.
func newTestRouter(t *testing.T, app *Application) http.Handler {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	return app.Routes(ctx)
}

// doRequest runs one request through the handler and returns the recorder.
func doRequest(handler http.Handler, method, target string, body io.Reader) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(method, target, body)
	handler.ServeHTTP(rr, req)
	return rr
}
