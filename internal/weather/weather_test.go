package weather

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"gopkg.in/dnaeon/go-vcr.v4/pkg/recorder"
	"tabiplan.jp/internal/refdata"
)

func newTestStore(t *testing.T) *refdata.Store {
	t.Helper()
	ds, err := refdata.Builtin()
	if err != nil {
		t.Fatalf("Failed to load builtin dataset: %v", err)
	}
	store := refdata.NewStore()
	store.Update(ds)
	return store
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCurrentWithVCR(t *testing.T) {
	rec, err := recorder.New(filepath.Join("testdata", "open_meteo_tokyo"))
	if err != nil {
		t.Fatalf("Failed to create recorder: %v", err)
	}

	client := &http.Client{
		Transport: rec,
		Timeout:   10 * time.Second,
	}
	svc := NewService(testLogger(), client, newTestStore(t))

	report, err := svc.Current(context.Background(), "tokyo")
	if err != nil {
		t.Fatalf("Failed to fetch weather: %v", err)
	}

	if report.City != "Tokyo" {
		t.Errorf("Expected city Tokyo, got %s", report.City)
	}
	if report.Temperature != 18 {
		t.Errorf("Expected temperature 18, got %d", report.Temperature)
	}
	if report.Condition != "Partly cloudy" {
		t.Errorf("Expected condition Partly cloudy, got %s", report.Condition)
	}
	if report.Humidity != 62 {
		t.Errorf("Expected humidity 62, got %d", report.Humidity)
	}
	if report.WindSpeedKmh != 10.5 {
		t.Errorf("Expected wind speed 10.5, got %v", report.WindSpeedKmh)
	}

	// Stop the recorder so a second call can only succeed from cache.
	if err := rec.Stop(); err != nil {
		t.Fatalf("Failed to stop recorder: %v", err)
	}

	cached, err := svc.Current(context.Background(), "tokyo")
	if err != nil {
		t.Fatalf("Expected cached report after recorder stopped, got error: %v", err)
	}
	if cached != report {
		t.Error("Expected cached report to equal the fetched one")
	}
}

func TestCurrentUnknownCity(t *testing.T) {
	svc := NewService(testLogger(), http.DefaultClient, newTestStore(t))

	_, err := svc.Current(context.Background(), "atlantis")
	if !errors.Is(err, ErrUnknownCity) {
		t.Errorf("Expected ErrUnknownCity, got %v", err)
	}
}

func TestCurrentUpstreamFailure(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	svc := NewService(testLogger(), ts.Client(), newTestStore(t))
	svc.BaseURL = ts.URL

	if _, err := svc.Current(context.Background(), "kyoto"); err == nil {
		t.Error("Expected upstream 500 to surface as an error")
	}
}

func TestConditionFor(t *testing.T) {
	if got := conditionFor(0); got.Condition != "Clear sky" {
		t.Errorf("Expected Clear sky for code 0, got %s", got.Condition)
	}
	if got := conditionFor(999); got.Condition != "Unknown" {
		t.Errorf("Expected Unknown for unmapped code, got %s", got.Condition)
	}
}
