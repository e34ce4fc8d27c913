package trip

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"tabiplan.jp/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := OpenStore(filepath.Join(t.TempDir(), "trips.db"))
	if err != nil {
		t.Fatalf("Failed to open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func newTestPlan(t *testing.T, name string, now time.Time) Plan {
	t.Helper()
	tr := New()
	tr.Select(testAttraction("sensoji", 500))
	tr.Itinerary.Add(models.KindAttraction, "sensoji", testDate(t, "2026-05-02"), models.SlotMorning, "")
	return Snapshot(name, testDate(t, "2026-05-01"), testDate(t, "2026-05-07"), tr, now)
}

func TestStoreSaveAndGet(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	now := time.Date(2026, 4, 20, 12, 0, 0, 0, time.UTC)

	p := newTestPlan(t, "Kansai loop", now)
	if err := s.Save(ctx, p); err != nil {
		t.Fatalf("Failed to save plan: %v", err)
	}

	got, err := s.Get(ctx, p.ID)
	if err != nil {
		t.Fatalf("Failed to load plan: %v", err)
	}
	if got.Name != "Kansai loop" {
		t.Errorf("Expected plan name Kansai loop, got %s", got.Name)
	}
	if len(got.Entries) != 1 {
		t.Errorf("Expected 1 entry, got %d", len(got.Entries))
	}
	if got.Budget.Total != 500 {
		t.Errorf("Expected budget total 500, got %d", got.Budget.Total)
	}
	if !got.StartDate.Equal(p.StartDate) {
		t.Errorf("Expected start date %s, got %s", p.StartDate, got.StartDate)
	}
}

func TestStoreSaveReplacesExisting(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	now := time.Date(2026, 4, 20, 12, 0, 0, 0, time.UTC)

	p := newTestPlan(t, "Draft", now)
	if err := s.Save(ctx, p); err != nil {
		t.Fatalf("Failed to save plan: %v", err)
	}

	p.Name = "Final"
	p.UpdatedAt = now.Add(time.Hour)
	if err := s.Save(ctx, p); err != nil {
		t.Fatalf("Failed to re-save plan: %v", err)
	}

	n, err := s.Count(ctx)
	if err != nil {
		t.Fatalf("Failed to count plans: %v", err)
	}
	if n != 1 {
		t.Errorf("Expected 1 plan after re-save, got %d", n)
	}

	got, err := s.Get(ctx, p.ID)
	if err != nil {
		t.Fatalf("Failed to load plan: %v", err)
	}
	if got.Name != "Final" {
		t.Errorf("Expected updated name Final, got %s", got.Name)
	}
}

func TestStoreListOrdersByUpdatedAt(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	base := time.Date(2026, 4, 20, 12, 0, 0, 0, time.UTC)

	older := newTestPlan(t, "older", base)
	newer := newTestPlan(t, "newer", base.Add(2*time.Hour))
	if err := s.Save(ctx, older); err != nil {
		t.Fatalf("Failed to save plan: %v", err)
	}
	if err := s.Save(ctx, newer); err != nil {
		t.Fatalf("Failed to save plan: %v", err)
	}

	plans, err := s.List(ctx)
	if err != nil {
		t.Fatalf("Failed to list plans: %v", err)
	}
	if len(plans) != 2 {
		t.Fatalf("Expected 2 plans, got %d", len(plans))
	}
	if plans[0].Name != "newer" || plans[1].Name != "older" {
		t.Errorf("Expected most recently updated first, got %s then %s", plans[0].Name, plans[1].Name)
	}
}

func TestStoreGetMissing(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Get(context.Background(), "no-such-plan")
	if !errors.Is(err, ErrPlanNotFound) {
		t.Errorf("Expected ErrPlanNotFound, got %v", err)
	}
}

func TestStoreDelete(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	p := newTestPlan(t, "to delete", time.Date(2026, 4, 20, 12, 0, 0, 0, time.UTC))
	if err := s.Save(ctx, p); err != nil {
		t.Fatalf("Failed to save plan: %v", err)
	}

	if err := s.Delete(ctx, p.ID); err != nil {
		t.Fatalf("Failed to delete plan: %v", err)
	}
	if _, err := s.Get(ctx, p.ID); !errors.Is(err, ErrPlanNotFound) {
		t.Errorf("Expected plan gone after delete, got %v", err)
	}
	if err := s.Delete(ctx, p.ID); !errors.Is(err, ErrPlanNotFound) {
		t.Errorf("Expected ErrPlanNotFound on second delete, got %v", err)
	}
}
