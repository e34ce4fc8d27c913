package trip

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// schemaSQL is the single source of truth for the saved-plans schema,
// embedded at compile time.
//
//go:embed schema.sql
var schemaSQL string

// ErrPlanNotFound is returned when a plan id does not exist in the store.
var ErrPlanNotFound = errors.New("plan not found")

// Store persists saved trip plans in a local SQLite file. This is the
// desktop/server rendition of the browser app's localStorage: purely local,
// single user, no sharing semantics.
type Store struct {
	db *sql.DB
}

// OpenStore opens (creating if needed) the SQLite database at path and
// ensures the schema exists. WAL mode keeps reads cheap; a single connection
// is enough because SQLite allows one writer at a time and plan saves are
// rare, explicit user actions.
func OpenStore(path string) (*Store, error) {
	dsn := path + "?_journal=WAL&_fk=1&_busy_timeout=5000"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open trip store: %w", err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping trip store: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create trip store schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save inserts or replaces a plan.
func (s *Store) Save(ctx context.Context, p Plan) error {
	payload, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to encode plan %s: %w", p.ID, err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO plans (id, name, start_date, end_date, payload, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Name, p.StartDate.String(), p.EndDate.String(), string(payload),
		p.CreatedAt.UTC().Format(time.RFC3339), p.UpdatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to save plan %s: %w", p.ID, err)
	}
	return nil
}

// Get returns the plan with the given id, or ErrPlanNotFound.
func (s *Store) Get(ctx context.Context, id string) (Plan, error) {
	var payload string
	err := s.db.QueryRowContext(ctx, `SELECT payload FROM plans WHERE id = ?`, id).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return Plan{}, ErrPlanNotFound
	}
	if err != nil {
		return Plan{}, fmt.Errorf("failed to load plan %s: %w", id, err)
	}
	return decodePlan(payload)
}

// List returns all saved plans, most recently updated first.
func (s *Store) List(ctx context.Context) ([]Plan, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT payload FROM plans ORDER BY updated_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}
	defer rows.Close()

	var plans []Plan
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("failed to scan plan row: %w", err)
		}
		p, err := decodePlan(payload)
		if err != nil {
			return nil, err
		}
		plans = append(plans, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate plans: %w", err)
	}
	return plans, nil
}

// Delete removes a plan, returning ErrPlanNotFound when the id is unknown.
func (s *Store) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM plans WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete plan %s: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete plan %s: %w", id, err)
	}
	if affected == 0 {
		return ErrPlanNotFound
	}
	return nil
}

// Count returns the number of saved plans.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM plans`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count plans: %w", err)
	}
	return n, nil
}

func decodePlan(payload string) (Plan, error) {
	var p Plan
	if err := json.Unmarshal([]byte(payload), &p); err != nil {
		return Plan{}, fmt.Errorf("failed to decode stored plan: %w", err)
	}
	p.Budget.normalize()
	return p, nil
}
