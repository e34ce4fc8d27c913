package trip

import (
	"time"

	"github.com/google/uuid"
	"tabiplan.jp/internal/utils"
)

// Plan is a named, saved snapshot of a trip. Plans are created explicitly by
// a save action and deleted explicitly by the user; nothing auto-saves.
type Plan struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	StartDate  utils.Date `json:"startDate"`
	EndDate    utils.Date `json:"endDate"`
	Entries    []Entry    `json:"entries"`
	Selections Selections `json:"selections"`
	Budget     Budget     `json:"budget"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

// Snapshot captures the current trip state under a name. The caller supplies
// the clock so saves are reproducible in tests.
func Snapshot(name string, start, end utils.Date, t *Trip, now time.Time) Plan {
	return Plan{
		ID:         uuid.NewString(),
		Name:       name,
		StartDate:  start,
		EndDate:    end,
		Entries:    t.Itinerary.Entries(),
		Selections: t.Selections,
		Budget:     t.Budget,
		CreatedAt:  now.UTC(),
		UpdatedAt:  now.UTC(),
	}
}

// Restore replaces the trip state with a saved plan's contents. The order
// invariant and the derived budget total are re-established on load rather
// than trusted from the stored payload.
func (t *Trip) Restore(p Plan) {
	t.Selections = p.Selections
	t.Budget = p.Budget
	t.Budget.normalize()
	t.Itinerary.restore(p.Entries)
}
