package trip

import (
	"fmt"

	"github.com/google/uuid"
	"tabiplan.jp/internal/models"
	"tabiplan.jp/internal/utils"
)

// Entry is one scheduled item in an itinerary: a reference to a selected POI
// placed on a date and a coarse time-of-day slot. Order is the explicit
// position used for manual reordering.
type Entry struct {
	ID    string          `json:"id"`
	Kind  models.Kind     `json:"kind"`
	RefID string          `json:"refId"`
	Date  utils.Date      `json:"date"`
	Slot  models.TimeSlot `json:"slot"`
	Order int             `json:"order"`
	Notes string          `json:"notes,omitempty"`
}

// Itinerary owns the ordered list of entries for the trip being edited.
//
// Invariant: after every mutation, entry order values form a dense,
// zero-based 0..n-1 sequence with no gaps or duplicates. Callers that read
// entries back in order can rely on it.
type Itinerary struct {
	entries []Entry
}

// Add appends a new entry at the end of the list and returns it.
func (it *Itinerary) Add(kind models.Kind, refID string, date utils.Date, slot models.TimeSlot, notes string) Entry {
	e := Entry{
		ID:    uuid.NewString(),
		Kind:  kind,
		RefID: refID,
		Date:  date,
		Slot:  slot,
		Order: len(it.entries),
		Notes: notes,
	}
	it.entries = append(it.entries, e)
	return e
}

// Remove deletes the entry with the given ID and re-contiguates the
// remaining order values. Returns false if no such entry exists.
func (it *Itinerary) Remove(id string) bool {
	for i, e := range it.entries {
		if e.ID == id {
			it.entries = append(it.entries[:i], it.entries[i+1:]...)
			it.renumber()
			return true
		}
	}
	return false
}

// RemoveRef deletes every entry referencing the given POI. Used when a POI
// is deselected so the schedule cannot keep pointing at it.
func (it *Itinerary) RemoveRef(kind models.Kind, refID string) int {
	kept := it.entries[:0]
	removed := 0
	for _, e := range it.entries {
		if e.Kind == kind && e.RefID == refID {
			removed++
			continue
		}
		kept = append(kept, e)
	}
	it.entries = kept
	if removed > 0 {
		it.renumber()
	}
	return removed
}

// Reorder rewrites the list in the order given by ids, which must be a
// permutation of the current entry IDs.
func (it *Itinerary) Reorder(ids []string) error {
	if len(ids) != len(it.entries) {
		return fmt.Errorf("reorder expects %d ids, got %d", len(it.entries), len(ids))
	}

	byID := make(map[string]Entry, len(it.entries))
	for _, e := range it.entries {
		byID[e.ID] = e
	}

	reordered := make([]Entry, 0, len(ids))
	for _, id := range ids {
		e, ok := byID[id]
		if !ok {
			return fmt.Errorf("unknown or duplicate entry id %q in reorder", id)
		}
		delete(byID, id)
		reordered = append(reordered, e)
	}

	it.entries = reordered
	it.renumber()
	return nil
}

// Entries returns a copy of all entries in order.
func (it *Itinerary) Entries() []Entry {
	return append([]Entry(nil), it.entries...)
}

// For returns the entries scheduled on a date and slot, in order.
func (it *Itinerary) For(date utils.Date, slot models.TimeSlot) []Entry {
	var out []Entry
	for _, e := range it.entries {
		if e.Date.Equal(date) && e.Slot == slot {
			out = append(out, e)
		}
	}
	return out
}

// Len returns the number of entries.
func (it *Itinerary) Len() int {
	return len(it.entries)
}

// restore replaces the entries wholesale, e.g. when loading a saved plan,
// and re-establishes the dense-order invariant regardless of what the
// stored payload claimed.
func (it *Itinerary) restore(entries []Entry) {
	it.entries = append([]Entry(nil), entries...)
	it.renumber()
}

func (it *Itinerary) renumber() {
	for i := range it.entries {
		it.entries[i].Order = i
	}
}
