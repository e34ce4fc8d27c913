package trip

import (
	"encoding/json"
	"strings"
	"testing"

	"tabiplan.jp/internal/models"
)

func TestShareRoundTrip(t *testing.T) {
	date := testDate(t, "2026-05-01")
	payload := SharePayload{
		Entries: []Entry{
			{ID: "e1", Kind: models.KindAttraction, RefID: "sensoji", Date: date, Slot: models.SlotMorning, Order: 0},
			{ID: "e2", Kind: models.KindRestaurant, RefID: "ichiran", Date: date, Slot: models.SlotEvening, Order: 1},
		},
		Budget: Budget{Attractions: 500, Food: 1200, Total: 1700},
	}

	token, err := EncodeShare(payload)
	if err != nil {
		t.Fatalf("Failed to encode share payload: %v", err)
	}
	if strings.ContainsAny(token, "+/") {
		t.Error("Expected URL-safe token without + or /")
	}

	decoded, err := DecodeShare(token)
	if err != nil {
		t.Fatalf("Failed to decode share token: %v", err)
	}
	if len(decoded.Entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(decoded.Entries))
	}
	if decoded.Entries[0].RefID != "sensoji" || decoded.Entries[1].RefID != "ichiran" {
		t.Error("Expected entry refs to survive the round trip")
	}
	if decoded.Budget.Total != 1700 {
		t.Errorf("Expected total 1700, got %d", decoded.Budget.Total)
	}
}

func TestDecodeShareRederivesBudgetTotal(t *testing.T) {
	token, err := EncodeShare(SharePayload{
		Budget: Budget{Food: 1000, Shopping: 2000, Total: 99},
	})
	if err != nil {
		t.Fatalf("Failed to encode share payload: %v", err)
	}

	decoded, err := DecodeShare(token)
	if err != nil {
		t.Fatalf("Failed to decode share token: %v", err)
	}
	if decoded.Budget.Total != 3000 {
		t.Errorf("Expected decoded total re-derived to 3000, got %d", decoded.Budget.Total)
	}
}

func TestDecodeShareRejectsGarbage(t *testing.T) {
	if _, err := DecodeShare("not base64!!!"); err == nil {
		t.Error("Expected invalid base64 to fail")
	}
	// Valid base64 of invalid JSON.
	if _, err := DecodeShare("bm90IGpzb24="); err == nil {
		t.Error("Expected invalid JSON payload to fail")
	}
}

func TestExportJSON(t *testing.T) {
	tr := New()
	tr.Select(testAttraction("sensoji", 500))
	tr.Itinerary.Add(models.KindAttraction, "sensoji", testDate(t, "2026-05-02"), models.SlotMorning, "")

	data, err := ExportJSON(tr)
	if err != nil {
		t.Fatalf("Failed to export trip: %v", err)
	}

	var doc struct {
		Entries    []Entry    `json:"entries"`
		Selections Selections `json:"selections"`
		Budget     Budget     `json:"budget"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("Exported document is not valid JSON: %v", err)
	}
	if len(doc.Entries) != 1 {
		t.Errorf("Expected 1 exported entry, got %d", len(doc.Entries))
	}
	if doc.Budget.Total != 500 {
		t.Errorf("Expected exported total 500, got %d", doc.Budget.Total)
	}
}
