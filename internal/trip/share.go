package trip

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
)

// SharePayload is the portable slice of trip state encoded into a share
// link: the schedule and the budget, nothing else. Reference data is not
// embedded; the receiving side resolves POI references against its own
// tables.
type SharePayload struct {
	Entries []Entry `json:"entries"`
	Budget  Budget  `json:"budget"`
}

// EncodeShare serializes a payload into a URL-safe token suitable for a
// query parameter.
func EncodeShare(p SharePayload) (string, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("failed to encode share payload: %w", err)
	}
	return base64.URLEncoding.EncodeToString(data), nil
}

// DecodeShare is the inverse of EncodeShare. The decoded budget total is
// re-derived rather than trusted.
func DecodeShare(token string) (SharePayload, error) {
	data, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return SharePayload{}, fmt.Errorf("invalid share token: %w", err)
	}

	var p SharePayload
	if err := json.Unmarshal(data, &p); err != nil {
		return SharePayload{}, fmt.Errorf("invalid share payload: %w", err)
	}
	p.Budget.normalize()
	return p, nil
}

// ExportJSON renders the current trip as an indented JSON document for
// download or printing.
func ExportJSON(t *Trip) ([]byte, error) {
	doc := struct {
		Entries    []Entry    `json:"entries"`
		Selections Selections `json:"selections"`
		Budget     Budget     `json:"budget"`
	}{
		Entries:    t.Itinerary.Entries(),
		Selections: t.Selections,
		Budget:     t.Budget,
	}
	return json.MarshalIndent(doc, "", "  ")
}
