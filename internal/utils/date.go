package utils

import (
	"encoding/json"
	"time"
)

const ISODate = "2006-01-02" // Date format used for (un)marshaling Date

// Date wraps time.Time to enable custom JSON marshaling/unmarshaling using
// the "YYYY-MM-DD" format (e.g., "2026-04-12"). Itinerary entries and trip
// plans carry dates without a time-of-day component.
type Date time.Time

// NewDate builds a Date from a calendar day in UTC.
func NewDate(year int, month time.Month, day int) Date {
	return Date(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// ParseDate parses a "YYYY-MM-DD" string into a Date.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(ISODate, s)
	if err != nil {
		return Date{}, err
	}
	return Date(t), nil
}

// MarshalJSON serializes the Date to JSON in "YYYY-MM-DD" format.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(d).Format(ISODate))
}

// UnmarshalJSON parses a "YYYY-MM-DD" formatted string into a Date.
func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	t, err := time.Parse(ISODate, s)
	if err != nil {
		return err
	}
	*d = Date(t)
	return nil
}

// String returns the date in "YYYY-MM-DD" format.
func (d Date) String() string {
	return time.Time(d).Format(ISODate)
}

// Time returns the underlying time.Time value of the Date.
func (d Date) Time() time.Time {
	return time.Time(d)
}

// Equal reports whether two dates fall on the same calendar day.
func (d Date) Equal(other Date) bool {
	return d.String() == other.String()
}
