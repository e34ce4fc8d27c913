package models

// TimeSlot is the coarse time-of-day bucket an itinerary entry is assigned
// to. Ordering within a day is slot first, then the entry's explicit order.
type TimeSlot string

const (
	SlotMorning   TimeSlot = "morning"
	SlotAfternoon TimeSlot = "afternoon"
	SlotEvening   TimeSlot = "evening"
	SlotNight     TimeSlot = "night"
)

// TimeSlots lists all slots in day order.
var TimeSlots = []TimeSlot{SlotMorning, SlotAfternoon, SlotEvening, SlotNight}

// Valid reports whether s is one of the defined slots.
func (s TimeSlot) Valid() bool {
	switch s {
	case SlotMorning, SlotAfternoon, SlotEvening, SlotNight:
		return true
	}
	return false
}
