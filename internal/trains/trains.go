package trains

import (
	"fmt"
	"strings"
	"time"
)

// route is one directed intercity connection in the static timetable.
type route struct {
	DurationMin int
	TrainType   string
	Shinkansen  bool
}

// The tables hold approximate travel times for the routes a first-time
// visitor actually rides. Keys are "from-to" in lowercase; both directions
// are listed explicitly.
var shinkansenRoutes = map[string]route{
	"tokyo-kyoto":          {135, "Nozomi", true},
	"kyoto-tokyo":          {135, "Nozomi", true},
	"tokyo-osaka":          {150, "Nozomi", true},
	"osaka-tokyo":          {150, "Nozomi", true},
	"tokyo-shin-osaka":     {150, "Nozomi", true},
	"shin-osaka-tokyo":     {150, "Nozomi", true},
	"kyoto-osaka":          {15, "Kodama", true},
	"osaka-kyoto":          {15, "Kodama", true},
	"tokyo-nagoya":         {100, "Nozomi", true},
	"nagoya-tokyo":         {100, "Nozomi", true},
	"shin-osaka-hiroshima": {90, "Nozomi", true},
	"hiroshima-shin-osaka": {90, "Nozomi", true},
}

var localRoutes = map[string]route{
	"tokyo-shinjuku":   {15, "JR Yamanote", false},
	"shinjuku-tokyo":   {15, "JR Yamanote", false},
	"shinjuku-shibuya": {5, "JR Yamanote", false},
	"shibuya-shinjuku": {5, "JR Yamanote", false},
	"tokyo-ueno":       {8, "JR Yamanote", false},
	"ueno-tokyo":       {8, "JR Yamanote", false},
	"kyoto-nara":       {45, "JR Nara Line", false},
	"nara-kyoto":       {45, "JR Nara Line", false},
	"osaka-nara":       {50, "JR Nara Line", false},
	"nara-osaka":       {50, "JR Nara Line", false},
	"osaka-kobe":       {30, "JR Kobe Line", false},
	"kobe-osaka":       {30, "JR Kobe Line", false},
}

// Departure intervals: shinkansen run roughly every half hour during the
// day, local JR lines more often.
const (
	shinkansenIntervalMin = 30
	localIntervalMin      = 15
)

// Schedule is one concrete departure on a timetable route.
type Schedule struct {
	From          string `json:"from"`
	To            string `json:"to"`
	DepartureTime string `json:"departureTime"`
	ArrivalTime   string `json:"arrivalTime"`
	Duration      string `json:"duration"`
	TrainType     string `json:"trainType"`
}

// RoutePair is a suggested intercity connection.
type RoutePair struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Label string `json:"label"`
}

func lookupRoute(from, to string) (route, bool) {
	key := strings.ToLower(from) + "-" + strings.ToLower(to)
	if r, ok := shinkansenRoutes[key]; ok {
		return r, true
	}
	r, ok := localRoutes[key]
	return r, ok
}

func interval(r route) time.Duration {
	if r.Shinkansen {
		return shinkansenIntervalMin * time.Minute
	}
	return localIntervalMin * time.Minute
}

// nextDepartureAfter aligns now to the route's departure grid: departures
// leave at fixed minutes past each hour. The returned time is strictly after
// now.
func nextDepartureAfter(now time.Time, step time.Duration) time.Time {
	stepMin := int(step.Minutes())
	next := ((now.Minute() + stepMin - 1) / stepMin) * stepMin
	dep := time.Date(now.Year(), now.Month(), now.Day(), now.Hour(), next, 0, 0, now.Location())
	if !dep.After(now) {
		dep = dep.Add(step)
	}
	return dep
}

func formatDuration(minutes int) string {
	h, m := minutes/60, minutes%60
	if h > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	return fmt.Sprintf("%dm", m)
}

func schedule(from, to string, r route, dep time.Time) Schedule {
	arr := dep.Add(time.Duration(r.DurationMin) * time.Minute)
	return Schedule{
		From:          from,
		To:            to,
		DepartureTime: dep.Format("15:04"),
		ArrivalTime:   arr.Format("15:04"),
		Duration:      formatDuration(r.DurationMin),
		TrainType:     r.TrainType,
	}
}

// NextTrain returns the next departure for a route after now, or false when
// the route is not in the timetable. The caller supplies the clock, so the
// result is a pure function of its inputs.
func NextTrain(from, to string, now time.Time) (Schedule, bool) {
	r, ok := lookupRoute(from, to)
	if !ok {
		return Schedule{}, false
	}
	return schedule(from, to, r, nextDepartureAfter(now, interval(r))), true
}

// NextTrains returns up to count consecutive departures for a route.
func NextTrains(from, to string, now time.Time, count int) []Schedule {
	r, ok := lookupRoute(from, to)
	if !ok || count <= 0 {
		return nil
	}

	step := interval(r)
	out := make([]Schedule, 0, count)
	cursor := now
	for i := 0; i < count; i++ {
		dep := nextDepartureAfter(cursor, step)
		out = append(out, schedule(from, to, r, dep))
		cursor = dep
	}
	return out
}

// PopularRoutes lists the connections surfaced as quick picks in the UI.
func PopularRoutes() []RoutePair {
	return []RoutePair{
		{From: "Tokyo", To: "Kyoto", Label: "Tokyo to Kyoto"},
		{From: "Tokyo", To: "Osaka", Label: "Tokyo to Osaka"},
		{From: "Kyoto", To: "Osaka", Label: "Kyoto to Osaka"},
		{From: "Kyoto", To: "Nara", Label: "Kyoto to Nara"},
		{From: "Osaka", To: "Nara", Label: "Osaka to Nara"},
		{From: "Tokyo", To: "Shin-Osaka", Label: "Tokyo to Shin-Osaka"},
	}
}
