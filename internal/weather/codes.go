package weather

// wmoCondition maps WMO weather interpretation codes, as returned by
// Open-Meteo, to a human-readable condition and display icon.
type wmoCondition struct {
	Condition string
	Icon      string
}

var wmoCodes = map[int]wmoCondition{
	0:  {"Clear sky", "☀️"},
	1:  {"Mainly clear", "🌤️"},
	2:  {"Partly cloudy", "⛅"},
	3:  {"Overcast", "☁️"},
	45: {"Fog", "🌫️"},
	48: {"Depositing rime fog", "🌫️"},
	51: {"Light drizzle", "🌦️"},
	53: {"Moderate drizzle", "🌦️"},
	55: {"Dense drizzle", "🌧️"},
	61: {"Slight rain", "🌦️"},
	63: {"Moderate rain", "🌧️"},
	65: {"Heavy rain", "⛈️"},
	71: {"Slight snow", "🌨️"},
	73: {"Moderate snow", "❄️"},
	75: {"Heavy snow", "❄️"},
	95: {"Thunderstorm", "⛈️"},
}

// conditionFor resolves a WMO code, falling back to an explicit unknown
// marker for codes outside the table.
func conditionFor(code int) wmoCondition {
	if c, ok := wmoCodes[code]; ok {
		return c
	}
	return wmoCondition{"Unknown", "❓"}
}
