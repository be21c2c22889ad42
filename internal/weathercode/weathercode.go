// Package weathercode translates WMO present-weather codes, as reported by
// Open-Meteo's weather_code field, into short English descriptions.
package weathercode

// Unknown is returned for codes outside the table.
const Unknown = "unknown"

var descriptions = map[int]string{
	0:  "clear sky",
	1:  "mainly clear",
	2:  "partly cloudy",
	3:  "overcast",
	45: "fog",
	48: "depositing rime fog",
	51: "light drizzle",
	53: "moderate drizzle",
	55: "dense drizzle",
	61: "slight rain",
	63: "moderate rain",
	65: "heavy rain",
	71: "slight snow fall",
	73: "moderate snow fall",
	75: "heavy snow fall",
	80: "slight rain showers",
	81: "moderate rain showers",
	82: "violent rain showers",
	95: "thunderstorm",
	96: "thunderstorm with slight hail",
	99: "thunderstorm with heavy hail",
}

// Describe returns the description for code, or Unknown.
func Describe(code int) string {
	if d, ok := descriptions[code]; ok {
		return d
	}
	return Unknown
}

// Codes returns every code the table knows about.
func Codes() []int {
	codes := make([]int, 0, len(descriptions))
	for code := range descriptions {
		codes = append(codes, code)
	}
	return codes
}
