package weather

// UnknownCondition is the label for codes outside the table.
const UnknownCondition = "Unknown"

const unknownIcon = "🌍"

type codeInfo struct {
	label string
	icon  string
}

// WMO weather interpretation codes as reported by Open-Meteo.
var weatherCodes = map[int]codeInfo{
	0:  {"Clear Sky", "☀️"},
	1:  {"Mainly Clear", "🌤"},
	2:  {"Partly Cloudy", "⛅"},
	3:  {"Overcast", "☁️"},
	45: {"Fog", "🌫"},
	48: {"Depositing Rime Fog", "❄️"},
	51: {"Light Drizzle", "🌧"},
	53: {"Moderate Drizzle", "🌧"},
	55: {"Dense Drizzle", "🌧"},
	61: {"Light Rain", "🌦"},
	63: {"Moderate Rain", "🌧"},
	65: {"Heavy Rain", "🌧"},
	71: {"Light Snow", "🌨"},
	73: {"Moderate Snow", "🌨"},
	75: {"Heavy Snow", "🌨"},
	80: {"Light Rain Showers", "🌦"},
	81: {"Moderate Rain Showers", "🌧"},
	82: {"Heavy Rain Showers", "🌧"},
	95: {"Thunderstorm", "⛈"},
}

// DescribeCode maps a weather code to a human readable condition.
func DescribeCode(code int) string {
	if info, ok := weatherCodes[code]; ok {
		return info.label
	}
	return UnknownCondition
}

// CodeIcon returns an emoji for the weather code.
func CodeIcon(code int) string {
	if info, ok := weatherCodes[code]; ok {
		return info.icon
	}
	return unknownIcon
}
