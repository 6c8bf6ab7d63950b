package metar

import "strings"

// Descriptor codes that qualify a phenomenon group
var weatherDescriptors = map[string]string{
	"MI": "shallow",
	"PR": "partial",
	"BC": "patches of",
	"DR": "drifting",
	"BL": "blowing",
	"SH": "showers",
	"TS": "thunderstorm",
	"FZ": "freezing",
}

// Phenomenon codes, decoded two letters at a time
var weatherPhenomena = map[string]string{
	"RA": "rain",
	"SN": "snow",
	"DZ": "drizzle",
	"FG": "fog",
	"BR": "mist",
	"HZ": "haze",
	"GR": "hail",
	"GS": "small hail",
	"SQ": "squalls",
	"FC": "funnel cloud",
	"SS": "sandstorm",
	"DS": "duststorm",
	"UP": "unknown precipitation",
}

const unknownPhenomenon = "(unknown phenomenon)"

// decodeWeather interprets a present-weather group token such as -RA,
// +TSRA, VCSH, or FZFG. One token yields one entry, however many
// phenomenon codes it stacks. Returns nil when the token is not a
// weather group.
func decodeWeather(token string) *WeatherPhenomenon {
	m := weatherRegex.FindStringSubmatch(token)
	if m == nil {
		return nil
	}

	wx := &WeatherPhenomenon{Raw: token, Intensity: "moderate"}
	switch m[1] {
	case "-":
		wx.Intensity = "light"
	case "+":
		wx.Intensity = "heavy"
	}
	wx.Vicinity = m[2] == "VC"
	wx.Descriptor = weatherDescriptors[m[3]]

	known := 0
	for i := 0; i+2 <= len(m[4]); i += 2 {
		code := m[4][i : i+2]
		name, ok := weatherPhenomena[code]
		if !ok {
			name = unknownPhenomenon
		} else {
			known++
		}
		wx.Phenomena = append(wx.Phenomena, name)
	}

	// Reject tokens that only look like weather groups: plain words
	// such as AUTO split into letter pairs but carry no known code.
	if m[3] == "" && !wx.Vicinity && known == 0 {
		return nil
	}

	var parts []string
	if wx.Intensity != "moderate" {
		parts = append(parts, wx.Intensity)
	}
	if wx.Vicinity {
		parts = append(parts, "nearby")
	}
	if wx.Descriptor != "" {
		parts = append(parts, wx.Descriptor)
	}
	parts = append(parts, wx.Phenomena...)
	wx.Description = strings.Join(parts, " ")
	return wx
}
