package metar

import "fmt"

// WindInfo represents decoded wind conditions
type WindInfo struct {
	DirectionDeg int    `json:"direction_deg"`     // 0-360, meaningful only when not variable
	Variable     bool   `json:"variable"`          // true for VRB tokens
	Calm         bool   `json:"calm"`              // true for 00000KT
	SpeedKt      int    `json:"speed_kt"`          // sustained speed in knots
	GustKt       *int   `json:"gust_kt,omitempty"` // gust speed, nil when not reported
	Compass      string `json:"compass,omitempty"` // 16-point label (N, NNE, ...), empty for variable/calm
	Description  string `json:"description"`
}

// Visibility represents decoded visibility in statute miles
type Visibility struct {
	Miles       float64 `json:"miles"`
	TenOrMore   bool    `json:"ten_or_more"` // 10SM is the top of the reporting range, not an exact reading
	Description string  `json:"description"`
}

// WeatherPhenomenon represents one decoded weather group token.
// A token like +TSRA produces a single entry with stacked phenomena.
type WeatherPhenomenon struct {
	Intensity   string   `json:"intensity"`            // "light", "moderate", or "heavy"
	Vicinity    bool     `json:"vicinity,omitempty"`   // VC prefix
	Descriptor  string   `json:"descriptor,omitempty"` // "thunderstorm", "showers", ...
	Phenomena   []string `json:"phenomena,omitempty"`  // decoded names in token order
	Raw         string   `json:"raw"`
	Description string   `json:"description"`
}

// CloudCoverage is the qualitative cloud density band of a layer
type CloudCoverage string

const (
	CoverageClear              CloudCoverage = "clear"
	CoverageSkyClear           CloudCoverage = "sky_clear"
	CoverageFew                CloudCoverage = "few"
	CoverageScattered          CloudCoverage = "scattered"
	CoverageBroken             CloudCoverage = "broken"
	CoverageOvercast           CloudCoverage = "overcast"
	CoverageVerticalVisibility CloudCoverage = "vertical_visibility"
)

// CloudLayer represents a single decoded cloud layer.
// Layers keep report order; the decoder never re-sorts them.
type CloudLayer struct {
	Coverage    CloudCoverage `json:"coverage"`
	BaseFt      *int          `json:"base_ft,omitempty"` // layer base in feet, nil for CLR/SKC
	Description string        `json:"description"`
}

// TemperatureReading represents decoded temperature and dewpoint
type TemperatureReading struct {
	TemperatureC int    `json:"temperature_c"`
	TemperatureF int    `json:"temperature_f"`
	DewpointC    *int   `json:"dewpoint_c,omitempty"` // nil when the report ends at the slash
	DewpointF    *int   `json:"dewpoint_f,omitempty"`
	Description  string `json:"description"`
}

// Pressure represents the altimeter setting in inches of mercury.
// The value is kept as an integer count of hundredths so repeated
// decodes never accumulate floating point drift.
type Pressure struct {
	InHgHundredths int    `json:"inhg_hundredths"`
	Description    string `json:"description"`
}

// InHg returns the altimeter setting as a float for display math
func (p Pressure) InHg() float64 {
	return float64(p.InHgHundredths) / 100
}

// String renders the fixed-point value, e.g. "30.12"
func (p Pressure) String() string {
	return fmt.Sprintf("%d.%02d", p.InHgHundredths/100, p.InHgHundredths%100)
}

// ObservationTime is the METAR timestamp: day of month plus UTC time
type ObservationTime struct {
	Day    int `json:"day"`
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
}

// String renders the observation time the way pilots read it, e.g. "19:53Z on day 5"
func (t ObservationTime) String() string {
	return fmt.Sprintf("%02d:%02dZ on day %d", t.Hour, t.Minute, t.Day)
}

// DecodedReport is the aggregate result of a single decode call.
// Optional fields are nil pointers when the report omits them; use the
// *Text helpers for presentation-ready strings with "not reported" markers.
type DecodedReport struct {
	Station     string              `json:"station"`
	StationHint string              `json:"station_hint,omitempty"`
	HintMatches bool                `json:"hint_matches"`
	Observed    ObservationTime     `json:"observed"`
	Wind        *WindInfo           `json:"wind,omitempty"`
	Visibility  *Visibility         `json:"visibility,omitempty"`
	Weather     []WeatherPhenomenon `json:"weather,omitempty"`
	Clouds      []CloudLayer        `json:"clouds,omitempty"`
	Temperature *TemperatureReading `json:"temperature,omitempty"`
	Pressure    *Pressure           `json:"pressure,omitempty"`
	Raw         string              `json:"raw"`
	Summary     string              `json:"summary"`
}

// WindText returns the wind description or a "not reported" marker
func (r *DecodedReport) WindText() string {
	if r.Wind == nil {
		return "wind not reported"
	}
	return r.Wind.Description
}

// VisibilityText returns the visibility description or a "not reported" marker
func (r *DecodedReport) VisibilityText() string {
	if r.Visibility == nil {
		return "visibility unknown"
	}
	return r.Visibility.Description
}

// WeatherText returns the combined weather description or a "not reported" marker
func (r *DecodedReport) WeatherText() string {
	if len(r.Weather) == 0 {
		return "no significant weather"
	}
	parts := make([]string, 0, len(r.Weather))
	for _, w := range r.Weather {
		parts = append(parts, w.Description)
	}
	return joinComma(parts)
}

// CloudsText returns the combined cloud description or a "not reported" marker
func (r *DecodedReport) CloudsText() string {
	if len(r.Clouds) == 0 {
		return "cloud conditions not reported"
	}
	parts := make([]string, 0, len(r.Clouds))
	for _, c := range r.Clouds {
		parts = append(parts, c.Description)
	}
	return joinComma(parts)
}

// TemperatureText returns the temperature description or a "not reported" marker
func (r *DecodedReport) TemperatureText() string {
	if r.Temperature == nil {
		return "temperature not reported"
	}
	return r.Temperature.Description
}

// PressureText returns the pressure description or a "not reported" marker
func (r *DecodedReport) PressureText() string {
	if r.Pressure == nil {
		return "pressure not reported"
	}
	return r.Pressure.Description
}

func joinComma(parts []string) string {
	out := ""
	for i, p := range parts {
		if i > 0 {
			out += ", "
		}
		out += p
	}
	return out
}
