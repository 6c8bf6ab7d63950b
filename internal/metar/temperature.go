package metar

import (
	"fmt"
	"math"
	"strconv"
)

// CelsiusToFahrenheit converts and rounds to the nearest whole degree
func CelsiusToFahrenheit(c int) int {
	return int(math.Round(float64(c)*9/5 + 32))
}

// decodeTemperature interprets a TT/DD token, where either value may
// carry an M prefix for below-zero Celsius. A token ending at the slash
// ("21/") yields a reading with an absent dewpoint, not an error.
// Returns nil when the token is not a temperature group.
func decodeTemperature(token string) *TemperatureReading {
	m := tempRegex.FindStringSubmatch(token)
	if m == nil {
		return nil
	}

	t := &TemperatureReading{}
	t.TemperatureC, _ = strconv.Atoi(m[2])
	if m[1] == "M" {
		t.TemperatureC = -t.TemperatureC
	}
	t.TemperatureF = CelsiusToFahrenheit(t.TemperatureC)

	if m[4] != "" {
		dew, _ := strconv.Atoi(m[4])
		if m[3] == "M" {
			dew = -dew
		}
		dewF := CelsiusToFahrenheit(dew)
		t.DewpointC = &dew
		t.DewpointF = &dewF
		t.Description = fmt.Sprintf("%d°F (%d°C), dewpoint %d°F (%d°C)",
			t.TemperatureF, t.TemperatureC, dewF, dew)
		return t
	}

	t.Description = fmt.Sprintf("%d°F (%d°C), dewpoint not reported", t.TemperatureF, t.TemperatureC)
	return t
}
