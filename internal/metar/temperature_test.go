package metar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeTemperature(t *testing.T) {
	cases := []struct {
		token string
		tempC int
		tempF int
		dewC  *int
		dewF  *int
		desc  string
	}{
		{token: "21/M01", tempC: 21, tempF: 70, dewC: intPtr(-1), dewF: intPtr(30), desc: "70°F (21°C), dewpoint 30°F (-1°C)"},
		{token: "M05/M08", tempC: -5, tempF: 23, dewC: intPtr(-8), dewF: intPtr(18), desc: "23°F (-5°C), dewpoint 18°F (-8°C)"},
		{token: "00/00", tempC: 0, tempF: 32, dewC: intPtr(0), dewF: intPtr(32), desc: "32°F (0°C), dewpoint 32°F (0°C)"},
		{token: "35/22", tempC: 35, tempF: 95, dewC: intPtr(22), dewF: intPtr(72), desc: "95°F (35°C), dewpoint 72°F (22°C)"},
		{token: "21/", tempC: 21, tempF: 70, desc: "70°F (21°C), dewpoint not reported"},
	}

	for _, tc := range cases {
		t.Run(tc.token, func(t *testing.T) {
			reading := decodeTemperature(tc.token)
			require.NotNil(t, reading)
			assert.Equal(t, tc.tempC, reading.TemperatureC)
			assert.Equal(t, tc.tempF, reading.TemperatureF)
			assert.Equal(t, tc.dewC, reading.DewpointC)
			assert.Equal(t, tc.dewF, reading.DewpointF)
			assert.Equal(t, tc.desc, reading.Description)
		})
	}
}

func TestDecodeTemperature_NotTemperature(t *testing.T) {
	for _, token := range []string{"A3012", "36008KT", "10SM", "BKN025", "RA", "2/M01X", "M5/M8"} {
		assert.Nil(t, decodeTemperature(token), "token %q", token)
	}
}

func TestCelsiusToFahrenheit(t *testing.T) {
	assert.Equal(t, 32, CelsiusToFahrenheit(0))
	assert.Equal(t, 70, CelsiusToFahrenheit(21))
	assert.Equal(t, 23, CelsiusToFahrenheit(-5))
	assert.Equal(t, 212, CelsiusToFahrenheit(100))
	assert.Equal(t, -40, CelsiusToFahrenheit(-40))
}

func intPtr(v int) *int { return &v }
