package metar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exampleReport = "KHIO 051953Z 36008KT 10SM CLR 21/M01 A3012"

func TestDecode_ExampleReport(t *testing.T) {
	report, err := Decode(exampleReport, "KHIO")
	require.NoError(t, err)

	assert.Equal(t, "KHIO", report.Station)
	assert.True(t, report.HintMatches)
	assert.Equal(t, 5, report.Observed.Day)
	assert.Equal(t, 19, report.Observed.Hour)
	assert.Equal(t, 53, report.Observed.Minute)

	require.NotNil(t, report.Wind)
	assert.Equal(t, 360, report.Wind.DirectionDeg)
	assert.Equal(t, "N", report.Wind.Compass)
	assert.Equal(t, 8, report.Wind.SpeedKt)
	assert.Nil(t, report.Wind.GustKt)
	assert.False(t, report.Wind.Variable)
	assert.False(t, report.Wind.Calm)

	require.NotNil(t, report.Visibility)
	assert.Equal(t, 10.0, report.Visibility.Miles)
	assert.True(t, report.Visibility.TenOrMore)

	assert.Empty(t, report.Weather)

	require.Len(t, report.Clouds, 1)
	assert.Equal(t, CoverageClear, report.Clouds[0].Coverage)
	assert.Nil(t, report.Clouds[0].BaseFt)
	assert.Equal(t, "clear skies", report.Clouds[0].Description)

	require.NotNil(t, report.Temperature)
	assert.Equal(t, 21, report.Temperature.TemperatureC)
	assert.Equal(t, 70, report.Temperature.TemperatureF)
	require.NotNil(t, report.Temperature.DewpointC)
	assert.Equal(t, -1, *report.Temperature.DewpointC)
	assert.Equal(t, 30, *report.Temperature.DewpointF)

	require.NotNil(t, report.Pressure)
	assert.Equal(t, 3012, report.Pressure.InHgHundredths)
	assert.Equal(t, "30.12", report.Pressure.String())

	assert.Equal(t, exampleReport, report.Raw)
}

func TestDecode_Idempotent(t *testing.T) {
	first, err := Decode(exampleReport, "KHIO")
	require.NoError(t, err)
	second, err := Decode(exampleReport, "KHIO")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestDecode_MalformedInput(t *testing.T) {
	for _, raw := range []string{"", "   ", "KHIO", "KHIO 051953Z", "KHIO 051953Z 36008KT"} {
		_, err := Decode(raw, "KHIO")
		assert.ErrorIs(t, err, ErrMalformedReport, "input %q", raw)
	}
}

func TestDecode_InvalidStation(t *testing.T) {
	_, err := Decode("KH 051953Z 36008KT 10SM CLR", "KHIO")
	assert.ErrorIs(t, err, ErrInvalidStationID)

	_, err = Decode("KHIO! 051953Z 36008KT 10SM CLR", "KHIO")
	assert.ErrorIs(t, err, ErrInvalidStationID)
}

func TestDecode_InvalidTimestamp(t *testing.T) {
	cases := []string{
		"KHIO 36008KT 10SM CLR 21/M01",   // timestamp missing entirely
		"KHIO 051953 36008KT 10SM CLR",   // no Z suffix
		"KHIO 329953Z 36008KT 10SM CLR",  // day out of range
		"KHIO 052499Z 36008KT 10SM CLR",  // hour out of range
		"KHIO 0519530Z 36008KT 10SM CLR", // too many digits
	}
	for _, raw := range cases {
		_, err := Decode(raw, "KHIO")
		assert.ErrorIs(t, err, ErrInvalidTimestamp, "input %q", raw)
	}
}

func TestDecode_SkipsUnknownTokens(t *testing.T) {
	report, err := Decode("KHIO 051953Z 36008KT 10SM CLR 21/M01 A3012 RMK AO2 SLP132", "KHIO")
	require.NoError(t, err)

	// Remarks must not leak into any decoded field
	assert.Len(t, report.Clouds, 1)
	assert.Empty(t, report.Weather)
	require.NotNil(t, report.Pressure)
	assert.Equal(t, 3012, report.Pressure.InHgHundredths)
}

func TestDecode_AutoTokenNotWeather(t *testing.T) {
	report, err := Decode("KHIO 051953Z AUTO 36008KT 10SM CLR 21/M01 A3012", "KHIO")
	require.NoError(t, err)
	assert.Empty(t, report.Weather)
	require.NotNil(t, report.Wind)
	assert.Equal(t, 8, report.Wind.SpeedKt)
}

func TestDecode_PartialReport(t *testing.T) {
	// No visibility, no temperature, no pressure: still a usable decode
	report, err := Decode("CYYZ 121800Z VRB03KT BKN025 OVC040", "CYYZ")
	require.NoError(t, err)

	assert.Nil(t, report.Visibility)
	assert.Equal(t, "visibility unknown", report.VisibilityText())
	assert.Nil(t, report.Temperature)
	assert.Equal(t, "temperature not reported", report.TemperatureText())
	assert.Nil(t, report.Pressure)
	assert.Equal(t, "pressure not reported", report.PressureText())

	require.NotNil(t, report.Wind)
	assert.True(t, report.Wind.Variable)
	require.Len(t, report.Clouds, 2)
}

func TestDecode_CloudOrderPreserved(t *testing.T) {
	// The decoder echoes source order even when it is anomalous
	report, err := Decode("KJFK 092251Z 22010KT 10SM OVC040 BKN025 18/12 A2992", "KJFK")
	require.NoError(t, err)
	require.Len(t, report.Clouds, 2)
	assert.Equal(t, CoverageOvercast, report.Clouds[0].Coverage)
	assert.Equal(t, CoverageBroken, report.Clouds[1].Coverage)
}

func TestDecode_MixedVisibility(t *testing.T) {
	report, err := Decode("KBOS 041554Z 09012KT 1 1/2SM BR OVC008 14/13 A2987", "KBOS")
	require.NoError(t, err)
	require.NotNil(t, report.Visibility)
	assert.InDelta(t, 1.5, report.Visibility.Miles, 1e-9)
	assert.False(t, report.Visibility.TenOrMore)

	require.Len(t, report.Weather, 1)
	assert.Equal(t, []string{"mist"}, report.Weather[0].Phenomena)
}

func TestDecode_HintMismatch(t *testing.T) {
	report, err := Decode(exampleReport, "KJFK")
	require.NoError(t, err)
	assert.False(t, report.HintMatches)
	assert.Equal(t, "KJFK", report.StationHint)
	assert.Equal(t, "KHIO", report.Station)
}

func TestDecode_SummaryPrefersWeatherOverClouds(t *testing.T) {
	report, err := Decode("KSEA 110453Z 18006KT 4SM -RA BKN015 OVC025 09/07 A3001", "KSEA")
	require.NoError(t, err)
	assert.Contains(t, report.Summary, "light rain")
	assert.NotContains(t, report.Summary, "broken clouds")
	assert.Contains(t, report.Summary, "Wind from the south")
}

func TestDecode_PressureStableAcrossDecodes(t *testing.T) {
	for i := 0; i < 1000; i++ {
		report, err := Decode(exampleReport, "KHIO")
		require.NoError(t, err)
		require.Equal(t, 3012, report.Pressure.InHgHundredths)
		require.Equal(t, 30.12, report.Pressure.InHg())
	}
}
