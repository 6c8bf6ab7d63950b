package metar

import (
	"fmt"
	"strconv"
	"strings"
)

// A report needs at least the station id, the timestamp, a wind group,
// and one further field before decoding is worth attempting.
const minTokens = 4

// Decode turns a raw METAR line into a DecodedReport. stationHint is
// the identifier the caller asked for; it is only cross-checked against
// the report, never used to fetch anything.
//
// Decoding is a single linear pass with no backtracking: the first two
// tokens are positional (station, timestamp), every later token is
// classified by pattern and unknown tokens are skipped. Only a missing
// or broken anchor aborts the decode; absent optional fields never do.
// The function is pure and safe for concurrent use.
func Decode(raw, stationHint string) (*DecodedReport, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, ErrMalformedReport
	}

	tokens := strings.Fields(trimmed)
	if len(tokens) < minTokens {
		return nil, fmt.Errorf("%w: got %d tokens, need at least %d", ErrMalformedReport, len(tokens), minTokens)
	}

	station := strings.ToUpper(tokens[0])
	if !stationRegex.MatchString(station) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStationID, tokens[0])
	}

	observed, err := decodeTimestamp(tokens[1])
	if err != nil {
		return nil, err
	}

	report := &DecodedReport{
		Station:     station,
		StationHint: strings.ToUpper(strings.TrimSpace(stationHint)),
		Observed:    observed,
		Raw:         trimmed,
	}
	report.HintMatches = report.StationHint == "" || report.StationHint == station

	for i := 2; i < len(tokens); i++ {
		tok := tokens[i]
		if tok == remarksToken {
			break
		}

		if report.Wind == nil {
			if wind := decodeWind(tok); wind != nil {
				report.Wind = wind
				continue
			}
		}

		if report.Visibility == nil {
			// "1 1/2SM" arrives as two tokens; peek ahead for the fraction
			if visWholeRegex.MatchString(tok) && i+1 < len(tokens) {
				if vis := decodeVisibility(tok, tokens[i+1]); vis != nil {
					report.Visibility = vis
					i++
					continue
				}
			}
			if vis := decodeVisibility("", tok); vis != nil {
				report.Visibility = vis
				continue
			}
		}

		if wx := decodeWeather(tok); wx != nil {
			report.Weather = append(report.Weather, *wx)
			continue
		}

		if layer := decodeCloud(tok); layer != nil {
			report.Clouds = append(report.Clouds, *layer)
			continue
		}

		if report.Temperature == nil {
			if temp := decodeTemperature(tok); temp != nil {
				report.Temperature = temp
				continue
			}
		}

		if report.Pressure == nil {
			if pressure := decodePressure(tok); pressure != nil {
				report.Pressure = pressure
				continue
			}
		}

		// Unrecognized token: skip and keep going. Partial decodes beat
		// total failure for a best-effort readability tool.
	}

	report.Summary = buildSummary(report)
	return report, nil
}

// decodeTimestamp interprets the DDHHMMZ observation time token
func decodeTimestamp(token string) (ObservationTime, error) {
	m := timeRegex.FindStringSubmatch(token)
	if m == nil {
		return ObservationTime{}, fmt.Errorf("%w: %q", ErrInvalidTimestamp, token)
	}
	day, _ := strconv.Atoi(m[1])
	hour, _ := strconv.Atoi(m[2])
	minute, _ := strconv.Atoi(m[3])
	if day < 1 || day > 31 || hour > 23 || minute > 59 {
		return ObservationTime{}, fmt.Errorf("%w: %q", ErrInvalidTimestamp, token)
	}
	return ObservationTime{Day: day, Hour: hour, Minute: minute}, nil
}

// buildSummary assembles the one-line summary: active weather beats sky
// condition, then temperature, then wind.
func buildSummary(r *DecodedReport) string {
	var parts []string
	if len(r.Weather) > 0 {
		parts = append(parts, r.WeatherText())
	} else if len(r.Clouds) > 0 {
		parts = append(parts, r.CloudsText())
	}
	if r.Temperature != nil {
		parts = append(parts, r.Temperature.Description)
	}
	if r.Wind != nil {
		parts = append(parts, r.Wind.Description)
	}
	if len(parts) == 0 {
		return "Weather conditions available"
	}
	return strings.Join(parts, ", ")
}
