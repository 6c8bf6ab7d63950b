package metar

import (
	"fmt"
	"math"
	"strconv"
)

// 16-point compass rose, each point covering a 22.5 degree sector
var compassPoints = [16]string{
	"N", "NNE", "NE", "ENE", "E", "ESE", "SE", "SSE",
	"S", "SSW", "SW", "WSW", "W", "WNW", "NW", "NNW",
}

var compassNames = map[string]string{
	"N": "north", "NNE": "north-northeast", "NE": "northeast", "ENE": "east-northeast",
	"E": "east", "ESE": "east-southeast", "SE": "southeast", "SSE": "south-southeast",
	"S": "south", "SSW": "south-southwest", "SW": "southwest", "WSW": "west-southwest",
	"W": "west", "WNW": "west-northwest", "NW": "northwest", "NNW": "north-northwest",
}

// CompassPoint returns the 16-point compass label for a bearing in degrees.
// Sector boundaries round toward the point with the higher bearing, so
// exactly 11.25 yields NNE rather than N.
func CompassPoint(degrees float64) string {
	idx := int(math.Round(degrees/22.5)) % 16
	if idx < 0 {
		idx += 16
	}
	return compassPoints[idx]
}

// CompassName returns the spelled-out direction for a compass label
func CompassName(point string) string {
	return compassNames[point]
}

// decodeWind interprets a DDDSSKT, DDDSSGGGKT, VRB##KT, or 00000KT token.
// Returns nil when the token is not a knots wind group; other unit
// suffixes fall through to "no wind data" rather than erroring.
func decodeWind(token string) *WindInfo {
	m := windRegex.FindStringSubmatch(token)
	if m == nil {
		return nil
	}

	w := &WindInfo{}
	w.SpeedKt, _ = strconv.Atoi(m[2])
	if m[4] != "" {
		gust, _ := strconv.Atoi(m[4])
		w.GustKt = &gust
	}

	if m[1] == "VRB" {
		w.Variable = true
		w.Description = fmt.Sprintf("Variable wind at %d knots", w.SpeedKt)
		return w
	}

	w.DirectionDeg, _ = strconv.Atoi(m[1])
	if w.DirectionDeg > 360 {
		return nil
	}
	if w.DirectionDeg == 0 && w.SpeedKt == 0 && w.GustKt == nil {
		w.Calm = true
		w.Description = "Calm wind"
		return w
	}

	// 000 with a nonzero speed is a degenerate north-ish reading;
	// keep it as-is instead of calling it calm.
	w.Compass = CompassPoint(float64(w.DirectionDeg))
	w.Description = fmt.Sprintf("Wind from the %s at %d knots", CompassName(w.Compass), w.SpeedKt)
	if w.GustKt != nil {
		w.Description += fmt.Sprintf(", gusting to %d knots", *w.GustKt)
	}
	return w
}
