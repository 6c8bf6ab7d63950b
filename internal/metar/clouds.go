package metar

import (
	"fmt"
	"strconv"
)

var cloudCoverages = map[string]CloudCoverage{
	"CLR": CoverageClear,
	"SKC": CoverageSkyClear,
	"FEW": CoverageFew,
	"SCT": CoverageScattered,
	"BKN": CoverageBroken,
	"OVC": CoverageOvercast,
	"VV":  CoverageVerticalVisibility,
}

var cloudDescriptions = map[CloudCoverage]string{
	CoverageClear:     "clear skies",
	CoverageSkyClear:  "sky clear",
	CoverageFew:       "few clouds",
	CoverageScattered: "scattered clouds",
	CoverageBroken:    "broken clouds",
	CoverageOvercast:  "overcast",
}

// decodeCloud interprets a CCCHHH cloud layer token. CLR and SKC carry
// no altitude (no significant cloud below 12,000 ft); VV gives the
// obscuration height of an obscured sky rather than a cloud base.
// Returns nil when the token is not a cloud group.
func decodeCloud(token string) *CloudLayer {
	m := cloudRegex.FindStringSubmatch(token)
	if m == nil {
		return nil
	}

	cov := cloudCoverages[m[1]]
	layer := &CloudLayer{Coverage: cov}

	if cov == CoverageClear || cov == CoverageSkyClear {
		layer.Description = cloudDescriptions[cov]
		return layer
	}

	if m[2] == "" {
		// FEW/SCT/BKN/OVC/VV need the altitude group
		return nil
	}
	hundreds, _ := strconv.Atoi(m[2])
	base := hundreds * 100
	layer.BaseFt = &base

	if cov == CoverageVerticalVisibility {
		layer.Description = fmt.Sprintf("sky obscured, vertical visibility %d feet", base)
		return layer
	}
	layer.Description = fmt.Sprintf("%s at %d feet", cloudDescriptions[cov], base)
	return layer
}
