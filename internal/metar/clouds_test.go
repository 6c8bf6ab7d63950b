package metar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeCloud(t *testing.T) {
	cases := []struct {
		token    string
		coverage CloudCoverage
		base     int // -1 means no altitude
		desc     string
	}{
		{token: "CLR", coverage: CoverageClear, base: -1, desc: "clear skies"},
		{token: "SKC", coverage: CoverageSkyClear, base: -1, desc: "sky clear"},
		{token: "FEW015", coverage: CoverageFew, base: 1500, desc: "few clouds at 1500 feet"},
		{token: "SCT040", coverage: CoverageScattered, base: 4000, desc: "scattered clouds at 4000 feet"},
		{token: "BKN025", coverage: CoverageBroken, base: 2500, desc: "broken clouds at 2500 feet"},
		{token: "OVC100", coverage: CoverageOvercast, base: 10000, desc: "overcast at 10000 feet"},
		{token: "VV008", coverage: CoverageVerticalVisibility, base: 800, desc: "sky obscured, vertical visibility 800 feet"},
	}

	for _, tc := range cases {
		t.Run(tc.token, func(t *testing.T) {
			layer := decodeCloud(tc.token)
			require.NotNil(t, layer)
			assert.Equal(t, tc.coverage, layer.Coverage)
			if tc.base < 0 {
				assert.Nil(t, layer.BaseFt)
			} else {
				require.NotNil(t, layer.BaseFt)
				assert.Equal(t, tc.base, *layer.BaseFt)
			}
			assert.Equal(t, tc.desc, layer.Description)
		})
	}
}

func TestDecodeCloud_NotCloud(t *testing.T) {
	for _, token := range []string{"BKN", "OVC", "VV", "FEW15", "CLR015X", "RA", "10SM", "A3012"} {
		assert.Nil(t, decodeCloud(token), "token %q", token)
	}
}
