package metar

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeWind(t *testing.T) {
	cases := []struct {
		token    string
		dir      int
		speed    int
		gust     int // 0 means no gust
		compass  string
		variable bool
		calm     bool
	}{
		{token: "36008KT", dir: 360, speed: 8, compass: "N"},
		{token: "00005KT", dir: 0, speed: 5, compass: "N"},
		{token: "09015G25KT", dir: 90, speed: 15, gust: 25, compass: "E"},
		{token: "270105G120KT", dir: 270, speed: 105, gust: 120, compass: "W"},
		{token: "VRB04KT", speed: 4, variable: true},
		{token: "00000KT", speed: 0, calm: true},
		{token: "22510KT", dir: 225, speed: 10, compass: "SW"},
	}

	for _, tc := range cases {
		t.Run(tc.token, func(t *testing.T) {
			w := decodeWind(tc.token)
			require.NotNil(t, w)
			assert.Equal(t, tc.speed, w.SpeedKt)
			assert.Equal(t, tc.variable, w.Variable)
			assert.Equal(t, tc.calm, w.Calm)
			if !tc.variable && !tc.calm {
				assert.Equal(t, tc.dir, w.DirectionDeg)
				assert.Equal(t, tc.compass, w.Compass)
			}
			if tc.gust > 0 {
				require.NotNil(t, w.GustKt)
				assert.Equal(t, tc.gust, *w.GustKt)
			} else {
				assert.Nil(t, w.GustKt)
			}
		})
	}
}

func TestDecodeWind_NotWind(t *testing.T) {
	for _, token := range []string{"36008MPS", "36008", "KT", "10SM", "4008KT", "40060KT"} {
		assert.Nil(t, decodeWind(token), "token %q", token)
	}
}

func TestCompassPoint_Canonical(t *testing.T) {
	canonical := map[string]bool{}
	for _, p := range compassPoints {
		canonical[p] = true
	}

	// Every whole-degree bearing maps to one of the 16 canonical points,
	// and mapping the same bearing twice gives the same answer
	for deg := 0; deg <= 360; deg++ {
		p := CompassPoint(float64(deg))
		assert.True(t, canonical[p], "bearing %d gave %q", deg, p)
		assert.Equal(t, p, CompassPoint(float64(deg)))
	}
}

func TestCompassPoint_SectorCenters(t *testing.T) {
	for i, want := range compassPoints {
		bearing := float64(i) * 22.5
		assert.Equal(t, want, CompassPoint(bearing), fmt.Sprintf("bearing %.1f", bearing))
	}
	assert.Equal(t, "N", CompassPoint(360))
}

func TestCompassPoint_BoundaryRoundsUp(t *testing.T) {
	// Ties at sector boundaries round toward the higher bearing
	assert.Equal(t, "NNE", CompassPoint(11.25))
	assert.Equal(t, "NE", CompassPoint(33.75))
	assert.Equal(t, "N", CompassPoint(11.24))
	assert.Equal(t, "NNW", CompassPoint(347))
	assert.Equal(t, "N", CompassPoint(348.75))
}

func TestCompassName(t *testing.T) {
	assert.Equal(t, "north", CompassName("N"))
	assert.Equal(t, "south-southwest", CompassName("SSW"))
	assert.Equal(t, "west-northwest", CompassName("WNW"))
}
