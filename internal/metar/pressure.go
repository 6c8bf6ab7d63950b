package metar

import (
	"fmt"
	"strconv"
)

// decodePressure interprets an AXXXX altimeter token, where the four
// digits are hundredths of inches of mercury (A3012 = 30.12 inHg).
// Q-prefixed hectopascal tokens are out of scope and fall through to
// "pressure not reported". Returns nil when the token is not an
// altimeter group.
func decodePressure(token string) *Pressure {
	m := pressureRegex.FindStringSubmatch(token)
	if m == nil {
		return nil
	}
	hundredths, _ := strconv.Atoi(m[1])
	p := &Pressure{InHgHundredths: hundredths}
	p.Description = fmt.Sprintf("Pressure %s inHg", p.String())
	return p
}
