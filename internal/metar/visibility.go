package metar

import (
	"fmt"
	"strconv"
)

// decodeVisibility interprets a statute-mile visibility token: whole
// miles ("10SM"), a fraction ("1/2SM"), or a mixed value split across
// two tokens ("1 1/2SM" — pass the whole part in lead). Returns nil
// when the token is not a visibility group.
func decodeVisibility(lead, token string) *Visibility {
	whole := 0
	if lead != "" {
		whole, _ = strconv.Atoi(lead)
	}

	if m := visFracRegex.FindStringSubmatch(token); m != nil {
		num, _ := strconv.Atoi(m[1])
		den, _ := strconv.Atoi(m[2])
		if den == 0 {
			return nil
		}
		v := &Visibility{Miles: float64(whole) + float64(num)/float64(den)}
		frac := fmt.Sprintf("%d/%d", num, den)
		if whole > 0 {
			v.Description = fmt.Sprintf("%d %s miles visibility", whole, frac)
		} else {
			v.Description = fmt.Sprintf("%s miles visibility", frac)
		}
		return v
	}

	if lead != "" {
		// A bare number only combines with a following fraction
		return nil
	}

	m := visRegex.FindStringSubmatch(token)
	if m == nil {
		return nil
	}
	miles, _ := strconv.Atoi(m[1])
	v := &Visibility{Miles: float64(miles)}
	if miles >= 10 {
		// 10SM is the ceiling of the instrument's reporting range,
		// not an exact reading; keep that distinction.
		v.TenOrMore = true
		v.Description = "10+ miles visibility"
		return v
	}
	v.Description = fmt.Sprintf("%d miles visibility", miles)
	return v
}
