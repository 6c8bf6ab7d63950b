package metar

import "regexp"

// Token grammars, tried in a fixed priority order per token:
// wind, visibility, weather group, cloud layer, temperature, altimeter.
// Anything that matches none of them is skipped so that remarks and
// regional quirks never abort a decode.
var (
	stationRegex  = regexp.MustCompile(`^[A-Z0-9]{4}$`)
	timeRegex     = regexp.MustCompile(`^(\d{2})(\d{2})(\d{2})Z$`)
	windRegex     = regexp.MustCompile(`^(VRB|\d{3})(\d{2,3})(G(\d{2,3}))?KT$`)
	visRegex      = regexp.MustCompile(`^(\d{1,2})SM$`)
	visFracRegex  = regexp.MustCompile(`^(\d)/(\d{1,2})SM$`)
	visWholeRegex = regexp.MustCompile(`^\d{1,2}$`) // leading part of "1 1/2SM"
	weatherRegex  = regexp.MustCompile(`^([+-])?(VC)?(MI|PR|BC|DR|BL|SH|TS|FZ)?((?:[A-Z]{2})*)$`)
	cloudRegex    = regexp.MustCompile(`^(CLR|SKC|FEW|SCT|BKN|OVC|VV)(\d{3})?$`)
	tempRegex     = regexp.MustCompile(`^(M?)(\d{2})/(?:(M?)(\d{2}))?$`)
	pressureRegex = regexp.MustCompile(`^A(\d{4})$`)
)

// remarksToken ends classification; everything after it belongs to the
// remarks section, which is out of scope and must not leak into fields.
const remarksToken = "RMK"
