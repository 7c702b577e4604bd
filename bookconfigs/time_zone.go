package bookconfigs

import (
	"github.com/litbook/litbook/cmds"
	"github.com/litbook/litbook/configs"
	"github.com/litbook/litbook/vars"
)

// TimeZone is the zone executed code observes, fixed per run so repeated
// runs of the same document produce the same output.
type TimeZone string

var timeZoneFlag = cmds.Var[string]("-time-zone")

func (Module) TimeZone(
	loader configs.Loader,
) TimeZone {
	return TimeZone(vars.FirstNonZero(
		*timeZoneFlag,
		configs.First[string](loader, "time_zone"),
		"US/Pacific",
	))
}
