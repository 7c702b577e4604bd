package bookconfigs

import (
	"github.com/litbook/litbook/cmds"
	"github.com/litbook/litbook/configs"
	"github.com/litbook/litbook/vars"
)

// TimeoutSeconds is the wall-clock deadline applied to each executed
// code segment.
type TimeoutSeconds float64

var timeoutFlag = cmds.Var[float64]("-timeout")

func (Module) TimeoutSeconds(
	loader configs.Loader,
) TimeoutSeconds {
	return TimeoutSeconds(vars.FirstNonZero(
		*timeoutFlag,
		configs.First[float64](loader, "timeout_seconds"),
		5,
	))
}
