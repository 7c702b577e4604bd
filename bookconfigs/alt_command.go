package bookconfigs

import (
	"github.com/litbook/litbook/cmds"
	"github.com/litbook/litbook/configs"
)

// AltCommand is the external interpreter that alternate-language fences
// are piped to.
type AltCommand []string

var altCommandFlag = cmds.Collect[string]("-alt-command")

func (Module) AltCommand(
	loader configs.Loader,
) AltCommand {
	if len(*altCommandFlag) > 0 {
		return AltCommand(*altCommandFlag)
	}
	if cmd := configs.First[[]string](loader, "alt_command"); len(cmd) > 0 {
		return AltCommand(cmd)
	}
	return AltCommand{"python3"}
}
