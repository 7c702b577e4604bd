package bookconfigs

import "github.com/litbook/litbook/cmds"

// DryRun prints the rewritten document to stdout instead of replacing
// the file.
type DryRun bool

var dryRunFlag = cmds.Switch("-dry-run")

func (Module) DryRun() DryRun {
	return DryRun(*dryRunFlag)
}
