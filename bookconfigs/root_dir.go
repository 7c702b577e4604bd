package bookconfigs

import (
	"github.com/litbook/litbook/cmds"
	"github.com/litbook/litbook/configs"
	"github.com/litbook/litbook/vars"
)

// RootDir resolves include fence paths. Empty means the directory
// containing the document being processed.
type RootDir string

var rootDirFlag = cmds.Var[string]("-root-dir")

func (Module) RootDir(
	loader configs.Loader,
) RootDir {
	return RootDir(vars.FirstNonZero(
		*rootDirFlag,
		configs.First[string](loader, "root_dir"),
	))
}
